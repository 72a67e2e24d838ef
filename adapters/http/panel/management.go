package panel

import (
	"net/http"

	"github.com/Aurora-NEW/gcli2api/pkg/panelapi"
)

// Management compatibility endpoints for external dashboards. These speak
// the dashboard's own top-level shapes, not the panel envelope.

// ManagementUsage returns the usage snapshot in the management shape.
//
//	@Summary		Management usage
//	@Description	Usage snapshot plus total failed request count
//	@Tags			Management
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Snapshot and failed count"
//	@Failure		401	{object}	panelapi.Envelope		"Unauthorized"
//	@Security		PanelAuth
//	@Router			/v0/management/usage [get]
func (h *Handler) ManagementUsage(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Snapshot()
	panelapi.WriteRaw(w, http.StatusOK, map[string]any{
		"usage":           snapshot,
		"failed_requests": snapshot.FailureCount,
	})
}

// GetOpenAICompatibility returns the provider compatibility map.
// There is no provider-level model disable mapping to expose yet, so the
// list stays empty.
//
//	@Summary		OpenAI compatibility map
//	@Tags			Management
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Compatibility list"
//	@Failure		401	{object}	panelapi.Envelope		"Unauthorized"
//	@Security		PanelAuth
//	@Router			/v0/management/openai-compatibility [get]
func (h *Handler) GetOpenAICompatibility(w http.ResponseWriter, r *http.Request) {
	panelapi.WriteRaw(w, http.StatusOK, map[string]any{
		"openai-compatibility": []any{},
	})
}

// PatchOpenAICompatibility accepts and ignores compatibility updates so
// dashboards that PATCH do not break.
//
//	@Summary		Update OpenAI compatibility map
//	@Tags			Management
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Status"
//	@Failure		401	{object}	panelapi.Envelope		"Unauthorized"
//	@Security		PanelAuth
//	@Router			/v0/management/openai-compatibility [patch]
func (h *Handler) PatchOpenAICompatibility(w http.ResponseWriter, r *http.Request) {
	panelapi.WriteRaw(w, http.StatusOK, map[string]any{
		"status":               "ok",
		"openai-compatibility": []any{},
	})
}
