package panel

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Aurora-NEW/gcli2api/pkg/panelapi"
)

// GetStats returns per-source usage counters for the last 24 hours.
//
//	@Summary		24h usage by source
//	@Description	Per-source call, success, failure and token counters over the last 24 hours
//	@Tags			Usage
//	@Produce		json
//	@Success		200	{object}	panelapi.Envelope	"Per-source stats"
//	@Failure		401	{object}	panelapi.Envelope	"Unauthorized"
//	@Security		PanelAuth
//	@Router			/usage/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	panelapi.WriteData(w, http.StatusOK, h.service.Stats24h())
}

// GetAggregated returns the cross-source rollup for the last 24 hours.
//
//	@Summary		24h aggregated usage
//	@Description	Total calls, active sources and the per-source average over the last 24 hours
//	@Tags			Usage
//	@Produce		json
//	@Success		200	{object}	panelapi.Envelope	"Aggregated stats"
//	@Failure		401	{object}	panelapi.Envelope	"Unauthorized"
//	@Security		PanelAuth
//	@Router			/usage/aggregated [get]
func (h *Handler) GetAggregated(w http.ResponseWriter, r *http.Request) {
	panelapi.WriteData(w, http.StatusOK, h.service.Aggregated24h())
}

// GetSnapshot returns the full usage drill-down over every retained event.
//
//	@Summary		Usage snapshot
//	@Description	Per-API and per-model breakdowns plus day and hour histograms
//	@Tags			Usage
//	@Produce		json
//	@Success		200	{object}	panelapi.Envelope	"Snapshot"
//	@Failure		401	{object}	panelapi.Envelope	"Unauthorized"
//	@Security		PanelAuth
//	@Router			/usage/snapshot [get]
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	panelapi.WriteData(w, http.StatusOK, h.service.Snapshot())
}

// ResetRequest scopes a reset to one source file. An absent or empty
// filename clears everything.
type ResetRequest struct {
	Filename string `json:"filename"`
}

// ResetUsage clears usage statistics.
//
//	@Summary		Reset usage statistics
//	@Description	Remove all retained events, or only those from one source
//	@Tags			Usage
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ResetRequest		false	"Reset scope"
//	@Success		200		{object}	panelapi.Envelope	"Removed count"
//	@Failure		400		{object}	panelapi.Envelope	"Invalid request"
//	@Failure		401		{object}	panelapi.Envelope	"Unauthorized"
//	@Security		PanelAuth
//	@Router			/usage/reset [post]
func (h *Handler) ResetUsage(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	// An empty body means reset everything.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		panelapi.WriteError(w, panelapi.NewError(http.StatusBadRequest, "invalid_request", "Invalid JSON body"))
		return
	}

	removed := h.service.Reset(req.Filename)

	message := fmt.Sprintf("Reset all usage statistics (%d events)", removed)
	if req.Filename != "" {
		message = fmt.Sprintf("Reset usage statistics for %s (%d events)", req.Filename, removed)
	}

	panelapi.Write(w, http.StatusOK, panelapi.Envelope{
		Success: true,
		Message: message,
		Removed: &removed,
	})
}
