package panel

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Aurora-NEW/gcli2api/config"
	"github.com/Aurora-NEW/gcli2api/pkg/panelapi"
)

// EventPayload is one usage event in an ingest batch. Token counts arrive as
// a raw object so alternate provider key names survive the trip.
type EventPayload struct {
	API          string         `json:"api"`
	Model        string         `json:"model"`
	Source       string         `json:"source"`
	AuthIndex    string         `json:"auth_index"`
	Failed       bool           `json:"failed"`
	StatusCode   int            `json:"status_code"`
	ErrorMessage string         `json:"error_message"`
	Tokens       map[string]any `json:"tokens"`
	Timestamp    float64        `json:"timestamp"` // Epoch seconds, 0 = server time
}

// IngestRequest is a batch of usage events.
type IngestRequest struct {
	Events []EventPayload `json:"events"`
}

// IngestResponse reports how many events a batch stored.
type IngestResponse struct {
	Accepted int `json:"accepted"`
}

// IngestEvents records a batch of usage events.
//
//	@Summary		Ingest usage events
//	@Description	Record a batch of usage events; individual events never fail
//	@Tags			Usage
//	@Accept			json
//	@Produce		json
//	@Param			request	body		IngestRequest		true	"Event batch"
//	@Success		202		{object}	panelapi.Envelope	"Accepted count"
//	@Failure		400		{object}	panelapi.Envelope	"Invalid or oversized batch"
//	@Failure		401		{object}	panelapi.Envelope	"Unauthorized"
//	@Security		PanelAuth
//	@Router			/usage/events [post]
func (h *Handler) IngestEvents(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ingestResult("rejected")
		panelapi.WriteError(w, panelapi.NewError(http.StatusBadRequest, "invalid_request", "Invalid JSON body"))
		return
	}

	if len(req.Events) == 0 {
		h.ingestResult("rejected")
		panelapi.WriteError(w, panelapi.NewError(http.StatusBadRequest, "empty_batch", "At least one event is required"))
		return
	}

	maxBatch := h.config.Get().Usage.MaxBatch
	if maxBatch <= 0 {
		maxBatch = config.DefaultMaxBatch
	}
	if len(req.Events) > maxBatch {
		h.ingestResult("rejected")
		panelapi.WriteError(w, panelapi.NewError(http.StatusBadRequest, "batch_too_large",
			fmt.Sprintf("Batch exceeds %d events", maxBatch)))
		return
	}

	for _, ev := range req.Events {
		h.service.Record(ev.API, ev.Model, ev.Source, ev.AuthIndex, ev.Failed,
			ev.Tokens, ev.StatusCode, ev.ErrorMessage, epochToTime(ev.Timestamp))
	}

	h.ingestResult("accepted")
	h.logger.Debug().Int("events", len(req.Events)).Msg("usage batch ingested")
	panelapi.WriteData(w, http.StatusAccepted, IngestResponse{Accepted: len(req.Events)})
}

func (h *Handler) ingestResult(status string) {
	if h.metrics != nil {
		h.metrics.IngestBatches.WithLabelValues(status).Inc()
	}
}

// epochToTime converts float epoch seconds to UTC time. Non-positive values
// mean the producer did not set a timestamp.
func epochToTime(epoch float64) time.Time {
	if epoch <= 0 {
		return time.Time{}
	}
	sec := int64(epoch)
	nsec := int64((epoch - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}
