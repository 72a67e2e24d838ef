// Package app contains the UsageService that sits between the HTTP layer and
// the usage domain.
package app

import (
	"strings"
	"time"

	"github.com/Aurora-NEW/gcli2api/adapters/metrics"
	"github.com/Aurora-NEW/gcli2api/domain/usage"
	"github.com/Aurora-NEW/gcli2api/ports"
	"github.com/rs/zerolog"
)

// UsageService records usage events and serves the aggregated views.
// Aggregation always runs on a copy of the tracker's events, never under the
// tracker's lock.
type UsageService struct {
	tracker ports.UsageTracker
	clock   ports.Clock
	logger  zerolog.Logger
	metrics *metrics.Collector
}

// NewUsageService creates a usage service. The collector may be nil when
// metrics are disabled.
func NewUsageService(tracker ports.UsageTracker, clk ports.Clock, logger zerolog.Logger, collector *metrics.Collector) *UsageService {
	return &UsageService{
		tracker: tracker,
		clock:   clk,
		logger:  logger,
		metrics: collector,
	}
}

// Record normalizes and stores one usage event. It never fails: malformed
// token payloads coerce to zeros and a zero timestamp means now.
func (s *UsageService) Record(api, model, source, authIndex string, failed bool, tokens map[string]any, statusCode int, errorMessage string, timestamp time.Time) {
	if timestamp.IsZero() {
		timestamp = s.clock.Now()
	}
	ev := usage.NewEvent(api, model, source, authIndex, failed, tokens, statusCode, errorMessage, timestamp)
	s.tracker.Record(ev)

	if s.metrics != nil {
		outcome := "success"
		if ev.Failed {
			outcome = "failed"
		}
		s.metrics.EventsRecorded.WithLabelValues(ev.API, outcome).Inc()
		s.metrics.EventsRetained.Set(float64(s.tracker.Len()))
	}

	s.logger.Debug().
		Str("api", ev.API).
		Str("model", ev.Model).
		Str("source", ev.Source).
		Bool("failed", ev.Failed).
		Int64("total_tokens", ev.Tokens.Total).
		Msg("usage event recorded")
}

// Stats24h returns per-source stats over the last 24 hours.
func (s *UsageService) Stats24h() map[string]usage.SourceStats {
	cutoff := s.clock.Now().Add(-usage.Window)
	return usage.StatsBySource(s.tracker.Events(), cutoff)
}

// Aggregated24h returns the cross-source rollup over the last 24 hours.
func (s *UsageService) Aggregated24h() usage.AggregatedStats {
	return usage.Aggregate(s.Stats24h())
}

// Snapshot returns the full drill-down over every retained event.
func (s *UsageService) Snapshot() usage.Snapshot {
	return usage.BuildSnapshot(s.tracker.Events())
}

// Reset removes events and returns how many were removed. An empty source
// clears everything.
func (s *UsageService) Reset(source string) int {
	removed := s.tracker.Reset(source)

	scope := "source"
	if source == "" {
		scope = "all"
	}
	if s.metrics != nil {
		s.metrics.ResetsTotal.WithLabelValues(scope).Inc()
		s.metrics.ResetRemoved.Add(float64(removed))
		s.metrics.EventsRetained.Set(float64(s.tracker.Len()))
	}

	s.logger.Info().
		Str("scope", scope).
		Str("source", strings.TrimSpace(source)).
		Int("removed", removed).
		Msg("usage reset")
	return removed
}
