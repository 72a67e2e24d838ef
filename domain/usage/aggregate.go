package usage

import "time"

// Window is how much history the rolling per-source views consider.
const Window = 24 * time.Hour

// Key formats for the snapshot histograms. Hours aggregate across days, so
// the hour key is just the zero-padded UTC hour.
const (
	dayKeyFormat  = "2006-01-02"
	hourKeyFormat = "15"
)

// SourceStats summarizes one source's activity since a cutoff.
type SourceStats struct {
	Calls   int64 `json:"calls_24h"`
	Success int64 `json:"success_24h"`
	Failed  int64 `json:"failed_24h"`
	Tokens  int64 `json:"tokens_24h"`
}

// AggregatedStats is the cross-source rollup of a SourceStats map.
type AggregatedStats struct {
	TotalCalls      int64   `json:"total_calls_24h"`
	TotalFiles      int     `json:"total_files"`
	AvgCallsPerFile float64 `json:"avg_calls_per_file"`
}

// EventDetail is one event as it appears in snapshot drill-downs.
type EventDetail struct {
	Timestamp string     `json:"timestamp"`
	Source    string     `json:"source"`
	AuthIndex string     `json:"auth_index"`
	Tokens    TokenStats `json:"tokens"`
	Failed    bool       `json:"failed"`
}

// ModelStats aggregates one model under an api, with per-event details in
// insertion order.
type ModelStats struct {
	TotalRequests int64         `json:"total_requests"`
	TotalTokens   int64         `json:"total_tokens"`
	Details       []EventDetail `json:"details"`
}

// APIStats aggregates one api across its models.
type APIStats struct {
	TotalRequests int64                  `json:"total_requests"`
	TotalTokens   int64                  `json:"total_tokens"`
	Models        map[string]*ModelStats `json:"models"`
}

// Snapshot is the full drill-down over every retained event: lifetime totals,
// api -> model nesting and day/hour histograms keyed in UTC.
type Snapshot struct {
	TotalRequests  int64                `json:"total_requests"`
	SuccessCount   int64                `json:"success_count"`
	FailureCount   int64                `json:"failure_count"`
	TotalTokens    int64                `json:"total_tokens"`
	APIs           map[string]*APIStats `json:"apis"`
	RequestsByDay  map[string]int64     `json:"requests_by_day"`
	RequestsByHour map[string]int64     `json:"requests_by_hour"`
	TokensByDay    map[string]int64     `json:"tokens_by_day"`
	TokensByHour   map[string]int64     `json:"tokens_by_hour"`
}

// StatsBySource groups events at or after cutoff by source.
// This is a PURE function.
func StatsBySource(events []Event, cutoff time.Time) map[string]SourceStats {
	stats := make(map[string]SourceStats)
	for _, e := range events {
		if e.Timestamp.Before(cutoff) {
			continue
		}
		s := stats[e.Source]
		s.Calls++
		if e.Failed {
			s.Failed++
		} else {
			s.Success++
		}
		s.Tokens += e.Tokens.Total
		stats[e.Source] = s
	}
	return stats
}

// Aggregate folds per-source stats into a single overview. The average is 0
// when there are no sources, never NaN.
// This is a PURE function.
func Aggregate(stats map[string]SourceStats) AggregatedStats {
	agg := AggregatedStats{TotalFiles: len(stats)}
	for _, s := range stats {
		agg.TotalCalls += s.Calls
	}
	if agg.TotalFiles > 0 {
		agg.AvgCallsPerFile = float64(agg.TotalCalls) / float64(agg.TotalFiles)
	}
	return agg
}

// BuildSnapshot computes the snapshot over every event given, oldest first.
// Maps are always non-nil so an empty store serializes as {} rather than null.
// This is a PURE function.
func BuildSnapshot(events []Event) Snapshot {
	snap := Snapshot{
		APIs:           make(map[string]*APIStats),
		RequestsByDay:  make(map[string]int64),
		RequestsByHour: make(map[string]int64),
		TokensByDay:    make(map[string]int64),
		TokensByHour:   make(map[string]int64),
	}

	for _, e := range events {
		snap.TotalRequests++
		if e.Failed {
			snap.FailureCount++
		} else {
			snap.SuccessCount++
		}
		total := e.Tokens.Total
		snap.TotalTokens += total

		api := snap.APIs[e.API]
		if api == nil {
			api = &APIStats{Models: make(map[string]*ModelStats)}
			snap.APIs[e.API] = api
		}
		api.TotalRequests++
		api.TotalTokens += total

		model := api.Models[e.Model]
		if model == nil {
			model = &ModelStats{}
			api.Models[e.Model] = model
		}
		model.TotalRequests++
		model.TotalTokens += total
		model.Details = append(model.Details, EventDetail{
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
			Source:    e.Source,
			AuthIndex: e.AuthIndex,
			Tokens:    e.Tokens,
			Failed:    e.Failed,
		})

		ts := e.Timestamp.UTC()
		day := ts.Format(dayKeyFormat)
		hour := ts.Format(hourKeyFormat)
		snap.RequestsByDay[day]++
		snap.RequestsByHour[hour]++
		snap.TokensByDay[day] += total
		snap.TokensByHour[hour] += total
	}

	return snap
}
