// Package usage provides usage event types and aggregation functions.
// All functions are pure - no side effects.
package usage

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// Unknown is substituted for a blank api, model or source at record time.
	Unknown = "unknown"
	// NoAuth is substituted when neither the auth index nor the source is usable.
	NoAuth = "-"
)

// Ordered candidate keys for each token counter. Producers spell these
// differently (OpenAI, Gemini and camelCase variants); the first key that is
// present with a truthy value wins. Extend the lists, never the call sites.
var (
	InputTokenKeys     = []string{"input_tokens", "prompt_tokens", "inputTokens"}
	OutputTokenKeys    = []string{"output_tokens", "completion_tokens", "outputTokens"}
	ReasoningTokenKeys = []string{"reasoning_tokens", "thoughts_tokens", "reasoningTokens"}
	CachedTokenKeys    = []string{"cached_tokens", "cache_read_input_tokens", "cachedTokens"}
	TotalTokenKeys     = []string{"total_tokens", "totalTokenCount", "totalTokens"}
)

// TokenStats holds the normalized token counters of one event
// (immutable value type). Every field is non-negative.
type TokenStats struct {
	Input     int64 `json:"input_tokens"`
	Output    int64 `json:"output_tokens"`
	Reasoning int64 `json:"reasoning_tokens"`
	Cached    int64 `json:"cached_tokens"`
	Total     int64 `json:"total_tokens"`
}

// Event represents a single recorded upstream call (immutable value type).
// Fields are normalized on construction and never re-normalized afterwards.
type Event struct {
	API          string
	Model        string
	Source       string
	AuthIndex    string
	Failed       bool
	StatusCode   int
	ErrorMessage string
	Tokens       TokenStats
	Timestamp    time.Time
}

// NewEvent builds a normalized event from raw record arguments.
// It never fails: blank identifiers default to "unknown", the auth index
// falls back to the raw source and then "-", token payloads of any shape
// coerce to non-negative counters, and a zero timestamp means now.
func NewEvent(api, model, source, authIndex string, failed bool, tokens map[string]any, statusCode int, errorMessage string, timestamp time.Time) Event {
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	if statusCode < 0 {
		statusCode = 0
	}
	return Event{
		API:          normalizeName(api),
		Model:        normalizeName(model),
		Source:       normalizeName(source),
		AuthIndex:    normalizeAuthIndex(authIndex, source),
		Failed:       failed,
		StatusCode:   statusCode,
		ErrorMessage: strings.TrimSpace(errorMessage),
		Tokens:       NormalizeTokens(tokens),
		Timestamp:    timestamp.UTC(),
	}
}

// NormalizeTokens resolves a raw token payload into TokenStats using the
// candidate-key lists. A zero resolved total is recomputed as
// input + output + reasoning; cached tokens never count toward the total.
// This is a PURE function.
func NormalizeTokens(raw map[string]any) TokenStats {
	ts := TokenStats{
		Input:     resolveToken(raw, InputTokenKeys),
		Output:    resolveToken(raw, OutputTokenKeys),
		Reasoning: resolveToken(raw, ReasoningTokenKeys),
		Cached:    resolveToken(raw, CachedTokenKeys),
		Total:     resolveToken(raw, TotalTokenKeys),
	}
	if ts.Total == 0 {
		ts.Total = ts.Input + ts.Output + ts.Reasoning
	}
	return ts
}

// resolveToken returns the coerced value of the first candidate key that is
// present and truthy. Falsy values (0, "", null) fall through to later keys.
func resolveToken(raw map[string]any, keys []string) int64 {
	for _, key := range keys {
		if v, ok := raw[key]; ok && truthy(v) {
			return safeInt(v)
		}
	}
	return 0
}

// truthy reports whether a raw JSON value counts as present for key
// resolution. Zero numbers, empty strings and empty collections do not.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// safeInt coerces an arbitrary value to a non-negative int64. Anything that
// does not cleanly convert (fractional strings, objects, NaN) becomes 0, and
// negatives clamp to 0. It never returns an error.
func safeInt(v any) int64 {
	var n int64
	switch t := v.(type) {
	case bool:
		if t {
			n = 1
		}
	case int:
		n = int64(t)
	case int64:
		n = t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		n = int64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		n = int64(f)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// normalizeName trims an identifier and substitutes Unknown for blanks.
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}
	return s
}

// normalizeAuthIndex picks the first non-empty of (authIndex, source, "-"),
// then trims. The fallback uses the raw source, not the normalized one, so a
// blank source never turns the auth index into "unknown".
func normalizeAuthIndex(authIndex, source string) string {
	v := authIndex
	if v == "" {
		v = source
	}
	if v == "" {
		v = NoAuth
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return NoAuth
	}
	return v
}
