package metrics_test

import (
	"strings"
	"testing"

	"github.com/Aurora-NEW/gcli2api/adapters/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func gatherNames(t *testing.T, reg *prometheus.Registry) map[string]int {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	names := make(map[string]int)
	for _, f := range families {
		names[f.GetName()] = len(f.GetMetric())
	}
	return names
}

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	if m == nil {
		t.Fatal("NewWithRegistry returned nil")
	}
	if m.RequestsTotal == nil {
		t.Error("RequestsTotal is nil")
	}
	if m.RequestDuration == nil {
		t.Error("RequestDuration is nil")
	}
	if m.RequestsInFlight == nil {
		t.Error("RequestsInFlight is nil")
	}
	if m.AuthFailures == nil {
		t.Error("AuthFailures is nil")
	}
	if m.EventsRecorded == nil {
		t.Error("EventsRecorded is nil")
	}
	if m.EventsRetained == nil {
		t.Error("EventsRetained is nil")
	}
	if m.ResetsTotal == nil {
		t.Error("ResetsTotal is nil")
	}
	if m.IngestBatches == nil {
		t.Error("IngestBatches is nil")
	}
	if m.ConfigReloads == nil {
		t.Error("ConfigReloads is nil")
	}
}

func TestEventsRecorded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	m.EventsRecorded.WithLabelValues("gemini", "success").Inc()
	m.EventsRecorded.WithLabelValues("gemini", "failed").Add(2)
	m.EventsRecorded.WithLabelValues("openai", "success").Inc()

	names := gatherNames(t, reg)
	if got := names["gcli2api_usage_events_total"]; got != 3 {
		t.Errorf("gcli2api_usage_events_total series = %d, want 3", got)
	}
}

func TestResetMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	m.ResetsTotal.WithLabelValues("all").Inc()
	m.ResetsTotal.WithLabelValues("source").Inc()
	m.ResetRemoved.Add(42)

	names := gatherNames(t, reg)
	if got := names["gcli2api_usage_resets_total"]; got != 2 {
		t.Errorf("gcli2api_usage_resets_total series = %d, want 2", got)
	}
	if _, ok := names["gcli2api_usage_reset_events_removed_total"]; !ok {
		t.Error("gcli2api_usage_reset_events_removed_total not found")
	}
}

func TestRegisterEvictionFunc(t *testing.T) {
	reg := prometheus.NewRegistry()

	var evicted float64 = 7
	metrics.RegisterEvictionFunc(reg, func() float64 { return evicted })

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	found := false
	for _, f := range families {
		if f.GetName() == "gcli2api_usage_events_evicted_total" {
			found = true
			if got := f.GetMetric()[0].GetCounter().GetValue(); got != 7 {
				t.Errorf("eviction counter = %f, want 7", got)
			}
		}
	}
	if !found {
		t.Error("gcli2api_usage_events_evicted_total not found")
	}
}

func TestNormalizePath(t *testing.T) {
	if got := metrics.NormalizePath("/usage/stats"); got != "/usage/stats" {
		t.Errorf("NormalizePath short = %q, want unchanged", got)
	}

	long := "/" + strings.Repeat("x", 100)
	got := metrics.NormalizePath(long)
	if len(got) != 53 || !strings.HasSuffix(got, "...") {
		t.Errorf("NormalizePath long = %q (len %d), want 50 chars plus ellipsis", got, len(got))
	}
}
