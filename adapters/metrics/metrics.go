// Package metrics provides Prometheus metrics collection.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gcli2api"

// Collector holds all Prometheus metrics for the service.
type Collector struct {
	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Panel auth metrics
	AuthFailures *prometheus.CounterVec

	// Usage metrics
	EventsRecorded *prometheus.CounterVec
	EventsRetained prometheus.Gauge
	ResetsTotal    *prometheus.CounterVec
	ResetRemoved   prometheus.Counter
	IngestBatches  *prometheus.CounterVec

	// Config metrics
	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
	ConfigLastReload   prometheus.Gauge
}

// New creates a collector registered on the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a collector on a custom registry.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),

		AuthFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panel_auth_failures_total",
				Help:      "Total number of rejected panel credentials",
			},
			[]string{"reason"},
		),

		EventsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "usage_events_total",
				Help:      "Usage events recorded, by api and outcome",
			},
			[]string{"api", "outcome"},
		),
		EventsRetained: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "usage_events_retained",
				Help:      "Events currently held by the tracker",
			},
		),
		ResetsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "usage_resets_total",
				Help:      "Reset operations, by scope (all or source)",
			},
			[]string{"scope"},
		),
		ResetRemoved: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "usage_reset_events_removed_total",
				Help:      "Events removed by reset operations",
			},
		),
		IngestBatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "usage_ingest_batches_total",
				Help:      "Ingest batches received, by status",
			},
			[]string{"status"},
		),

		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reloads_total",
				Help:      "Total number of successful config reloads",
			},
		),
		ConfigReloadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reload_errors_total",
				Help:      "Total number of config reload errors",
			},
		),
		ConfigLastReload: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "config_last_reload_timestamp",
				Help:      "Unix timestamp of last successful config reload",
			},
		),
	}
}

// RegisterEvictionFunc exposes a cumulative eviction count as a counter.
// Registered separately from the collector because the tracker that owns the
// count is constructed first.
func RegisterEvictionFunc(reg prometheus.Registerer, fn func() float64) {
	promauto.With(reg).NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usage_events_evicted_total",
			Help:      "Events overwritten after the tracker reached capacity",
		},
		fn,
	)
}

// NormalizePath caps path label cardinality for requests that never matched a
// route pattern.
func NormalizePath(path string) string {
	if len(path) > 50 {
		return path[:50] + "..."
	}
	return path
}
