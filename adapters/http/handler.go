// Package http assembles the service router: panel API, health probes,
// Prometheus metrics, and the OpenAPI endpoints.
package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Aurora-NEW/gcli2api/adapters/http/panel"
	"github.com/Aurora-NEW/gcli2api/adapters/metrics"
	_ "github.com/Aurora-NEW/gcli2api/docs/swagger" // swagger docs
	"github.com/Aurora-NEW/gcli2api/pkg/panelapi"
	"github.com/Aurora-NEW/gcli2api/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

// VersionResponse represents the version endpoint response.
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
	Service string `json:"service" example:"gcli2api"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	tracker ports.UsageTracker
}

// NewHealthHandler creates a new health handler. The tracker is optional;
// when present the readiness probe reports the retained event count.
func NewHealthHandler(tracker ports.UsageTracker) *HealthHandler {
	return &HealthHandler{tracker: tracker}
}

// Liveness returns a simple liveness check.
//
//	@Summary		Liveness check
//	@Description	Returns OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status: ok"
//	@Router			/health [get]
//	@Router			/health/live [get]
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Readiness checks if the service is ready to handle traffic.
//
//	@Summary		Readiness check
//	@Description	Returns OK along with the number of retained usage events
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"status: ok, events_retained: n"
//	@Router			/health/ready [get]
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"status": "ok"}
	if h.tracker != nil {
		resp["events_retained"] = h.tracker.Len()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// versionHandler returns the version endpoint handler.
//
//	@Summary		Get service version
//	@Description	Returns the version information for the gcli2api service
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	VersionResponse	"Version information"
//	@Router			/version [get]
func versionHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(VersionResponse{
			Version: version,
			Service: "gcli2api",
		})
	}
}

// RouterConfig holds optional configuration for the router.
type RouterConfig struct {
	Metrics        *metrics.Collector
	MetricsHandler http.Handler // Optional metrics exporter handler (defaults to promhttp when Metrics is set)
	MetricsPath    string       // Path for the metrics endpoint (default: "/metrics")
	EnableOpenAPI  bool
	Version        string // Reported by /version (default: "dev")
}

// NewRouter creates the main HTTP router.
func NewRouter(panelHandler *panel.Handler, healthHandler *HealthHandler, logger zerolog.Logger) chi.Router {
	return NewRouterWithConfig(panelHandler, healthHandler, logger, RouterConfig{})
}

// NewRouterWithConfig creates the main HTTP router with optional config.
func NewRouterWithConfig(panelHandler *panel.Handler, healthHandler *HealthHandler, logger zerolog.Logger, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Metrics middleware (if enabled)
	if cfg.Metrics != nil {
		r.Use(NewMetricsMiddleware(cfg.Metrics))
	}

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Liveness)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Metrics endpoint (prefer the provided exporter handler, fall back to promhttp)
	metricsPath := cfg.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	if cfg.MetricsHandler != nil {
		r.Handle(metricsPath, cfg.MetricsHandler)
	} else if cfg.Metrics != nil {
		r.Handle(metricsPath, promhttp.Handler())
	}

	// OpenAPI/Swagger endpoints (if enabled)
	if cfg.EnableOpenAPI {
		// Serve the OpenAPI spec at a well-known location
		r.Get("/.well-known/openapi.json", func(w http.ResponseWriter, r *http.Request) {
			doc, err := swag.ReadDoc()
			if err != nil {
				http.Error(w, "openapi spec unavailable", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Write([]byte(doc))
		})

		// Swagger UI
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/.well-known/openapi.json"),
		))
	}

	// Version endpoint
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	r.Get("/version", versionHandler(version))

	// Panel API: auth, usage views, ingest, and management compatibility
	panelHandler.RegisterRoutes(r)

	// Unmatched routes get the panel error shape instead of a plain 404
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		panelapi.WriteNotFound(w, "Route not found")
	})

	return r
}

// NewMetricsMiddleware creates middleware that records request metrics.
func NewMetricsMiddleware(m *metrics.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip metrics for internal endpoints
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" ||
				strings.HasPrefix(r.URL.Path, "/swagger") || strings.HasPrefix(r.URL.Path, "/.well-known") {
				next.ServeHTTP(w, r)
				return
			}

			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := statusLabel(ww.Status())

			// Prefer the chi route pattern so path params don't explode cardinality
			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = metrics.NormalizePath(r.URL.Path)
			}

			m.RequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			m.RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		})
	}
}

// statusLabel returns a string label for the status code.
func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "other"
	}
}

// NewLoggingMiddleware creates a new logging middleware.
func NewLoggingMiddleware(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			// Skip logging for health checks and metrics
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" {
				return
			}

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("http request")
		})
	}
}
