// Package bootstrap wires all dependencies and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Aurora-NEW/gcli2api/adapters/clock"
	"github.com/Aurora-NEW/gcli2api/adapters/hasher"
	apihttp "github.com/Aurora-NEW/gcli2api/adapters/http"
	"github.com/Aurora-NEW/gcli2api/adapters/http/panel"
	"github.com/Aurora-NEW/gcli2api/adapters/idgen"
	"github.com/Aurora-NEW/gcli2api/adapters/memory"
	"github.com/Aurora-NEW/gcli2api/adapters/metrics"
	"github.com/Aurora-NEW/gcli2api/app"
	"github.com/Aurora-NEW/gcli2api/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Version is reported by the /version endpoint and the version command.
// Overridden at build time via -ldflags "-X .../bootstrap.Version=v1.2.3".
var Version = "dev"

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Holder
	HTTPServer *http.Server
	Metrics    *metrics.Collector
	Tracker    *memory.Tracker
	Usage      *app.UsageService

	shutdownOnce sync.Once
}

// New creates and initializes the application from a static config.
func New(cfg *config.Config) (*App, error) {
	logger := setupLogger(cfg.Logging)
	return build(config.NewStatic(cfg, logger), logger)
}

// NewWithHotReload creates the application from a config file and watches
// it for changes. Reloadable fields take effect without a restart; the
// watcher also reloads on SIGHUP.
func NewWithHotReload(path string) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := setupLogger(cfg.Logging)
	holder, err := config.NewHolder(path, logger)
	if err != nil {
		return nil, fmt.Errorf("init config holder: %w", err)
	}

	a, err := build(holder, logger)
	if err != nil {
		return nil, err
	}

	if err := holder.WatchFile(); err != nil {
		logger.Warn().Err(err).Msg("config file watching unavailable")
	} else {
		logger.Info().Str("path", path).Msg("watching config file for changes")
	}
	holder.WatchSignals()

	return a, nil
}

func build(holder *config.Holder, logger zerolog.Logger) (*App, error) {
	cfg := holder.Get()

	logger.Info().Msg("initializing gcli2api")

	a := &App{
		Logger: logger,
		Config: holder,
	}

	// Metrics
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New()
		logger.Info().Msg("prometheus metrics enabled")
	}

	// Usage tracker
	a.Tracker = memory.NewTracker(cfg.Usage.Capacity)
	logger.Info().Int("capacity", a.Tracker.Capacity()).Msg("usage tracker initialized")

	if a.Metrics != nil {
		metrics.RegisterEvictionFunc(prometheus.DefaultRegisterer, func() float64 {
			return float64(a.Tracker.Evicted())
		})
	}

	// Config reload observability
	holder.OnChange(func(c *config.Config) {
		if a.Metrics != nil {
			a.Metrics.ConfigReloads.Inc()
			a.Metrics.ConfigLastReload.SetToCurrentTime()
		}
	})
	holder.OnReloadError(func(err error) {
		if a.Metrics != nil {
			a.Metrics.ConfigReloadErrors.Inc()
		}
	})

	// Usage service
	clk := clock.Real{}
	a.Usage = app.NewUsageService(a.Tracker, clk, logger, a.Metrics)

	// Panel handler. It reads credentials through the holder so password
	// rotations apply to the next request.
	panelHandler := panel.NewHandler(panel.Deps{
		Service: a.Usage,
		Config:  holder,
		Logger:  logger,
		Hasher:  hasher.NewBcrypt(0),
		IDs:     idgen.UUID{},
		Clock:   clk,
		Metrics: a.Metrics,
	})

	healthHandler := apihttp.NewHealthHandler(a.Tracker)

	router := apihttp.NewRouterWithConfig(panelHandler, healthHandler, logger, apihttp.RouterConfig{
		Metrics:       a.Metrics,
		MetricsPath:   cfg.Metrics.Path,
		EnableOpenAPI: cfg.OpenAPI.Enabled,
		Version:       Version,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	a.HTTPServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	a.Logger.Info().Str("addr", addr).Msg("http server configured")
	return a, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", a.HTTPServer.Addr).
			Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application. Safe to call more than once.
func (a *App) Shutdown() error {
	a.shutdownOnce.Do(func() {
		timeout := a.Config.Get().Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// Stop the config watcher before draining the server
		a.Config.Stop()

		if a.HTTPServer != nil {
			if err := a.HTTPServer.Shutdown(ctx); err != nil {
				a.Logger.Error().Err(err).Msg("http server shutdown error")
			}
		}

		a.Logger.Info().Msg("shutdown complete")
	})
	return nil
}

func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = "info"
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
