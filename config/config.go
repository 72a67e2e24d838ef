// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the in-memory usage store.
const (
	DefaultCapacity = 50000
	DefaultMaxBatch = 1000
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Panel   PanelConfig   `yaml:"panel"`
	Usage   UsageConfig   `yaml:"usage"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	OpenAPI OpenAPIConfig `yaml:"openapi"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PanelConfig configures panel authentication.
// Set either password (compared in constant time) or password_hash
// (bcrypt, takes precedence when both are set).
type PanelConfig struct {
	Password     string        `yaml:"password,omitempty"`
	PasswordHash string        `yaml:"password_hash,omitempty"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
}

// UsageConfig configures the in-memory usage event store.
type UsageConfig struct {
	Capacity int `yaml:"capacity"`  // Max retained events, oldest evicted first
	MaxBatch int `yaml:"max_batch"` // Max events per ingest request
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // Enable /metrics endpoint
	Path    string `yaml:"path"`    // Custom path (default: /metrics)
}

// OpenAPIConfig configures OpenAPI/Swagger documentation.
type OpenAPIConfig struct {
	Enabled bool `yaml:"enabled"` // Enable OpenAPI endpoints
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(&cfg)

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv creates configuration entirely from environment variables.
// This is useful for Docker deployments where no config file is needed.
//
// Environment variables:
//
//	GCLI2API_PANEL_PASSWORD       - Panel password (this or the hash is required)
//	GCLI2API_PANEL_PASSWORD_HASH  - Bcrypt hash of the panel password
//	GCLI2API_PANEL_SESSION_TTL    - Session lifetime (default: 24h)
//	GCLI2API_SERVER_HOST          - Server host (default: 0.0.0.0)
//	GCLI2API_SERVER_PORT          - Server port (default: 8080)
//	GCLI2API_USAGE_CAPACITY       - Max retained usage events (default: 50000)
//	GCLI2API_USAGE_MAX_BATCH      - Max events per ingest batch (default: 1000)
//	GCLI2API_LOG_LEVEL            - Log level: debug, info, warn, error (default: info)
//	GCLI2API_LOG_FORMAT           - Log format: json or console (default: json)
//	GCLI2API_METRICS_ENABLED      - Enable /metrics endpoint
//	GCLI2API_OPENAPI_ENABLED      - Enable OpenAPI/Swagger
func LoadFromEnv() (*Config, error) {
	var cfg Config

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithFallback tries to load from file, falls back to environment variables.
// This is the recommended method for Docker deployments.
func LoadWithFallback(path string) (*Config, error) {
	// Try loading from file first
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	// Check if we have enough env vars to run
	if HasEnvConfig() {
		return LoadFromEnv()
	}

	// No config available
	return nil, fmt.Errorf("no configuration found: provide config file or set GCLI2API_PANEL_PASSWORD")
}

// HasEnvConfig returns true if essential environment variables are set.
func HasEnvConfig() bool {
	return os.Getenv("GCLI2API_PANEL_PASSWORD") != "" || os.Getenv("GCLI2API_PANEL_PASSWORD_HASH") != ""
}

// applyEnvOverrides applies GCLI2API_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) {
	// Server configuration
	if v := os.Getenv("GCLI2API_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("GCLI2API_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GCLI2API_SERVER_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if v := os.Getenv("GCLI2API_SERVER_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if v := os.Getenv("GCLI2API_SERVER_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}

	// Panel configuration
	if v := os.Getenv("GCLI2API_PANEL_PASSWORD"); v != "" {
		cfg.Panel.Password = v
	}
	if v := os.Getenv("GCLI2API_PANEL_PASSWORD_HASH"); v != "" {
		cfg.Panel.PasswordHash = v
	}
	if v := os.Getenv("GCLI2API_PANEL_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Panel.SessionTTL = d
		}
	}

	// Usage store configuration
	if v := os.Getenv("GCLI2API_USAGE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Usage.Capacity = n
		}
	}
	if v := os.Getenv("GCLI2API_USAGE_MAX_BATCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Usage.MaxBatch = n
		}
	}

	// Logging configuration
	if v := os.Getenv("GCLI2API_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("GCLI2API_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	// Metrics configuration
	if v := os.Getenv("GCLI2API_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
	if v := os.Getenv("GCLI2API_METRICS_PATH"); v != "" {
		cfg.Metrics.Path = v
	}

	// OpenAPI configuration
	if v := os.Getenv("GCLI2API_OPENAPI_ENABLED"); v != "" {
		cfg.OpenAPI.Enabled = parseBool(v)
	}
}

// parseBool parses a boolean from common string values.
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Panel.SessionTTL == 0 {
		cfg.Panel.SessionTTL = 24 * time.Hour
	}

	if cfg.Usage.Capacity == 0 {
		cfg.Usage.Capacity = DefaultCapacity
	}
	if cfg.Usage.MaxBatch == 0 {
		cfg.Usage.MaxBatch = DefaultMaxBatch
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	if cfg.Panel.Password == "" && cfg.Panel.PasswordHash == "" {
		return fmt.Errorf("panel.password or panel.password_hash is required")
	}

	if cfg.Usage.Capacity < 0 {
		return fmt.Errorf("usage.capacity must be positive, got %d", cfg.Usage.Capacity)
	}
	if cfg.Usage.MaxBatch < 0 {
		return fmt.Errorf("usage.max_batch must be positive, got %d", cfg.Usage.MaxBatch)
	}

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535, got %d", cfg.Server.Port)
	}

	return nil
}
