package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Aurora-NEW/gcli2api/config"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 15s

panel:
  password: "hunter2"
  session_ttl: 1h30m

usage:
  capacity: 200
  max_batch: 50

logging:
  level: "debug"
  format: "console"
`

	cfg := writeAndLoad(t, content)

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Host = %s, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Panel.Password != "hunter2" {
		t.Errorf("Panel.Password = %s, want hunter2", cfg.Panel.Password)
	}
	if cfg.Panel.SessionTTL != 90*time.Minute {
		t.Errorf("Panel.SessionTTL = %v, want 1h30m", cfg.Panel.SessionTTL)
	}
	if cfg.Usage.Capacity != 200 {
		t.Errorf("Usage.Capacity = %d, want 200", cfg.Usage.Capacity)
	}
	if cfg.Usage.MaxBatch != 50 {
		t.Errorf("Usage.MaxBatch = %d, want 50", cfg.Usage.MaxBatch)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %s, want console", cfg.Logging.Format)
	}
}

func TestLoad_Defaults(t *testing.T) {
	content := `
panel:
  password: "hunter2"
`

	cfg := writeAndLoad(t, content)

	// Check defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("default Host = %s, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("default ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 60*time.Second {
		t.Errorf("default WriteTimeout = %v, want 60s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("default ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Panel.SessionTTL != 24*time.Hour {
		t.Errorf("default Panel.SessionTTL = %v, want 24h", cfg.Panel.SessionTTL)
	}
	if cfg.Usage.Capacity != config.DefaultCapacity {
		t.Errorf("default Usage.Capacity = %d, want %d", cfg.Usage.Capacity, config.DefaultCapacity)
	}
	if cfg.Usage.MaxBatch != config.DefaultMaxBatch {
		t.Errorf("default Usage.MaxBatch = %d, want %d", cfg.Usage.MaxBatch, config.DefaultMaxBatch)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default Logging.Level = %s, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("default Logging.Format = %s, want json", cfg.Logging.Format)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("default Metrics.Path = %s, want /metrics", cfg.Metrics.Path)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	os.Setenv("TEST_PANEL_PASSWORD", "expanded-secret")
	defer os.Unsetenv("TEST_PANEL_PASSWORD")

	content := `
panel:
  password: "${TEST_PANEL_PASSWORD}"
`

	cfg := writeAndLoad(t, content)

	if cfg.Panel.Password != "expanded-secret" {
		t.Errorf("Panel.Password = %s, want expanded-secret", cfg.Panel.Password)
	}
}

func TestLoad_PasswordHashOnly(t *testing.T) {
	content := `
panel:
  password_hash: "$2a$10$abcdefghijklmnopqrstuv"
`

	cfg := writeAndLoad(t, content)

	if cfg.Panel.PasswordHash != "$2a$10$abcdefghijklmnopqrstuv" {
		t.Errorf("Panel.PasswordHash = %s, want the configured hash", cfg.Panel.PasswordHash)
	}
	if cfg.Panel.Password != "" {
		t.Errorf("Panel.Password = %s, want empty", cfg.Panel.Password)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	content := `
server:
  port: 8080
`

	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for missing panel credentials")
	}
}

func TestLoad_NegativeCapacity(t *testing.T) {
	content := `
panel:
  password: "hunter2"

usage:
  capacity: -5
`

	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for negative usage.capacity")
	}
}

func TestLoad_NegativeMaxBatch(t *testing.T) {
	content := `
panel:
  password: "hunter2"

usage:
  max_batch: -1
`

	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for negative usage.max_batch")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	content := `
panel:
  password: "hunter2"

server:
  port: 70000
`

	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for out-of-range server.port")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `
panel:
  password: "hunter2"
  this is not valid yaml: [
`
	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "env-secret")
	os.Setenv("GCLI2API_SERVER_PORT", "9999")
	os.Setenv("GCLI2API_USAGE_CAPACITY", "1234")
	os.Setenv("GCLI2API_LOG_LEVEL", "debug")
	os.Setenv("GCLI2API_METRICS_ENABLED", "true")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_SERVER_PORT")
		os.Unsetenv("GCLI2API_USAGE_CAPACITY")
		os.Unsetenv("GCLI2API_LOG_LEVEL")
		os.Unsetenv("GCLI2API_METRICS_ENABLED")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Panel.Password != "env-secret" {
		t.Errorf("Panel.Password = %s, want env-secret", cfg.Panel.Password)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Usage.Capacity != 1234 {
		t.Errorf("Usage.Capacity = %d, want 1234", cfg.Usage.Capacity)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
}

func TestLoadFromEnv_MissingRequired(t *testing.T) {
	os.Unsetenv("GCLI2API_PANEL_PASSWORD")
	os.Unsetenv("GCLI2API_PANEL_PASSWORD_HASH")

	_, err := config.LoadFromEnv()
	if err == nil {
		t.Fatal("expected error for missing panel credentials")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	os.Setenv("GCLI2API_SERVER_PORT", "7777")
	os.Setenv("GCLI2API_LOG_LEVEL", "error")
	defer func() {
		os.Unsetenv("GCLI2API_SERVER_PORT")
		os.Unsetenv("GCLI2API_LOG_LEVEL")
	}()

	content := `
panel:
  password: "hunter2"
server:
  port: 8080
logging:
  level: "info"
`

	cfg := writeAndLoad(t, content)

	// Env should override file
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %s, want error (env override)", cfg.Logging.Level)
	}
	// File value should still be used for non-overridden
	if cfg.Panel.Password != "hunter2" {
		t.Errorf("Panel.Password = %s, want hunter2", cfg.Panel.Password)
	}
}

func TestLoadWithFallback_FileExists(t *testing.T) {
	content := `
panel:
  password: "file-secret"
`

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadWithFallback(path)
	if err != nil {
		t.Fatalf("LoadWithFallback error: %v", err)
	}

	if cfg.Panel.Password != "file-secret" {
		t.Errorf("Panel.Password = %s, want file-secret", cfg.Panel.Password)
	}
}

func TestLoadWithFallback_EnvOnly(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "env-fallback-secret")
	defer os.Unsetenv("GCLI2API_PANEL_PASSWORD")

	cfg, err := config.LoadWithFallback("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("LoadWithFallback error: %v", err)
	}

	if cfg.Panel.Password != "env-fallback-secret" {
		t.Errorf("Panel.Password = %s, want env-fallback-secret", cfg.Panel.Password)
	}
}

func TestLoadWithFallback_NoConfig(t *testing.T) {
	os.Unsetenv("GCLI2API_PANEL_PASSWORD")
	os.Unsetenv("GCLI2API_PANEL_PASSWORD_HASH")

	_, err := config.LoadWithFallback("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error when no config available")
	}
}

func TestLoadWithFallback_EmptyPath(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "env-secret")
	defer os.Unsetenv("GCLI2API_PANEL_PASSWORD")

	cfg, err := config.LoadWithFallback("")
	if err != nil {
		t.Fatalf("LoadWithFallback error: %v", err)
	}

	if cfg.Panel.Password != "env-secret" {
		t.Errorf("Panel.Password = %s, want env-secret", cfg.Panel.Password)
	}
}

func TestHasEnvConfig(t *testing.T) {
	os.Unsetenv("GCLI2API_PANEL_PASSWORD")
	os.Unsetenv("GCLI2API_PANEL_PASSWORD_HASH")
	if config.HasEnvConfig() {
		t.Error("HasEnvConfig() = true, want false")
	}

	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	defer os.Unsetenv("GCLI2API_PANEL_PASSWORD")
	if !config.HasEnvConfig() {
		t.Error("HasEnvConfig() = false, want true")
	}
}

func TestHasEnvConfig_HashOnly(t *testing.T) {
	os.Unsetenv("GCLI2API_PANEL_PASSWORD")
	os.Setenv("GCLI2API_PANEL_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	defer os.Unsetenv("GCLI2API_PANEL_PASSWORD_HASH")

	if !config.HasEnvConfig() {
		t.Error("HasEnvConfig() = false, want true with hash set")
	}
}

func TestParseBoolValues(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"1", true},
		{"yes", true},
		{"YES", true},
		{"on", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"", false},
		{"invalid", false},
	}

	for _, tt := range tests {
		os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
		os.Setenv("GCLI2API_METRICS_ENABLED", tt.value)

		cfg, err := config.LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv error: %v", err)
		}

		if cfg.Metrics.Enabled != tt.expected {
			t.Errorf("value=%q: Metrics.Enabled = %v, want %v", tt.value, cfg.Metrics.Enabled, tt.expected)
		}

		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_METRICS_ENABLED")
	}
}

func TestEnvOverrides_AllServerSettings(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	os.Setenv("GCLI2API_SERVER_HOST", "192.168.1.1")
	os.Setenv("GCLI2API_SERVER_PORT", "3000")
	os.Setenv("GCLI2API_SERVER_READ_TIMEOUT", "45s")
	os.Setenv("GCLI2API_SERVER_WRITE_TIMEOUT", "90s")
	os.Setenv("GCLI2API_SERVER_SHUTDOWN_TIMEOUT", "5s")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_SERVER_HOST")
		os.Unsetenv("GCLI2API_SERVER_PORT")
		os.Unsetenv("GCLI2API_SERVER_READ_TIMEOUT")
		os.Unsetenv("GCLI2API_SERVER_WRITE_TIMEOUT")
		os.Unsetenv("GCLI2API_SERVER_SHUTDOWN_TIMEOUT")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Server.Host != "192.168.1.1" {
		t.Errorf("Server.Host = %s, want 192.168.1.1", cfg.Server.Host)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 45s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 90*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want 90s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
}

func TestEnvOverrides_PanelSettings(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "env-password")
	os.Setenv("GCLI2API_PANEL_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	os.Setenv("GCLI2API_PANEL_SESSION_TTL", "2h")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_PANEL_PASSWORD_HASH")
		os.Unsetenv("GCLI2API_PANEL_SESSION_TTL")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Panel.Password != "env-password" {
		t.Errorf("Panel.Password = %s, want env-password", cfg.Panel.Password)
	}
	if cfg.Panel.PasswordHash != "$2a$10$abcdefghijklmnopqrstuv" {
		t.Errorf("Panel.PasswordHash = %s, want the env hash", cfg.Panel.PasswordHash)
	}
	if cfg.Panel.SessionTTL != 2*time.Hour {
		t.Errorf("Panel.SessionTTL = %v, want 2h", cfg.Panel.SessionTTL)
	}
}

func TestEnvOverrides_UsageSettings(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	os.Setenv("GCLI2API_USAGE_CAPACITY", "99")
	os.Setenv("GCLI2API_USAGE_MAX_BATCH", "7")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_USAGE_CAPACITY")
		os.Unsetenv("GCLI2API_USAGE_MAX_BATCH")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Usage.Capacity != 99 {
		t.Errorf("Usage.Capacity = %d, want 99", cfg.Usage.Capacity)
	}
	if cfg.Usage.MaxBatch != 7 {
		t.Errorf("Usage.MaxBatch = %d, want 7", cfg.Usage.MaxBatch)
	}
}

func TestEnvOverrides_LoggingSettings(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	os.Setenv("GCLI2API_LOG_LEVEL", "warn")
	os.Setenv("GCLI2API_LOG_FORMAT", "console")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_LOG_LEVEL")
		os.Unsetenv("GCLI2API_LOG_FORMAT")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %s, want warn", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %s, want console", cfg.Logging.Format)
	}
}

func TestEnvOverrides_MetricsPath(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	os.Setenv("GCLI2API_METRICS_ENABLED", "true")
	os.Setenv("GCLI2API_METRICS_PATH", "/internal/metrics")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_METRICS_ENABLED")
		os.Unsetenv("GCLI2API_METRICS_PATH")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
	if cfg.Metrics.Path != "/internal/metrics" {
		t.Errorf("Metrics.Path = %s, want /internal/metrics", cfg.Metrics.Path)
	}
}

func TestEnvOverrides_OpenAPISettings(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	os.Setenv("GCLI2API_OPENAPI_ENABLED", "yes")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_OPENAPI_ENABLED")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if !cfg.OpenAPI.Enabled {
		t.Error("OpenAPI.Enabled = false, want true")
	}
}

func TestEnvOverrides_InvalidPort(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	os.Setenv("GCLI2API_SERVER_PORT", "not-a-number")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_SERVER_PORT")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	// Invalid value ignored, default kept
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestEnvOverrides_InvalidDuration(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	os.Setenv("GCLI2API_PANEL_SESSION_TTL", "tomorrow")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_PANEL_SESSION_TTL")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Panel.SessionTTL != 24*time.Hour {
		t.Errorf("Panel.SessionTTL = %v, want default 24h", cfg.Panel.SessionTTL)
	}
}

func TestEnvOverrides_InvalidIntegers(t *testing.T) {
	os.Setenv("GCLI2API_PANEL_PASSWORD", "secret")
	os.Setenv("GCLI2API_USAGE_CAPACITY", "lots")
	os.Setenv("GCLI2API_USAGE_MAX_BATCH", "3.5")
	defer func() {
		os.Unsetenv("GCLI2API_PANEL_PASSWORD")
		os.Unsetenv("GCLI2API_USAGE_CAPACITY")
		os.Unsetenv("GCLI2API_USAGE_MAX_BATCH")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Usage.Capacity != config.DefaultCapacity {
		t.Errorf("Usage.Capacity = %d, want default %d", cfg.Usage.Capacity, config.DefaultCapacity)
	}
	if cfg.Usage.MaxBatch != config.DefaultMaxBatch {
		t.Errorf("Usage.MaxBatch = %d, want default %d", cfg.Usage.MaxBatch, config.DefaultMaxBatch)
	}
}

func TestLoad_AllConfigFields(t *testing.T) {
	content := `
server:
  host: "10.0.0.5"
  port: 8443
  read_timeout: 20s
  write_timeout: 40s
  shutdown_timeout: 15s

panel:
  password: "topsecret"
  password_hash: "$2a$10$abcdefghijklmnopqrstuv"
  session_ttl: 12h

usage:
  capacity: 10000
  max_batch: 250

logging:
  level: "error"
  format: "json"

metrics:
  enabled: true
  path: "/stats/prom"

openapi:
  enabled: true
`

	cfg := writeAndLoad(t, content)

	if cfg.Server.Host != "10.0.0.5" {
		t.Errorf("Server.Host = %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8443 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("Server.ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 40*time.Second {
		t.Errorf("Server.WriteTimeout = %v", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Panel.Password != "topsecret" {
		t.Errorf("Panel.Password = %s", cfg.Panel.Password)
	}
	if cfg.Panel.PasswordHash == "" {
		t.Error("Panel.PasswordHash is empty")
	}
	if cfg.Panel.SessionTTL != 12*time.Hour {
		t.Errorf("Panel.SessionTTL = %v", cfg.Panel.SessionTTL)
	}
	if cfg.Usage.Capacity != 10000 {
		t.Errorf("Usage.Capacity = %d", cfg.Usage.Capacity)
	}
	if cfg.Usage.MaxBatch != 250 {
		t.Errorf("Usage.MaxBatch = %d", cfg.Usage.MaxBatch)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false")
	}
	if cfg.Metrics.Path != "/stats/prom" {
		t.Errorf("Metrics.Path = %s", cfg.Metrics.Path)
	}
	if !cfg.OpenAPI.Enabled {
		t.Error("OpenAPI.Enabled = false")
	}
}

// Test helpers

func writeAndLoad(t *testing.T, content string) *config.Config {
	t.Helper()
	cfg, err := writeAndLoadErr(t, content)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return cfg
}

func writeAndLoadErr(t *testing.T, content string) (*config.Config, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return config.Load(path)
}
