package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/endpoint-providers/internal/config"
	"github.com/JaimeStill/endpoint-providers/pkg/logging"
)

const baseConfig = `version = "1.2.0"
shutdown_timeout = "45s"

[server]
port = 5000
max_header_bytes = "64KB"

[logging]
level = "debug"

[cors]
enabled = true
origins = ["http://localhost:3000"]

[weather]
max_count = 14
`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir_BaseConfig(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)

	cfg, err := config.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	if cfg.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", cfg.Version, "1.2.0")
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 5000)
	}
	if cfg.Logging.Level != logging.LevelDebug {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, logging.LevelDebug)
	}
	if !cfg.CORS.Enabled || len(cfg.CORS.Origins) != 1 {
		t.Errorf("CORS = %+v, want enabled with one origin", cfg.CORS)
	}
	if cfg.Weather.MaxCount != 14 {
		t.Errorf("Weather.MaxCount = %d, want %d", cfg.Weather.MaxCount, 14)
	}
}

func TestLoadDir_WithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "config.test.toml", `shutdown_timeout = "60s"

[server]
port = 9090

[database]
enabled = true
name = "forecasts"
`)

	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() with overlay error = %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.MaxHeaderBytes != "64KB" {
		t.Errorf("Server.MaxHeaderBytes = %q, want %q (kept from base)", cfg.Server.MaxHeaderBytes, "64KB")
	}
	if !cfg.Database.Enabled || cfg.Database.Name != "forecasts" {
		t.Errorf("Database = %+v, want enabled forecasts database", cfg.Database)
	}
	if cfg.Weather.MaxCount != 14 {
		t.Errorf("Weather.MaxCount = %d, want %d (kept from base)", cfg.Weather.MaxCount, 14)
	}
}

func TestLoadDir_MissingFile(t *testing.T) {
	if _, err := config.LoadDir(t.TempDir()); err == nil {
		t.Error("LoadDir() succeeded without config.toml, want error")
	}
}

func TestLoadDir_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, "[server\nport = ")

	if _, err := config.LoadDir(dir); err == nil {
		t.Error("LoadDir() succeeded with invalid TOML, want error")
	}
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.Config{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want %v", cfg.ShutdownTimeoutDuration(), 30*time.Second)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want %q", cfg.Server.Addr(), "0.0.0.0:8080")
	}
	if cfg.Server.MaxHeaderBytesValue() != 1000000 {
		t.Errorf("Server.MaxHeaderBytesValue() = %d, want %d", cfg.Server.MaxHeaderBytesValue(), 1000000)
	}
	if cfg.Database.Enabled {
		t.Error("Database.Enabled = true, want false by default")
	}
	if cfg.Weather.MaxCount != 100 {
		t.Errorf("Weather.MaxCount = %d, want %d", cfg.Weather.MaxCount, 100)
	}
	if len(cfg.Weather.Summaries) != len(config.DefaultSummaries) {
		t.Errorf("Weather.Summaries = %d entries, want %d", len(cfg.Weather.Summaries), len(config.DefaultSummaries))
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServiceShutdownTimeout, "10s")
	t.Setenv(config.EnvServerPort, "7070")
	t.Setenv("LOGGING_FORMAT", "json")
	t.Setenv(config.EnvWeatherMaxCount, "7")
	t.Setenv(config.EnvWeatherSummaries, "Dry, Wet")

	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ShutdownTimeout != "10s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "10s")
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 7070)
	}
	if cfg.Logging.Format != logging.FormatJSON {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, logging.FormatJSON)
	}
	if cfg.Weather.MaxCount != 7 {
		t.Errorf("Weather.MaxCount = %d, want %d", cfg.Weather.MaxCount, 7)
	}
	if len(cfg.Weather.Summaries) != 2 || cfg.Weather.Summaries[1] != "Wet" {
		t.Errorf("Weather.Summaries = %v, want [Dry Wet]", cfg.Weather.Summaries)
	}
}

func TestConfig_Finalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"shutdown timeout", config.Config{ShutdownTimeout: "soon"}},
		{"server port", config.Config{Server: config.ServerConfig{Port: 70000}}},
		{"max header bytes", config.Config{Server: config.ServerConfig{MaxHeaderBytes: "huge"}}},
		{"logging level", config.Config{Logging: logging.Config{Level: "trace"}}},
		{"weather max count", config.Config{Weather: config.WeatherConfig{MaxCount: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() succeeded, want error")
			}
		})
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{
		Host:           "localhost",
		Port:           8080,
		ReadTimeout:    "30s",
		WriteTimeout:   "30s",
		MaxHeaderBytes: "1MB",
	}

	base.Merge(&config.ServerConfig{
		Port:           9090,
		WriteTimeout:   "60s",
		MaxHeaderBytes: "not-a-size",
	})

	if base.Host != "localhost" {
		t.Errorf("Host = %q, want %q", base.Host, "localhost")
	}
	if base.Port != 9090 {
		t.Errorf("Port = %d, want %d", base.Port, 9090)
	}
	if base.WriteTimeout != "60s" {
		t.Errorf("WriteTimeout = %q, want %q", base.WriteTimeout, "60s")
	}
	if base.MaxHeaderBytes != "1MB" {
		t.Errorf("MaxHeaderBytes = %q, want %q", base.MaxHeaderBytes, "1MB")
	}
}
