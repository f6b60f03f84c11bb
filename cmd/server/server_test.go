package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/JaimeStill/endpoint-providers/internal/config"
	"github.com/JaimeStill/endpoint-providers/internal/weather"
)

func getAvailablePort(t *testing.T) int {
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to find available port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func TestShippedConfig(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.LoadDir("../..")
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Database.Enabled {
		t.Error("shipped config enables the database; local runs would need PostgreSQL")
	}
}

func TestServer_Lifecycle(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Logging.Level = "error"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	cfg.Server.Port = getAvailablePort(t)

	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	base := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get(base + "/readyz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("server did not become ready")
		}
		time.Sleep(20 * time.Millisecond)
	}

	resp, err := http.Get(base + "/weatherforecast?count=3")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var forecasts []weather.Forecast
	if err := json.Unmarshal(body, &forecasts); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(forecasts) != 3 {
		t.Errorf("forecasts = %d, want 3", len(forecasts))
	}

	if err := srv.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
