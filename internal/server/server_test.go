package server_test

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/JaimeStill/endpoint-providers/internal/config"
	"github.com/JaimeStill/endpoint-providers/internal/server"
	"github.com/JaimeStill/endpoint-providers/pkg/lifecycle"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.ServerConfig {
	t.Helper()
	cfg := &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            1,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "5s",
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	// Port 0 asks the kernel for a free port; Finalize would reject it.
	cfg.Port = 0
	return cfg
}

func TestStart_ServesAndShutsDown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("test response"))
	})

	lc := lifecycle.New()
	sys := server.New(testConfig(t), handler, testLogger())

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	resp, err := http.Get("http://" + sys.Addr() + "/test")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if string(body) != "test response" {
		t.Errorf("body = %q, want %q", string(body), "test response")
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if _, err := http.Get("http://" + sys.Addr() + "/test"); err == nil {
		t.Error("server still accepting requests after shutdown")
	}
}

func TestStart_AddressInUse(t *testing.T) {
	lc := lifecycle.New()
	defer lc.Shutdown(5 * time.Second)

	first := server.New(testConfig(t), http.NotFoundHandler(), testLogger())
	if err := first.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	cfg := testConfig(t)
	host, port := splitAddr(t, first.Addr())
	cfg.Host = host
	cfg.Port = port

	second := server.New(cfg, http.NotFoundHandler(), testLogger())
	if err := second.Start(lc); err == nil {
		t.Error("Start() on a bound address succeeded, want error")
	}
}

func splitAddr(t *testing.T, addr string) (string, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split %q: %v", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port %q: %v", portStr, err)
	}
	return host, port
}
