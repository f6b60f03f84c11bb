package main

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/endpoint-providers/internal/api"
	"github.com/JaimeStill/endpoint-providers/internal/config"
	"github.com/JaimeStill/endpoint-providers/internal/infrastructure"
	"github.com/JaimeStill/endpoint-providers/internal/server"
	"github.com/JaimeStill/endpoint-providers/internal/weather"
	"github.com/JaimeStill/endpoint-providers/pkg/database"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	cfg   *config.Config
	infra *infrastructure.Infrastructure
	http  server.System
}

// NewServer builds the infrastructure, scans the endpoint providers, and
// prepares the HTTP server. Nothing is started.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}

	rt := api.NewRuntime(cfg, infra)

	handler, err := api.NewHandler(rt, providerMarkers...)
	if err != nil {
		return nil, err
	}

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"database", cfg.Database.Enabled,
	)

	return &Server{
		cfg:   cfg,
		infra: infra,
		http:  server.New(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start applies the forecast schema and begins serving. The database pool
// connects in a startup hook; /readyz reports ready once all startup hooks
// return and the database answers a ping.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting server")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if s.infra.Database != nil {
		if err := database.Migrate(&s.cfg.Database, weather.Migrations, "migrations", s.infra.Logger); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
