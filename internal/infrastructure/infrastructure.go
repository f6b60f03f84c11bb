// Package infrastructure assembles the process-wide systems that endpoint
// providers depend on: lifecycle coordination, logging, and the optional
// database.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/endpoint-providers/internal/config"
	"github.com/JaimeStill/endpoint-providers/pkg/database"
	"github.com/JaimeStill/endpoint-providers/pkg/lifecycle"
	"github.com/JaimeStill/endpoint-providers/pkg/logging"
)

// Infrastructure holds the core systems required by all providers.
// Database is nil when the database is disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration, logging
// to w. Systems are initialized but not started; call Start separately.
func New(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging, w)

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
	}

	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start starts every configured system and registers it with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	return nil
}
