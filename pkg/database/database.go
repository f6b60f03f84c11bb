// Package database manages the PostgreSQL connection pool and schema
// migrations of the service.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/endpoint-providers/pkg/lifecycle"
)

// System owns a connection pool bound to the application lifecycle.
type System interface {
	Connection() *sql.DB
	Ping(ctx context.Context) error
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn   *sql.DB
	cfg    *Config
	logger *slog.Logger
	ready  atomic.Bool
}

// New opens a pgx-backed pool. No connection is made until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:   conn,
		cfg:    cfg,
		logger: logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

// Ping verifies the pool is reachable. It fails with ErrNotReady before Start
// has connected.
func (d *database) Ping(ctx context.Context) error {
	if !d.ready.Load() {
		return ErrNotReady
	}
	return d.conn.PingContext(ctx)
}

// Start registers a startup hook that verifies connectivity within the
// configured timeout, and a shutdown hook that closes the pool. Ping reports
// ErrNotReady until the startup hook has connected.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database system", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.conn.PingContext(ctx); err != nil {
			d.logger.Error("database connection failed", "error", err)
			return
		}
		d.ready.Store(true)
		d.logger.Info("database connected")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.ready.Store(false)
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
