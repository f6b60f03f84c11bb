// Package health serves the liveness and readiness endpoints.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/JaimeStill/endpoint-providers/internal/api"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints"
	"github.com/JaimeStill/endpoint-providers/pkg/handlers"
	"github.com/JaimeStill/endpoint-providers/pkg/lifecycle"
	"github.com/JaimeStill/endpoint-providers/pkg/routes"
)

// Marker identifies this package when scanning for providers.
type Marker struct{}

func init() {
	endpoints.Register(api.Endpoints, NewEndpoints)
}

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Endpoints serves /healthz and /readyz.
type Endpoints struct {
	ready lifecycle.ReadinessChecker
	db    Pinger
}

func NewEndpoints(rt *api.Runtime) (*Endpoints, error) {
	if rt.Database == nil {
		return New(rt.Lifecycle, nil), nil
	}
	return New(rt.Lifecycle, rt.Database), nil
}

// New creates health endpoints. db may be nil when no database is configured.
func New(ready lifecycle.ReadinessChecker, db Pinger) *Endpoints {
	return &Endpoints{ready: ready, db: db}
}

func (e *Endpoints) AddEndpoints(app routes.System) error {
	app.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Name:    "HealthCheck",
		Handler: e.Health,
	})
	app.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Name:    "ReadinessCheck",
		Handler: e.Ready,
	})
	return nil
}

func (e *Endpoints) Health(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, "OK")
}

// Ready reports 503 until every lifecycle startup hook has completed and,
// when a database is configured, while it cannot be reached.
func (e *Endpoints) Ready(w http.ResponseWriter, r *http.Request) {
	if !e.ready.Ready() {
		handlers.RespondText(w, http.StatusServiceUnavailable, "NOT READY")
		return
	}

	if e.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := e.db.Ping(ctx); err != nil {
			handlers.RespondText(w, http.StatusServiceUnavailable, "NOT READY")
			return
		}
	}

	handlers.RespondText(w, http.StatusOK, "READY")
}
