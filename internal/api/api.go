// Package api composes the HTTP surface: it scans registered endpoint
// providers with a Runtime scope and wraps the resulting mux in middleware.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/endpoint-providers/internal/routes"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints"
	"github.com/JaimeStill/endpoint-providers/pkg/middleware"
)

// Endpoints is the registry providers add themselves to from init.
var Endpoints = endpoints.NewRegistry[*Runtime]()

// NewHandler scans the modules identified by markers, builds their routes,
// and applies the middleware chain with the exception translator outermost.
func NewHandler(rt *Runtime, markers ...any) (http.Handler, error) {
	app := routes.New(rt.Logger)

	if _, err := Endpoints.AddEndpointsFromProviders(app, rt, markers...); err != nil {
		return nil, fmt.Errorf("add endpoints: %w", err)
	}

	mux, err := app.Build()
	if err != nil {
		return nil, fmt.Errorf("build routes: %w", err)
	}

	rt.Logger.Info("endpoints registered", "routes", len(app.Routes()), "groups", len(app.Groups()))

	mw := middleware.New()
	mw.Use(middleware.Exception(rt.Logger))
	mw.Use(middleware.RequestID())
	mw.Use(middleware.Logger(rt.Logger))
	mw.Use(middleware.CORS(&rt.Config.CORS))
	mw.Use(middleware.TrimSlash())

	return mw.Apply(mux), nil
}
