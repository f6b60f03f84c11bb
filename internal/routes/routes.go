// Package routes provides HTTP route registration and handler building.
package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	pkgroutes "github.com/JaimeStill/endpoint-providers/pkg/routes"
)

type routes struct {
	routes []pkgroutes.Route
	groups []pkgroutes.Group
	logger *slog.Logger
}

// New creates a route system with the specified logger.
func New(logger *slog.Logger) pkgroutes.System {
	return &routes{
		logger: logger.With("system", "routes"),
		groups: []pkgroutes.Group{},
		routes: []pkgroutes.Route{},
	}
}

func (r *routes) Groups() []pkgroutes.Group {
	return r.groups
}

func (r *routes) Routes() []pkgroutes.Route {
	return r.routes
}

// RegisterRoute adds a route to the route system.
func (r *routes) RegisterRoute(route pkgroutes.Route) {
	r.routes = append(r.routes, route)
}

// RegisterGroup adds a route group to the route system.
func (r *routes) RegisterGroup(group pkgroutes.Group) {
	r.groups = append(r.groups, group)
}

// Build constructs an http.ServeMux from all registered routes and groups.
// Duplicate, conflicting, and malformed patterns are reported as errors
// rather than ServeMux panics.
func (r *routes) Build() (http.Handler, error) {
	mux := http.NewServeMux()
	seen := make(map[string]string)

	for _, route := range r.routes {
		if err := r.handle(mux, seen, "", route); err != nil {
			return nil, err
		}
	}

	for _, group := range r.groups {
		if err := r.registerGroup(mux, seen, "", group); err != nil {
			return nil, err
		}
	}

	return mux, nil
}

func (r *routes) registerGroup(mux *http.ServeMux, seen map[string]string, parentPrefix string, group pkgroutes.Group) error {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		if err := r.handle(mux, seen, fullPrefix, route); err != nil {
			return err
		}
	}
	for _, child := range group.Children {
		if err := r.registerGroup(mux, seen, fullPrefix, child); err != nil {
			return err
		}
	}
	return nil
}

func (r *routes) handle(mux *http.ServeMux, seen map[string]string, prefix string, route pkgroutes.Route) (err error) {
	key := route.Key(prefix)
	if prev, ok := seen[key]; ok {
		return fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateRoute, key, prev, route.Name)
	}
	seen[key] = route.Name

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s (%s): %v", ErrInvalidRoute, key, route.Name, rec)
		}
	}()

	mux.HandleFunc(key, route.Handler)
	r.logger.Debug("route registered", "pattern", key, "name", route.Name)
	return nil
}
