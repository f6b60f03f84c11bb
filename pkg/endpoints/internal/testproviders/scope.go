// Package testproviders holds provider fixtures spread over several packages so
// tests can scan more than one module.
package testproviders

import (
	"net/http"

	"github.com/JaimeStill/endpoint-providers/pkg/routes"
)

// Scope is the dependency handle handed to fixture constructors.
// It records constructor and AddEndpoints calls in order.
type Scope struct {
	Built []string
	Added []string
}

// Build records that the named provider was constructed.
func (s *Scope) Build(name string) {
	s.Built = append(s.Built, name)
}

// Add records the AddEndpoints call and registers a route named after the provider.
func (s *Scope) Add(app routes.System, name, pattern string) {
	s.Added = append(s.Added, name)
	app.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: pattern,
		Name:    name,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(name))
		},
	})
}
