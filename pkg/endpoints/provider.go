// Package endpoints discovers endpoint providers and lets them register routes
// on a shared routes.System.
//
// Providers self-register into a Registry from an init function, together with
// a constructor that accepts a single dependency handle (the scope). At startup
// the host scans the registry for the modules identified by a set of marker
// values, constructs every provider through a Factory bound to the scope, and
// calls AddEndpoints on each of them once.
//
// Registration order inside a package follows Go initialization order. It is
// stable for a given build but carries no meaning: providers should register
// disjoint routes and never depend on one another's order.
package endpoints

import "github.com/JaimeStill/endpoint-providers/pkg/routes"

// Provider is implemented by every unit that attaches routes to the application.
type Provider interface {
	AddEndpoints(app routes.System) error
}

// Constructor builds a provider from the dependency handle S.
type Constructor[S any] func(scope S) (Provider, error)
