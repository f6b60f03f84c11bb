// Package routes defines the application handle that endpoint providers
// register their routes on.
package routes

import "net/http"

// System defines the interface for route registration and HTTP handler building.
// Implementations handle the actual registration and multiplexer construction.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)

	// Build constructs the handler for everything registered so far.
	// It fails if two registrations resolve to the same method and pattern.
	Build() (http.Handler, error)

	Groups() []Group
	Routes() []Route
}
