package routes

import "net/http"

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
// Name is an optional identifier used in logs and duplicate diagnostics.
type Route struct {
	Method  string
	Pattern string
	Name    string
	Handler http.HandlerFunc
}

// Key returns the ServeMux pattern for the route under the given prefix.
func (r Route) Key(prefix string) string {
	return r.Method + " " + prefix + r.Pattern
}
