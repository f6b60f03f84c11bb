package routes

import "errors"

// ErrDuplicateRoute indicates two registrations share a method and pattern.
var ErrDuplicateRoute = errors.New("duplicate route")

// ErrInvalidRoute indicates the mux rejected a registration, either because the
// pattern is malformed or because it conflicts with an earlier pattern.
var ErrInvalidRoute = errors.New("invalid route")
