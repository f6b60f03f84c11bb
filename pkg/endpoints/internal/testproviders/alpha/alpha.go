package alpha

import (
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints/internal/testproviders"
	"github.com/JaimeStill/endpoint-providers/pkg/routes"
)

// Marker identifies this package when scanning.
type Marker struct{}

type First struct{ scope *testproviders.Scope }

func NewFirst(s *testproviders.Scope) (*First, error) {
	s.Build("alpha.First")
	return &First{scope: s}, nil
}

func (p *First) AddEndpoints(app routes.System) error {
	p.scope.Add(app, "alpha.First", "/alpha/first")
	return nil
}

type Second struct{ scope *testproviders.Scope }

func NewSecond(s *testproviders.Scope) (*Second, error) {
	s.Build("alpha.Second")
	return &Second{scope: s}, nil
}

func (p *Second) AddEndpoints(app routes.System) error {
	p.scope.Add(app, "alpha.Second", "/alpha/second")
	return nil
}

// Unbuildable has no scope constructor.
type Unbuildable struct{}

func (Unbuildable) AddEndpoints(app routes.System) error {
	panic("alpha.Unbuildable must never be constructed by a scan")
}

// Register adds the package's providers to r: First, Unbuildable, Second.
func Register(r *endpoints.Registry[*testproviders.Scope]) {
	endpoints.Register(r, NewFirst)
	endpoints.Declare[*testproviders.Scope, Unbuildable](r)
	endpoints.Register(r, NewSecond)
}
