package beta

import (
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints/internal/testproviders"
	"github.com/JaimeStill/endpoint-providers/pkg/routes"
)

// Marker identifies this package when scanning.
type Marker struct{}

type Only struct{ scope *testproviders.Scope }

func NewOnly(s *testproviders.Scope) (*Only, error) {
	s.Build("beta.Only")
	return &Only{scope: s}, nil
}

func (p *Only) AddEndpoints(app routes.System) error {
	p.scope.Add(app, "beta.Only", "/beta/only")
	return nil
}

func Register(r *endpoints.Registry[*testproviders.Scope]) {
	endpoints.Register(r, NewOnly)
}
