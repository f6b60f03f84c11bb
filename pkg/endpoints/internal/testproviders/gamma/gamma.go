package gamma

import (
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints/internal/testproviders"
	"github.com/JaimeStill/endpoint-providers/pkg/routes"
)

// Marker identifies this package when scanning.
type Marker struct{}

// Disabled opts out at construction time by returning a nil provider.
type Disabled struct{ scope *testproviders.Scope }

func NewDisabled(s *testproviders.Scope) (*Disabled, error) {
	s.Build("gamma.Disabled")
	return nil, nil
}

func (p *Disabled) AddEndpoints(app routes.System) error {
	p.scope.Add(app, "gamma.Disabled", "/gamma/disabled")
	return nil
}

type Enabled struct{ scope *testproviders.Scope }

func NewEnabled(s *testproviders.Scope) (*Enabled, error) {
	s.Build("gamma.Enabled")
	return &Enabled{scope: s}, nil
}

func (p *Enabled) AddEndpoints(app routes.System) error {
	p.scope.Add(app, "gamma.Enabled", "/gamma/enabled")
	return nil
}

func Register(r *endpoints.Registry[*testproviders.Scope]) {
	endpoints.Register(r, NewDisabled)
	endpoints.Register(r, NewEnabled)
}
