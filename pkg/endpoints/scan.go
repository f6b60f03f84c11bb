package endpoints

import (
	"fmt"

	"github.com/JaimeStill/endpoint-providers/pkg/routes"
)

// AddEndpointsFromProviders discovers the providers registered for the modules
// identified by markers, builds each one from scope, and lets it add its routes
// to app. Providers are collected in marker order, then registration order, and
// invoked exactly once per call.
//
// The call is not idempotent: scanning the same markers twice registers every
// route twice. The caller owns scope and decides its lifetime.
func (r *Registry[S]) AddEndpointsFromProviders(app routes.System, scope S, markers ...any) (routes.System, error) {
	factory := NewFactory(r, scope)

	var providers []Provider
	for _, marker := range markers {
		module, err := ModuleOf(marker)
		if err != nil {
			return nil, err
		}

		for _, t := range r.Types(module) {
			p, ok, err := factory.Provider(t)
			if err != nil {
				return nil, fmt.Errorf("construct provider %s: %w", t, err)
			}
			if !ok {
				continue
			}
			providers = append(providers, p)
		}
	}

	for _, p := range providers {
		if err := p.AddEndpoints(app); err != nil {
			return nil, fmt.Errorf("add endpoints from %T: %w", p, err)
		}
	}

	return app, nil
}
