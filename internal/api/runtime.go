package api

import (
	"github.com/JaimeStill/endpoint-providers/internal/config"
	"github.com/JaimeStill/endpoint-providers/internal/infrastructure"
)

// Runtime is the scope handed to every provider constructor. It extends
// Infrastructure with the configuration providers read at construction.
type Runtime struct {
	*infrastructure.Infrastructure
	Config *config.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
		},
		Config: cfg,
	}
}
