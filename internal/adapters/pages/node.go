package pages

import (
	"context"

	"github.com/grindlemire/graft"
	"go.loadout.dev/loadout/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.loadout.dev/loadout/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
)

// NodeID is the unique identifier for the page registry Graft node.
const NodeID graft.ID = "adapter.pages"

func init() {
	graft.Register(graft.Node[ports.PageRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (ports.PageRegistry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			registry := NewRegistry(log)
			for _, provider := range []domain.Provider{domain.ProviderModrinth, domain.ProviderFlame} {
				if cfg.Providers.Enabled(provider) {
					registry.Register(NewCachedPage(provider))
				}
			}
			return registry, nil
		},
	})
}
