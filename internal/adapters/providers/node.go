package providers

import (
	"context"

	"github.com/grindlemire/graft"
	"go.loadout.dev/loadout/internal/adapters/config"   //nolint:depguard // Wired in adapter wiring
	"go.loadout.dev/loadout/internal/adapters/progress" //nolint:depguard // Wired in adapter wiring
	"go.loadout.dev/loadout/internal/core/ports"
)

// NodeID is the unique identifier for the provider resolver Graft node. The
// node exposes the concrete Resolver, which serves both the dependency
// resolver and the package catalog ports.
const NodeID graft.ID = "adapter.providers"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			progress.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.ProgressReporter](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(NewClient(), cfg.Providers, reporter), nil
		},
	})
}
