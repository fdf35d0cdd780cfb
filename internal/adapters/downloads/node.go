package downloads

import (
	"context"

	"github.com/grindlemire/graft"
	"go.loadout.dev/loadout/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.loadout.dev/loadout/internal/core/ports"
)

// NodeID is the unique identifier for the download factory Graft node.
const NodeID graft.ID = "adapter.downloads"

func init() {
	graft.Register(graft.Node[ports.DownloadTaskFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DownloadTaskFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(nil, log), nil
		},
	})
}
