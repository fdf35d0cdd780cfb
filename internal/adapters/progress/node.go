package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.loadout.dev/loadout/internal/core/ports"
)

// NodeID is the unique identifier for the progress adapter node.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.ProgressReporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProgressReporter, error) {
			return New(), nil
		},
	})
}
