package review

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.loadout.dev/loadout/internal/core/ports"
)

// NodeID is the unique identifier for the review prompt Graft node.
const NodeID graft.ID = "adapter.review"

func init() {
	graft.Register(graft.Node[ports.PlanReviewer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlanReviewer, error) {
			return NewPrompt(os.Stdin, os.Stdout), nil
		},
	})
}
