package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config Graft node.
const NodeID graft.ID = "adapter.config"

// DefaultFilename is the configuration file loaded when LOADOUT_CONFIG is
// not set.
const DefaultFilename = "loadout.yaml"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Config, error) {
			path := os.Getenv("LOADOUT_CONFIG")
			if path == "" {
				path = DefaultFilename
			}
			return Load(path)
		},
	})
}
