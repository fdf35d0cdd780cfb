package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.loadout.dev/loadout/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.loadout.dev/loadout/internal/adapters/downloads" //nolint:depguard // Wired in app layer
	"go.loadout.dev/loadout/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.loadout.dev/loadout/internal/adapters/pages"     //nolint:depguard // Wired in app layer
	"go.loadout.dev/loadout/internal/adapters/progress"  //nolint:depguard // Wired in app layer
	"go.loadout.dev/loadout/internal/adapters/providers" //nolint:depguard // Wired in app layer
	"go.loadout.dev/loadout/internal/adapters/review"    //nolint:depguard // Wired in app layer
	"go.loadout.dev/loadout/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			downloads.NodeID,
			pages.NodeID,
			providers.NodeID,
			review.NodeID,
			progress.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.DownloadTaskFactory](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[ports.PageRegistry](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*providers.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	reviewer, err := graft.Dep[ports.PlanReviewer](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.ProgressReporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, factory, registry, resolver, resolver, reviewer, reporter, log), nil
}
