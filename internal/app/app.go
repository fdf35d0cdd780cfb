// Package app implements the application layer for loadout.
package app

import (
	"context"
	"strings"
	"sync"

	"go.loadout.dev/loadout/internal/adapters/config"
	"go.loadout.dev/loadout/internal/adapters/downloads"
	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.loadout.dev/loadout/internal/engine/confirm"
	"go.loadout.dev/loadout/internal/engine/selection"
	"go.trai.ch/zerr"
)

// App represents the main application logic. It owns one Session per
// resource type so that mods, resource packs, texture packs and shader
// packs keep independent selection sets.
type App struct {
	config   *config.Config
	factory  ports.DownloadTaskFactory
	pages    ports.PageRegistry
	resolver ports.DependencyResolver
	catalog  ports.PackageCatalog
	reviewer ports.PlanReviewer
	progress ports.ProgressReporter
	logger   ports.Logger

	mu       sync.Mutex
	sessions map[domain.ResourceType]*Session
}

// New creates a new App instance.
func New(
	cfg *config.Config,
	factory ports.DownloadTaskFactory,
	pages ports.PageRegistry,
	resolver ports.DependencyResolver,
	catalog ports.PackageCatalog,
	reviewer ports.PlanReviewer,
	progress ports.ProgressReporter,
	logger ports.Logger,
) *App {
	return &App{
		config:   cfg,
		factory:  factory,
		pages:    pages,
		resolver: resolver,
		catalog:  catalog,
		reviewer: reviewer,
		progress: progress,
		logger:   logger,
		sessions: make(map[domain.ResourceType]*Session),
	}
}

// RunOptions control a confirmation attempt started through the App.
type RunOptions struct {
	// PlanOnly stops after the plan is accepted, skipping downloads.
	PlanOnly bool
	// Parallelism bounds concurrent downloads; 0 uses the default.
	Parallelism int
}

// GetOptions describe a full get run: which packages to select and how to
// confirm them.
type GetOptions struct {
	Provider domain.Provider
	Type     domain.ResourceType
	AddonIDs []string

	RunOptions
}

// Session returns the selection session for the given resource type,
// creating it on first use.
func (a *App) Session(rt domain.ResourceType) *Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.sessions[rt]; ok {
		return s
	}

	store := selection.NewStore(a.factory, a.config.Destination(rt), a.pages)
	builder := confirm.NewPlanBuilder(a.config.Providers)
	s := &Session{
		resourceType: rt,
		store:        store,
		coordinator:  confirm.NewCoordinator(store, a.resolver, a.reviewer, builder, a.progress, a.logger),
		logger:       a.logger,
	}
	a.sessions[rt] = s
	return s
}

// Get selects the named packages from a provider, resolves their
// dependencies and, once the plan is accepted, downloads everything.
func (a *App) Get(ctx context.Context, opts GetOptions) error {
	if len(opts.AddonIDs) == 0 {
		return domain.ErrNoSelections
	}

	session := a.Session(opts.Type)

	for _, id := range opts.AddonIDs {
		dep, err := a.catalog.Lookup(ctx, opts.Provider, opts.Type, id)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to look up package"), "addon_id", id)
		}
		if err := session.AddSelection(dep.Pack, dep.Version, false); err != nil {
			return err
		}
	}

	result, err := session.RunConfirmationAttempt(ctx, opts.RunOptions)
	if err != nil {
		return err
	}

	switch result.Status {
	case confirm.AttemptAborted:
		a.logger.Warn("dependency resolution was cancelled, nothing selected")
	case confirm.AttemptCancelled:
		a.logger.Info("download plan rejected, nothing downloaded")
	case confirm.AttemptAccepted:
		if opts.PlanOnly {
			a.logger.Info("plan accepted, skipping downloads")
		}
	}
	return nil
}

// Session tracks the selections of a single resource type and drives
// confirmation attempts over them.
type Session struct {
	resourceType domain.ResourceType
	store        *selection.Store
	coordinator  *confirm.Coordinator
	logger       ports.Logger
}

// ResourceType reports which resource type this session manages.
func (s *Session) ResourceType() domain.ResourceType {
	return s.resourceType
}

// AddSelection records a version choice for a package. A previous choice
// for the same package is replaced.
func (s *Session) AddSelection(pack domain.Package, version *domain.Version, autoResolved bool) error {
	return s.store.Add(pack, version, autoResolved)
}

// RemoveSelection drops a package from the selection set.
func (s *Session) RemoveSelection(pack domain.Package, version *domain.Version) {
	s.store.Remove(pack, version)
}

// HasSelections reports whether anything is currently selected.
func (s *Session) HasSelections() bool {
	return !s.store.IsEmpty()
}

// Store exposes the underlying selection store.
func (s *Session) Store() *selection.Store {
	return s.store
}

// RunConfirmationAttempt resolves dependencies for the current selections,
// asks the reviewer to confirm the resulting plan and, on acceptance, runs
// the downloads unless opts.PlanOnly is set.
func (s *Session) RunConfirmationAttempt(ctx context.Context, opts RunOptions) (confirm.AttemptResult, error) {
	result, err := s.coordinator.Run(ctx)
	if err != nil {
		return confirm.AttemptResult{}, err
	}

	if len(result.Warnings) > 0 {
		s.logger.Warn(strings.Join(result.Warnings, "\n"))
	}

	if result.Status != confirm.AttemptAccepted || opts.PlanOnly {
		return result, nil
	}

	if err := downloads.RunAll(ctx, result.Tasks, opts.Parallelism); err != nil {
		return result, zerr.Wrap(err, "downloads failed")
	}
	return result, nil
}
