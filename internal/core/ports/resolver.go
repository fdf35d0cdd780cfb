// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.loadout.dev/loadout/internal/core/domain"
)

// DependencyResolver computes the transitive closure of packages required by
// the current selections that are not already selected.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Resolve inspects the given selected (package, version) pairs and
	// returns the resolution outcome. It performs network queries per
	// package and must honor ctx cancellation promptly, reporting an
	// aborted run as a cancelled outcome rather than an error.
	Resolve(ctx context.Context, selected []domain.PackDependency) domain.ResolutionOutcome
}

// PackageCatalog answers direct addon lookups against a provider, used to
// seed selections when the user names packages by id.
type PackageCatalog interface {
	// Lookup fetches the package identified by addonID together with its
	// latest downloadable version.
	Lookup(ctx context.Context, provider domain.Provider, typ domain.ResourceType, addonID string) (domain.PackDependency, error)
}
