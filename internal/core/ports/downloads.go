package ports

import (
	"context"

	"go.loadout.dev/loadout/internal/core/domain"
)

// Destination describes where accepted downloads land.
type Destination struct {
	// Dir is the root directory for this resource type.
	Dir string
}

// DownloadTask is an opaque handle for one pending download. The engine only
// stores and enumerates these handles; it never inspects their execution.
//
//go:generate go run go.uber.org/mock/mockgen -source=downloads.go -destination=mocks/mock_downloads.go -package=mocks
type DownloadTask interface {
	// Name returns the package display name the task downloads.
	Name() string

	// Run performs the download. It must honor ctx cancellation.
	Run(ctx context.Context) error
}

// DownloadTaskFactory produces download task handles for selections.
type DownloadTaskFactory interface {
	// NewTask creates a task downloading the given version of the package
	// into dest. autoResolved records whether the selection was added by
	// dependency resolution.
	NewTask(pack domain.Package, version *domain.Version, dest Destination, autoResolved bool) (DownloadTask, error)
}
