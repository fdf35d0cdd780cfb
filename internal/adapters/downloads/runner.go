package downloads

import (
	"context"

	"go.loadout.dev/loadout/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelism bounds concurrent downloads when the caller passes 0.
const DefaultParallelism = 4

// RunAll executes the given download tasks with bounded parallelism. The
// first failure cancels the remaining tasks.
func RunAll(ctx context.Context, tasks []ports.DownloadTask, parallelism int) error {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, t := range tasks {
		g.Go(func() error {
			return t.Run(ctx)
		})
	}

	return g.Wait()
}
