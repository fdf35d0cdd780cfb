package ports

import "context"

// ProgressReporter surfaces long-running work to the user. The resolution
// pass reports one unit per selected package so the user can see what is
// being queried and abort the run.
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressReporter interface {
	// Begin opens a named unit of work and returns its handle.
	Begin(ctx context.Context, name string) (context.Context, ProgressUnit)

	// Close flushes and tears down the reporting session.
	Close() error
}

// ProgressUnit is one live unit of reported work.
type ProgressUnit interface {
	// Done completes the unit. A non-nil err marks it failed.
	Done(err error)
}
