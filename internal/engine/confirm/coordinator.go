// Package confirm implements the confirmation attempt: dependency
// resolution, plan building, review, and applying the reviewer's verdict.
package confirm

import (
	"context"
	"fmt"

	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.loadout.dev/loadout/internal/engine/selection"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// AttemptStatus is the terminal state of one confirmation attempt.
type AttemptStatus string

const (
	// AttemptAborted means resolution was cancelled; the store is exactly as
	// it was before the attempt and no plan was built.
	AttemptAborted AttemptStatus = "aborted"
	// AttemptCancelled means the user rejected the plan during review; the
	// store is unchanged and no downloads proceed.
	AttemptCancelled AttemptStatus = "cancelled"
	// AttemptAccepted means the plan was confirmed, deselections applied.
	AttemptAccepted AttemptStatus = "accepted"
)

// AttemptResult is the outcome of Coordinator.Run.
type AttemptResult struct {
	Status AttemptStatus

	// Plan is the accepted plan, present only when Status is AttemptAccepted.
	Plan domain.DownloadPlan

	// Tasks are the download handles of the confirmed selections, in plan
	// order. Only set on acceptance.
	Tasks []ports.DownloadTask

	// Warnings is advisory text gathered during resolution, including
	// notices about resolver versions superseding manual selections.
	Warnings []string

	// FailureReason carries the resolver's failure text when resolution
	// failed but the attempt proceeded with the existing selections.
	FailureReason string
}

// Coordinator drives a single confirmation attempt over the selection store.
// At most one attempt may be in flight; concurrent runs are rejected with
// domain.ErrAttemptInFlight so dependency results are never merged into a
// selection set that changed mid-flight.
type Coordinator struct {
	store    *selection.Store
	resolver ports.DependencyResolver
	reviewer ports.PlanReviewer
	builder  *PlanBuilder
	progress ports.ProgressReporter
	logger   ports.Logger

	inflight *semaphore.Weighted
}

// NewCoordinator creates a Coordinator over the given collaborators.
func NewCoordinator(
	store *selection.Store,
	resolver ports.DependencyResolver,
	reviewer ports.PlanReviewer,
	builder *PlanBuilder,
	progress ports.ProgressReporter,
	logger ports.Logger,
) *Coordinator {
	return &Coordinator{
		store:    store,
		resolver: resolver,
		reviewer: reviewer,
		builder:  builder,
		progress: progress,
		logger:   logger,
		inflight: semaphore.NewWeighted(1),
	}
}

// Run executes one confirmation attempt:
//
//	Idle -> ResolvingDependencies -> {Aborted | BuildingPlan} ->
//	AwaitingReview -> {Accepted | Cancelled} -> Idle
//
// A failed resolution is not fatal: the attempt proceeds to plan the
// selections as they stood, surfacing the failure reason in the result.
func (c *Coordinator) Run(ctx context.Context) (AttemptResult, error) {
	if !c.inflight.TryAcquire(1) {
		return AttemptResult{}, domain.ErrAttemptInFlight
	}
	defer c.inflight.Release(1)

	if c.store.IsEmpty() {
		return AttemptResult{}, domain.ErrNoSelections
	}

	result := c.resolveAndMerge(ctx)
	if result.Status == AttemptAborted {
		return result, nil
	}

	plan := c.builder.Build(c.store)

	decision, err := c.reviewer.Review(ctx, plan)
	if err != nil {
		return AttemptResult{}, zerr.Wrap(err, "plan review failed")
	}
	if !decision.Accepted {
		result.Status = AttemptCancelled
		return result, nil
	}

	c.applyDeselections(decision.Deselected)

	result.Status = AttemptAccepted
	result.Plan = c.builder.Build(c.store)
	result.Tasks = c.store.Tasks()
	return result, nil
}

// resolveAndMerge runs the external resolver over the current selections and
// folds discovered dependencies into the store. Cancellation contributes
// nothing and aborts the attempt with the store untouched.
func (c *Coordinator) resolveAndMerge(ctx context.Context) AttemptResult {
	ctx, unit := c.progress.Begin(ctx, "checking for dependencies")

	outcome := c.resolver.Resolve(ctx, c.store.Selected())

	switch {
	case outcome.IsCancelled() || ctx.Err() != nil:
		unit.Done(ctx.Err())
		c.logger.Info("dependency resolution aborted")
		return AttemptResult{Status: AttemptAborted}

	case outcome.IsFailed():
		unit.Done(zerr.With(zerr.New("dependency resolution failed"), "reason", outcome.Reason))
		c.logger.Warn(fmt.Sprintf("dependency resolution failed: %s", outcome.Reason))
		return AttemptResult{FailureReason: outcome.Reason}

	default:
		warnings := c.merge(outcome)
		unit.Done(nil)
		return AttemptResult{Warnings: warnings}
	}
}

// merge adds each newly discovered dependency to the store. The resolver is
// authoritative for compatibility, so its version unconditionally replaces a
// prior manual selection of the same package; when that changes the version,
// the user is told through the warnings channel rather than blocked.
func (c *Coordinator) merge(outcome domain.ResolutionOutcome) []string {
	warnings := append([]string(nil), outcome.Warnings...)

	for _, dep := range outcome.Dependencies {
		if prior := c.store.Lookup(dep.Pack.Name); prior != nil &&
			!prior.AutoResolved && prior.Version.ID != dep.Version.ID {
			warnings = append(warnings, fmt.Sprintf(
				"%s: resolved version %s replaces your selected version %s",
				dep.Pack.Name, dep.Version.ID, prior.Version.ID))
		}

		if err := c.store.Add(dep.Pack, dep.Version, true); err != nil {
			c.logger.Error(err)
		}
	}

	return warnings
}

// applyDeselections removes every reviewed-away package from the store. The
// remaining contents are the authoritative final set.
func (c *Coordinator) applyDeselections(names []string) {
	for _, name := range names {
		if entry := c.store.Lookup(name); entry != nil {
			c.store.Remove(entry.Pack, entry.Version)
		}
	}
}
