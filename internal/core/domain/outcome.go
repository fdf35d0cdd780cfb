package domain

// ResolutionStatus is the terminal state of a dependency resolution run.
type ResolutionStatus string

const (
	// ResolutionSucceeded indicates the resolver finished and produced a
	// (possibly empty) set of newly required dependencies.
	ResolutionSucceeded ResolutionStatus = "succeeded"
	// ResolutionFailed indicates the resolver could not complete. The
	// confirmation attempt proceeds with the selections as they stood.
	ResolutionFailed ResolutionStatus = "failed"
	// ResolutionCancelled indicates the user aborted the resolver. The whole
	// confirmation attempt is abandoned.
	ResolutionCancelled ResolutionStatus = "cancelled"
)

// ResolutionOutcome is the tagged result of a single resolution run. It is
// created once per run, interpreted by the coordinator, then discarded.
// Failures travel as data, never as panics.
type ResolutionOutcome struct {
	Status ResolutionStatus

	// Dependencies holds the newly required packages on success.
	Dependencies []PackDependency

	// Warnings carries non-fatal advisory text, e.g. version mismatch hints.
	Warnings []string

	// Reason is the human-readable failure description when Status is
	// ResolutionFailed.
	Reason string
}

// Succeeded builds a successful outcome.
func Succeeded(deps []PackDependency, warnings []string) ResolutionOutcome {
	return ResolutionOutcome{
		Status:       ResolutionSucceeded,
		Dependencies: deps,
		Warnings:     warnings,
	}
}

// Failed builds a failed outcome with the given reason.
func Failed(reason string) ResolutionOutcome {
	return ResolutionOutcome{Status: ResolutionFailed, Reason: reason}
}

// Cancelled builds a cancelled outcome.
func Cancelled() ResolutionOutcome {
	return ResolutionOutcome{Status: ResolutionCancelled}
}

// IsCancelled reports whether the run was aborted by the user.
func (o ResolutionOutcome) IsCancelled() bool {
	return o.Status == ResolutionCancelled
}

// IsFailed reports whether the run failed.
func (o ResolutionOutcome) IsFailed() bool {
	return o.Status == ResolutionFailed
}
