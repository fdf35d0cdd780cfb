package domain

import "go.trai.ch/zerr"

var (
	// ErrAttemptInFlight is returned when a confirmation attempt is started
	// while another one is still active.
	ErrAttemptInFlight = zerr.New("confirmation attempt already in flight")

	// ErrUnknownProvider is returned when a provider id is not present in the
	// provider directory.
	ErrUnknownProvider = zerr.New("unknown provider")

	// ErrInvalidPage is returned when a registered provider page does not
	// satisfy the resource page capabilities. Callers log it and continue.
	ErrInvalidPage = zerr.New("page is not a resource page")

	// ErrNoSelections is returned when a confirmation attempt is started with
	// an empty selection store.
	ErrNoSelections = zerr.New("no selections to confirm")

	// ErrUnknownResourceType is returned when a raw string does not name a
	// known resource type.
	ErrUnknownResourceType = zerr.New("unknown resource type")
)
