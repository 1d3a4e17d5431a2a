package domain

import "errors"

// Sentinel errors shared by services, adapters and delivery.
var (
	ErrNotFound     = errors.New("not found")
	ErrTransport    = errors.New("transport error")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// ErrNotInRoster is returned when a cancellation targets an inscription that is not part of the
	// roster currently held by the view.
	ErrNotInRoster = errors.New("inscription not in roster")

	// ErrStaleLoad is returned by a load whose response arrived after a newer load started.
	ErrStaleLoad = errors.New("stale load discarded")

	ErrViewNotFound = errors.New("view not found")
)

// FailureKind classifies a user-visible failure of the detail view.
type FailureKind string

const (
	FailureLookup      FailureKind = "lookup_failure"
	FailureRosterFetch FailureKind = "roster_fetch_failure"
	FailureCancel      FailureKind = "cancel_failure"
)

// ViewFailure is a failure the view surfaces to the user.
// swagger:model ViewFailure
type ViewFailure struct {
	Kind      FailureKind `json:"kind"`
	Message   string      `json:"message"`
	Retryable bool        `json:"retryable"`
}
