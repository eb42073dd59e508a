package order

import (
	"errors"
	"fmt"

	"orderboard/internal/pkg/errs"
)

// ErrIllegalTransition is the sentinel for rejected status transitions.
// Use errors.Is to classify an error as an illegal transition regardless
// of the concrete edge that was attempted.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of an order.
// It implements a forward-only state machine: every legal edge moves an
// order toward completion, except for the cancellation edges permitted
// from non-terminal states.
//
// State transitions:
//
//	Pending ──> Accepted ──> InProgress ──> Ready ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no outgoing edges.
//
// Status is a value object that validates state transitions and provides
// the wire representation used by the external store and the board API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order has been placed
	// and is waiting for the restaurant to accept it.
	Pending

	// Accepted indicates the restaurant has accepted the order.
	Accepted

	// InProgress indicates the kitchen is preparing the order.
	InProgress

	// Ready indicates the order is prepared and awaiting handover.
	// Cancellation is no longer possible from this point.
	Ready

	// Completed indicates the order has been handed over.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusNames returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusNames() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Accepted:   "ACCEPTED",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusNames returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusNames() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Accepted:   "ACCEPTED",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// getTransitions returns the complete edge set of the status workflow.
// Terminal statuses map to an empty set.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Accepted, Cancelled},
		Accepted:   {InProgress, Cancelled},
		InProgress: {Ready, Cancelled},
		Ready:      {Completed},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromName converts a wire name (e.g. "IN_PROGRESS") to a Status.
//
// Returns:
//   - the matching Status on success
//   - an error for names outside the closed status set
func StatusFromName(name string) (Status, error) {
	for status, statusName := range getValidStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", name))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, InProgress, Ready, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., the order store, API requests) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns:
//   - "PENDING", "ACCEPTED", "IN_PROGRESS", "READY", "COMPLETED" or
//     "CANCELLED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Completed and Cancelled are the only terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the edge from s to target is in the
// allowed transition set. It is a pure, total function over the status
// set: invalid statuses on either side yield false.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo computes the transition from s to target.
//
// Returns:
//   - (target, nil) when the edge is legal
//   - (0, error) when either status is invalid or the edge is not allowed
//
// The returned error wraps ErrIllegalTransition for rejected edges, so
// callers can classify the failure without inspecting the message.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, NewIllegalTransitionError(s, target)
	}

	return target, nil
}

// NextStatuses returns the set of statuses reachable from s in one legal
// transition. The rendering layer consults this to present only valid
// drop targets. Terminal and invalid statuses return an empty slice.
func (s Status) NextStatuses() []Status {
	edges := getTransitions()[s]
	next := make([]Status, len(edges))
	copy(next, edges)
	return next
}

// forwardRank positions a status along the workflow for reconciliation
// precedence. Terminal statuses share the highest rank: once the store
// reports one, no optimistic guess may override it.
func (s Status) forwardRank() int {
	switch s {
	case Pending:
		return 1
	case Accepted:
		return 2
	case InProgress:
		return 3
	case Ready:
		return 4
	case Completed, Cancelled:
		return 5
	default:
		return 0
	}
}

// IsFurtherAlongThan reports whether s is strictly further along the
// workflow than other. Used by poll reconciliation: an authoritative
// status that is further along than an unresolved optimistic target wins
// immediately (another actor advanced the order first).
func (s Status) IsFurtherAlongThan(other Status) bool {
	return s.forwardRank() > other.forwardRank()
}

// IllegalTransitionError indicates an attempted status transition that is
// not in the allowed edge set. It is surfaced to the caller as a rejected
// action and is never retried.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the edge from -> to.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
