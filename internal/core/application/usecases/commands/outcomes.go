package commands

import (
	"orderboard/internal/core/domain/model/kernel"
)

// OutcomeKind classifies how one order fared inside a status change
// submission.
type OutcomeKind int

const (
	// OutcomeApplied means the store accepted the change.
	OutcomeApplied OutcomeKind = iota + 1

	// OutcomeSkipped means the transition was not legal from the order's
	// current status, so no request was sent for it.
	OutcomeSkipped

	// OutcomeFailed means the store rejected the change or the round trip
	// failed; the optimistic change has been rolled back.
	OutcomeFailed
)

// String returns the outcome kind name for logs and wire responses.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeApplied:
		return "applied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the per-order result of a status change submission.
type Outcome struct {
	OrderID kernel.UUID
	Kind    OutcomeKind

	// Reason explains a skip in workflow terms (e.g. the illegal edge).
	Reason string

	// Err carries the failure cause for OutcomeFailed.
	Err error
}

// BulkResult aggregates the per-order outcomes of one bulk submission.
// The three counters always sum to len(Outcomes).
type BulkResult struct {
	Outcomes []Outcome
	Applied  int
	Skipped  int
	Failed   int
}

func (r *BulkResult) add(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch outcome.Kind {
	case OutcomeApplied:
		r.Applied++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}
