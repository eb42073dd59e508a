package services

import (
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// MutationState classifies an unresolved user mutation for merge purposes.
type MutationState int

const (
	// MutationInFlight means the store round trip has not resolved yet.
	MutationInFlight MutationState = iota + 1

	// MutationConfirmed means the store echoed the new status back.
	MutationConfirmed
)

// PendingHint is the slice of a pending mutation the merge needs:
// what the optimistic layer guessed and whether it has been confirmed.
type PendingHint struct {
	Target order.Status
	State  MutationState
}

// MergeInput carries one tick's worth of state into the merge.
type MergeInput struct {
	// Local is the order collection as currently held in the view snapshot.
	Local []*order.Order

	// Fetched is the authoritative order set returned by the store for the
	// view's filter. Membership is authoritative: local orders absent from
	// Fetched are removed.
	Fetched []*order.Order

	// Pending maps order id to the unresolved mutation for that order, if any.
	Pending map[kernel.UUID]PendingHint

	// Baseline is the id -> status map captured at the end of the previous
	// tick's merge. Nil on the very first tick.
	Baseline map[kernel.UUID]order.Status

	// FirstTick suppresses notification detection: there is no baseline to
	// diff against, and firing for every preexisting order on page load
	// would be a notification storm.
	FirstTick bool
}

// MergeResult is the outcome of one merge.
type MergeResult struct {
	// Orders is the merged collection that becomes the new view snapshot.
	Orders []*order.Order

	// RemovedIDs lists local orders dropped because the fetch no longer
	// contains them (e.g. they moved outside the filtered status range).
	RemovedIDs []kernel.UUID

	// SupersededIDs lists in-flight mutations beaten by an authoritative
	// status strictly further along the workflow; their eventual resolution
	// must be ignored.
	SupersededIDs []kernel.UUID

	// DiscardedIDs lists confirmed mutations retired by this merge (the
	// poll-fetched status is authoritative from here on).
	DiscardedIDs []kernel.UUID

	// Events are the notification side effects detected by this merge,
	// computed only after every order mutation above has been applied.
	Events []ports.Event

	// Baseline is the id -> status map to diff against on the next tick.
	Baseline map[kernel.UUID]order.Status
}

// Reconciler merges an authoritative fetch into the locally held view
// without discarding unresolved optimistic mutations.
//
// Precedence per fetched order:
//   - no pending mutation: the fetch overwrites the local copy unconditionally
//   - in-flight mutation: the optimistic value wins unless the fetched
//     status is strictly further along the workflow (another actor advanced
//     the order first), in which case the fetch wins and the mutation is
//     superseded
//   - confirmed mutation: the fetch wins and the mutation is discarded
//
// Reconciler is a pure domain service: it performs no I/O and does not
// mutate its inputs.
type Reconciler struct{}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Merge applies one authoritative fetch to the local view and detects
// notification events against the previous tick's baseline.
func (r Reconciler) Merge(input MergeInput) MergeResult {
	localByID := make(map[kernel.UUID]*order.Order, len(input.Local))
	for _, o := range input.Local {
		localByID[o.ID()] = o
	}

	result := MergeResult{
		Orders:   make([]*order.Order, 0, len(input.Fetched)),
		Baseline: make(map[kernel.UUID]order.Status, len(input.Fetched)),
	}

	fetchedIDs := make(map[kernel.UUID]bool, len(input.Fetched))
	for _, fetched := range input.Fetched {
		fetchedIDs[fetched.ID()] = true
		result.Orders = append(result.Orders, r.mergeOne(fetched, localByID[fetched.ID()], input.Pending, &result))
	}

	for _, local := range input.Local {
		if !fetchedIDs[local.ID()] {
			result.RemovedIDs = append(result.RemovedIDs, local.ID())
		}
	}

	for _, merged := range result.Orders {
		result.Baseline[merged.ID()] = merged.Status()
	}

	if !input.FirstTick {
		result.Events = r.detectEvents(result.Orders, input.Baseline)
	}

	return result
}

// mergeOne resolves the winner between one fetched order and its local
// counterpart under the pending-mutation precedence rules.
func (r Reconciler) mergeOne(
	fetched *order.Order,
	local *order.Order,
	pending map[kernel.UUID]PendingHint,
	result *MergeResult,
) *order.Order {
	hint, hasPending := pending[fetched.ID()]
	if !hasPending || local == nil {
		return fetched
	}

	switch hint.State {
	case MutationInFlight:
		if fetched.Status().IsFurtherAlongThan(hint.Target) {
			result.SupersededIDs = append(result.SupersededIDs, fetched.ID())
			return fetched
		}
		// The fetch is stale relative to the optimistic guess; hold the
		// local copy until the mutation resolves.
		return local
	case MutationConfirmed:
		result.DiscardedIDs = append(result.DiscardedIDs, fetched.ID())
		return fetched
	default:
		return fetched
	}
}

// detectEvents diffs the merged collection against the previous tick's
// baseline. Self-caused transitions are not excluded: an actor whose own
// mutation moved an order into READY still receives the event.
func (r Reconciler) detectEvents(merged []*order.Order, baseline map[kernel.UUID]order.Status) []ports.Event {
	var events []ports.Event
	for _, o := range merged {
		previous, existed := baseline[o.ID()]
		if !existed {
			events = append(events, ports.Event{Kind: ports.EventNewOrder, OrderID: o.ID()})
			continue
		}
		if o.Status() == order.Ready && previous != order.Ready {
			events = append(events, ports.Event{Kind: ports.EventOrderReady, OrderID: o.ID()})
		}
	}
	return events
}
