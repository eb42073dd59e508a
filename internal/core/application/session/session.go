package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/services"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// BoardSession holds the live board state for one mounted view: the order
// collection, the pending-mutation table, and the selection set.
//
// Every operation runs on one internal goroutine fed by an operation queue,
// so poll merges and user mutations never interleave. Callers block until
// their operation has executed; no method may be called after Close.
type BoardSession struct {
	ops       chan func()
	closeOnce sync.Once

	notifier ports.Notifier
	logger   *slog.Logger

	reconciler services.Reconciler

	// State below is owned by the run goroutine and must only be touched
	// from inside a queued operation.
	orders     map[kernel.UUID]*order.Order
	pending    map[kernel.UUID]*PendingMutation
	baseline   map[kernel.UUID]order.Status
	firstTick  bool
	selection  map[kernel.UUID]bool
	bulkMode   bool
	nextTicket Ticket
}

// NewBoardSession creates a session and starts its operation queue.
// The session is empty until the first merge delivers orders.
func NewBoardSession(notifier ports.Notifier, logger *slog.Logger) *BoardSession {
	s := &BoardSession{
		ops:        make(chan func()),
		notifier:   notifier,
		logger:     logger,
		reconciler: services.NewReconciler(),
		orders:     make(map[kernel.UUID]*order.Order),
		pending:    make(map[kernel.UUID]*PendingMutation),
		selection:  make(map[kernel.UUID]bool),
		firstTick:  true,
	}

	go s.run()
	return s
}

// Close stops the operation queue. Pending operations already queued still
// execute; issuing new operations after Close panics.
func (s *BoardSession) Close() {
	s.closeOnce.Do(func() {
		close(s.ops)
	})
}

func (s *BoardSession) run() {
	for op := range s.ops {
		op()
	}
}

// do runs fn on the session goroutine and waits for it to finish.
func (s *BoardSession) do(fn func()) {
	done := make(chan struct{})
	s.ops <- func() {
		defer close(done)
		fn()
	}
	<-done
}

// Snapshot returns the current view as clones partitioned by status.
func (s *BoardSession) Snapshot() Snapshot {
	var snapshot Snapshot
	s.do(func() {
		snapshot = buildSnapshot(s.orders)
	})
	return snapshot
}

// PendingMutations returns a copy of the unresolved mutation table.
func (s *BoardSession) PendingMutations() []PendingMutation {
	var mutations []PendingMutation
	s.do(func() {
		for _, p := range s.pending {
			mutations = append(mutations, *p)
		}
	})
	return mutations
}

// ApplyOptimistic applies a status change to the local copy immediately and
// records a pending mutation, before any store round trip.
//
// Returns the ticket identifying this submission and the status the order
// held before the change (the rollback target). Fails with an
// ObjectNotFoundError for an unknown order id and with an
// IllegalTransitionError when the edge is not legal from the order's
// current local status; in both cases nothing is recorded.
//
// Resubmitting while an earlier mutation on the same order is unresolved
// replaces it: the earlier ticket becomes stale and its resolution will be
// ignored. The rollback target carries over from the earliest unresolved
// mutation, so a later failure reverts to the true pre-mutation status.
func (s *BoardSession) ApplyOptimistic(id kernel.UUID, target order.Status) (Ticket, order.Status, error) {
	var (
		ticket Ticket
		from   order.Status
		err    error
	)
	s.do(func() {
		o, ok := s.orders[id]
		if !ok {
			err = errs.NewObjectNotFoundError("orderID", id.String())
			return
		}

		from = o.Status()
		if err = o.ChangeStatus(target); err != nil {
			return
		}

		if earlier, resubmitted := s.pending[id]; resubmitted {
			from = earlier.From
		}

		s.nextTicket++
		ticket = s.nextTicket
		s.pending[id] = &PendingMutation{
			OrderID:     id,
			From:        from,
			To:          target,
			SubmittedAt: time.Now(),
			State:       services.MutationInFlight,
			Ticket:      ticket,
		}
	})
	return ticket, from, err
}

// ResolveConfirmed marks a pending mutation as confirmed by the store and
// adopts the status the store echoed back. Stale tickets are ignored: the
// mutation they belonged to has been replaced or retired since.
func (s *BoardSession) ResolveConfirmed(id kernel.UUID, ticket Ticket, echoed order.Status) {
	s.do(func() {
		p, ok := s.pending[id]
		if !ok || p.Ticket != ticket {
			return
		}

		p.State = services.MutationConfirmed
		if o, held := s.orders[id]; held {
			if err := o.SyncStatus(echoed); err != nil {
				s.logger.Warn("ignoring invalid echoed status",
					slog.String("orderID", id.String()), slog.Any("error", err))
			}
		}
	})
}

// ResolveFailed rolls a failed mutation back to its pre-mutation status and
// discards the pending record. Stale tickets are ignored.
func (s *BoardSession) ResolveFailed(id kernel.UUID, ticket Ticket) {
	s.do(func() {
		p, ok := s.pending[id]
		if !ok || p.Ticket != ticket {
			return
		}

		delete(s.pending, id)
		if o, held := s.orders[id]; held {
			if err := o.SyncStatus(p.From); err != nil {
				s.logger.Warn("rollback failed",
					slog.String("orderID", id.String()), slog.Any("error", err))
				return
			}
			s.logger.Info("rolled back failed status change",
				slog.String("orderID", id.String()),
				slog.String("from", p.To.String()),
				slog.String("to", p.From.String()))
		}
	})
}

// Merge reconciles one authoritative fetch into the session. Merges are
// serialized with every other operation: a new poll tick cannot begin
// merging before the previous one finished.
//
// Orders absent from the fetch leave the view and the selection set.
// Notification events detected by the merge are delivered to the session's
// notifier before Merge returns.
func (s *BoardSession) Merge(ctx context.Context, fetched []*order.Order) {
	s.do(func() {
		local := make([]*order.Order, 0, len(s.orders))
		for _, o := range s.orders {
			local = append(local, o)
		}

		hints := make(map[kernel.UUID]services.PendingHint, len(s.pending))
		for id, p := range s.pending {
			hints[id] = services.PendingHint{Target: p.To, State: p.State}
		}

		result := s.reconciler.Merge(services.MergeInput{
			Local:     local,
			Fetched:   fetched,
			Pending:   hints,
			Baseline:  s.baseline,
			FirstTick: s.firstTick,
		})

		s.orders = make(map[kernel.UUID]*order.Order, len(result.Orders))
		for _, o := range result.Orders {
			s.orders[o.ID()] = o
		}

		for _, id := range result.RemovedIDs {
			delete(s.pending, id)
			delete(s.selection, id)
		}
		for _, id := range result.SupersededIDs {
			delete(s.pending, id)
		}
		for _, id := range result.DiscardedIDs {
			delete(s.pending, id)
		}

		s.baseline = result.Baseline
		s.firstTick = false

		for _, event := range result.Events {
			s.notifier.Notify(ctx, event)
		}
	})
}

// ToggleSelection flips an order's membership in the selection set.
// Fails with an ObjectNotFoundError for an id not present in the view.
func (s *BoardSession) ToggleSelection(id kernel.UUID) error {
	var err error
	s.do(func() {
		if _, ok := s.orders[id]; !ok {
			err = errs.NewObjectNotFoundError("orderID", id.String())
			return
		}
		if s.selection[id] {
			delete(s.selection, id)
			return
		}
		s.selection[id] = true
	})
	return err
}

// AddSelection adds the given ids to the selection set. Ids not present in
// the view are skipped; adding an already selected id is a no-op.
func (s *BoardSession) AddSelection(ids []kernel.UUID) {
	s.do(func() {
		for _, id := range ids {
			if _, ok := s.orders[id]; ok {
				s.selection[id] = true
			}
		}
	})
}

// RemoveSelection removes the given ids from the selection set. Removing an
// id that is not selected is a no-op.
func (s *BoardSession) RemoveSelection(ids []kernel.UUID) {
	s.do(func() {
		for _, id := range ids {
			delete(s.selection, id)
		}
	})
}

// ClearSelection empties the selection set.
func (s *BoardSession) ClearSelection() {
	s.do(func() {
		s.selection = make(map[kernel.UUID]bool)
	})
}

// SelectionMembers returns the ids currently in the selection set.
func (s *BoardSession) SelectionMembers() []kernel.UUID {
	var members []kernel.UUID
	s.do(func() {
		members = make([]kernel.UUID, 0, len(s.selection))
		for id := range s.selection {
			members = append(members, id)
		}
	})
	return members
}

// SetBulkMode switches bulk-selection mode. Entering starts with an empty
// selection; leaving clears whatever is selected.
func (s *BoardSession) SetBulkMode(enabled bool) {
	s.do(func() {
		if s.bulkMode == enabled {
			return
		}
		s.bulkMode = enabled
		s.selection = make(map[kernel.UUID]bool)
	})
}

// InBulkMode reports whether bulk-selection mode is active.
func (s *BoardSession) InBulkMode() bool {
	var enabled bool
	s.do(func() {
		enabled = s.bulkMode
	})
	return enabled
}
