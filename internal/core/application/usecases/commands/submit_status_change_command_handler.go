package commands

import (
	"context"
	"errors"
	"time"

	"orderboard/internal/core/application/session"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// DefaultMutationTimeout bounds the store round trip for one status change.
// A submission still unresolved past the timeout counts as failed and is
// rolled back; a late store-side success is corrected by the next poll.
const DefaultMutationTimeout = 5 * time.Second

// SubmitStatusChangeCommandHandler executes a single status change:
// optimistic apply, store round trip, resolution.
//
// Example:
//
//	handler := NewSubmitStatusChangeCommandHandler(store, boardSession, 5*time.Second)
//	outcome, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    log.Printf("submission rejected: %v", err)
//	case outcome.Kind == OutcomeSkipped:
//	    log.Printf("illegal from current status: %s", outcome.Reason)
//	case outcome.Kind == OutcomeFailed:
//	    log.Printf("store rejected, rolled back: %v", outcome.Err)
//	}
type SubmitStatusChangeCommandHandler struct {
	store   ports.OrderStore
	session *session.BoardSession
	timeout time.Duration
}

// NewSubmitStatusChangeCommandHandler creates a handler bound to one board
// session. A non-positive timeout falls back to DefaultMutationTimeout.
func NewSubmitStatusChangeCommandHandler(
	store ports.OrderStore,
	boardSession *session.BoardSession,
	timeout time.Duration,
) SubmitStatusChangeCommandHandler {
	if timeout <= 0 {
		timeout = DefaultMutationTimeout
	}

	return SubmitStatusChangeCommandHandler{
		store:   store,
		session: boardSession,
		timeout: timeout,
	}
}

// Handle processes one status change submission.
//
// The change is applied to the board view before the store round trip. An
// edge that is illegal from the order's current local status yields an
// OutcomeSkipped without any network traffic; a store rejection or round
// trip failure yields an OutcomeFailed after the view has been rolled back.
// An unknown order id is an error, not an outcome.
func (h SubmitStatusChangeCommandHandler) Handle(
	ctx context.Context,
	command SubmitStatusChangeCommand,
) (Outcome, error) {
	if err := command.Validate(); err != nil {
		return Outcome{}, err
	}

	return h.submit(ctx, command.OrderID(), command.Target())
}

// submit runs the apply/round-trip/resolve sequence for one order. Bulk
// submissions reuse it per member.
func (h SubmitStatusChangeCommandHandler) submit(
	ctx context.Context,
	orderID kernel.UUID,
	target order.Status,
) (Outcome, error) {
	ticket, _, err := h.session.ApplyOptimistic(orderID, target)
	if err != nil {
		if errors.Is(err, order.ErrIllegalTransition) {
			return Outcome{OrderID: orderID, Kind: OutcomeSkipped, Reason: err.Error()}, nil
		}
		return Outcome{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	echoed, err := h.store.SubmitStatusChange(ctx, orderID, target)
	if err != nil {
		h.session.ResolveFailed(orderID, ticket)
		return Outcome{OrderID: orderID, Kind: OutcomeFailed, Err: err}, nil
	}

	h.session.ResolveConfirmed(orderID, ticket, echoed.Status())
	return Outcome{OrderID: orderID, Kind: OutcomeApplied}, nil
}
