package commands

import (
	"context"

	"orderboard/internal/core/application/session"
	"orderboard/internal/core/ports"
)

// RefreshBoardCommandHandler fetches the authoritative order set for its
// configured filter and merges it into the board session.
//
// A failed fetch leaves the view untouched: the board keeps showing the
// last successfully merged state and the next tick tries again.
//
// Example:
//
//	handler := NewRefreshBoardCommandHandler(store, kitchenSession, ports.Filter{
//	    Statuses: []order.Status{order.Accepted, order.InProgress, order.Ready},
//	})
//	cmd := NewRefreshBoardCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("refresh failed, keeping stale view: %v", err)
//	}
type RefreshBoardCommandHandler struct {
	store   ports.OrderStore
	session *session.BoardSession
	filter  ports.Filter
}

// NewRefreshBoardCommandHandler creates a handler bound to one board
// session and one fetch filter.
func NewRefreshBoardCommandHandler(
	store ports.OrderStore,
	boardSession *session.BoardSession,
	filter ports.Filter,
) RefreshBoardCommandHandler {
	return RefreshBoardCommandHandler{
		store:   store,
		session: boardSession,
		filter:  filter,
	}
}

// Handle runs one fetch-and-reconcile cycle. Merges are serialized by the
// session, so overlapping refreshes cannot interleave.
func (h RefreshBoardCommandHandler) Handle(ctx context.Context, command RefreshBoardCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	fetched, err := h.store.FetchOrders(ctx, h.filter)
	if err != nil {
		return err
	}

	h.session.Merge(ctx, fetched)
	return nil
}
