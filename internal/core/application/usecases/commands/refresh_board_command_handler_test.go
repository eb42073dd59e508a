package commands_test

import (
	"testing"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshBoardCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	s := newSessionWithOrders(t)

	filter := ports.Filter{Statuses: []order.Status{order.Pending, order.Accepted}}
	store := new(MockOrderStore)
	store.On("FetchOrders", mock.Anything, filter).
		Return([]*order.Order{makeOrder(t, id, order.Pending)}, nil).Once()

	h := commands.NewRefreshBoardCommandHandler(store, s, filter)
	err := h.Handle(ctx, commands.NewRefreshBoardCommand())
	require.NoError(t, err)

	assert.Equal(t, order.Pending, statusInSession(s, id))
	store.AssertExpectations(t)
}

func TestRefreshBoardCommandHandler_Handle_FetchErrorKeepsView(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	s := newSessionWithOrders(t, makeOrder(t, id, order.Accepted))

	store := new(MockOrderStore)
	store.On("FetchOrders", mock.Anything, mock.Anything).
		Return(nil, errs.NewNetworkError("fetch orders")).Once()

	h := commands.NewRefreshBoardCommandHandler(store, s, ports.Filter{})
	err := h.Handle(ctx, commands.NewRefreshBoardCommand())
	require.Error(t, err)

	// The stale view stays up until a fetch succeeds.
	assert.Equal(t, order.Accepted, statusInSession(s, id))
	store.AssertExpectations(t)
}

func TestRefreshBoardCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	s := newSessionWithOrders(t)

	h := commands.NewRefreshBoardCommandHandler(new(MockOrderStore), s, ports.Filter{})
	cmd := commands.RefreshBoardCommand{} // not constructed properly

	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
