package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderboard/internal/core/application/session"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) FetchOrders(ctx context.Context, filter ports.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) SubmitStatusChange(
	ctx context.Context,
	id kernel.UUID,
	target order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, id, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type nopNotifier struct{}

func (nopNotifier) Notify(_ context.Context, _ ports.Event) {}

func makeOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewLineItem("Ramen", 1, nil, "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, status, time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
		order.TypeDineIn, order.PaymentPaid, []order.LineItem{item}, "")
	require.NoError(t, err)
	return o
}

// newSessionWithOrders spins up a board session preloaded with the given
// orders via an initial merge.
func newSessionWithOrders(t *testing.T, orders ...*order.Order) *session.BoardSession {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := session.NewBoardSession(nopNotifier{}, logger)
	t.Cleanup(s.Close)
	s.Merge(context.Background(), orders)
	return s
}

func statusInSession(s *session.BoardSession, id kernel.UUID) order.Status {
	for _, o := range s.Snapshot().Orders {
		if o.ID().IsEqual(id) {
			return o.Status()
		}
	}
	return order.Unknown
}
