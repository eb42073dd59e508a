package ports

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
)

// Filter restricts which orders a fetch returns. Zero values mean "no
// restriction" for the respective field.
type Filter struct {
	// Statuses limits the fetch to orders in any of these statuses.
	Statuses []order.Status

	// OrderType limits the fetch to one fulfillment type.
	OrderType order.Type

	// PaymentStatus limits the fetch to one settlement state.
	PaymentStatus order.PaymentStatus

	// DateFrom / DateTo bound the placement timestamp (inclusive).
	DateFrom *time.Time
	DateTo   *time.Time

	// Limit caps the number of returned orders (0 = no cap).
	Limit int
}

// OrderStore is the authoritative external system owning all order state.
// The board never persists anything itself: every read is a filtered fetch
// and every write is a single-order status change. The store applies its
// own transition rules server-side; the client-side contract is to never
// knowingly submit an illegal transition.
type OrderStore interface {
	// FetchOrders retrieves the authoritative order set matching the filter.
	FetchOrders(ctx context.Context, filter Filter) ([]*order.Order, error)

	// SubmitStatusChange asks the store to move one order to the target
	// status. On success it returns the order as the store now sees it,
	// with the new status echoed back.
	SubmitStatusChange(ctx context.Context, id kernel.UUID, target order.Status) (*order.Order, error)
}
