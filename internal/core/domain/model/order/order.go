package order

import (
	"errors"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a live restaurant order flowing through the fulfillment
// pipeline. It is the aggregate root synchronized between the external
// order store and the locally held board view.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, stable across polls
//   - status is always one of the defined Status values
//   - placedAt never changes after construction
//   - items are immutable once the order is placed; only status changes
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// placedAt is the moment the order was placed (immutable)
	placedAt time.Time

	// orderType classifies fulfillment (dine-in, takeaway, delivery)
	orderType Type

	// paymentStatus is the settlement state reported by the store
	paymentStatus PaymentStatus

	// items is the ordered sequence of line items
	items []LineItem

	// notes is optional free text attached to the whole order
	notes string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - placedAt: Placement timestamp (must not be zero)
//   - orderType: Fulfillment classification
//   - paymentStatus: Settlement state
//   - items: Ordered line items (must not be empty; each must be constructed)
//   - notes: Optional free text
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	placedAt time.Time,
	orderType Type,
	paymentStatus PaymentStatus,
	items []LineItem,
	notes string,
) (*Order, error) {
	return RestoreOrder(id, Pending, placedAt, orderType, paymentStatus, items, notes)
}

// RestoreOrder reconstructs an Order with an explicit status.
// Used when rehydrating orders fetched from the external store or read
// from persistence; applies the same validation as NewOrder plus a status
// validity check.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	placedAt time.Time,
	orderType Type,
	paymentStatus PaymentStatus,
	items []LineItem,
	notes string,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setPlacedAt(placedAt),
		o.setOrderType(orderType),
		o.setPaymentStatus(paymentStatus),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// OrderType returns the fulfillment classification.
func (o *Order) OrderType() Type {
	return o.orderType
}

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Items returns a copy of the order's line items.
// The aggregate's own items cannot be mutated through the returned slice.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Notes returns the optional free text attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// ChangeStatus transitions the order along a legal workflow edge.
//
// Returns:
//   - nil on a legal transition
//   - an error wrapping ErrIllegalTransition when the edge is not allowed,
//     or a validation error for unrecognized statuses
//
// This is the only mutation a user action may apply to an order.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SyncStatus adopts an authoritative status without transition checks.
// Reconciliation uses it to apply poll-fetched state, and the optimistic
// layer uses it to roll a failed mutation back to the pre-mutation status.
// The target must still be a member of the closed status set.
func (o *Order) SyncStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	o.status = target
	return nil
}

// Clone returns an independent copy of the order.
// The view snapshot hands clones to readers so concurrent mutation of the
// session's own copy can never leak into rendered state.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = make([]LineItem, len(o.items))
	copy(clone.items, o.items)
	return &clone
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStatus validates and sets the order's status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setPlacedAt validates and sets the placement timestamp.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}

// setOrderType validates and sets the fulfillment classification.
// This is a private method used only during construction.
func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

// setPaymentStatus validates and sets the settlement state.
// This is a private method used only during construction.
func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

// setItems validates and copies the line items.
// This is a private method used only during construction.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	copied := make([]LineItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		copied[i] = item
	}

	o.items = copied
	return nil
}
