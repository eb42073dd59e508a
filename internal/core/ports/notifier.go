package ports

import (
	"context"

	"orderboard/internal/core/domain/model/kernel"
)

// EventKind discriminates notification events emitted by poll reconciliation.
type EventKind string

const (
	// EventNewOrder fires when an order id appears that was absent on the
	// previous tick.
	EventNewOrder EventKind = "newOrder"

	// EventOrderReady fires when an order's status moved into READY
	// between two consecutive ticks.
	EventOrderReady EventKind = "orderReady"
)

// Event is one discrete notification occurrence.
type Event struct {
	Kind    EventKind
	OrderID kernel.UUID
}

// Notifier is the external sound/toast collaborator. Implementations
// render the event (audio playback, toast, log line); the core only
// decides when an event fires.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}
