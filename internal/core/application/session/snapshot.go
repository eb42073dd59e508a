package session

import (
	"sort"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/services"
)

// Ticket identifies one optimistic submission. Resolutions carry the
// ticket back; a resolution whose ticket no longer matches the pending
// mutation for that order is stale and is ignored (last-submit-wins).
type Ticket uint64

// PendingMutation is the ephemeral record of a user action that has been
// applied optimistically but not yet retired.
type PendingMutation struct {
	OrderID     kernel.UUID
	From        order.Status
	To          order.Status
	SubmittedAt time.Time
	State       services.MutationState
	Ticket      Ticket
}

// Snapshot is the materialized view of the order collection, partitioned
// by status for rendering. All orders in a snapshot are clones: mutating
// them cannot affect the session.
type Snapshot struct {
	// Orders holds every order in the view, sorted by placement time.
	Orders []*order.Order

	// Columns partitions Orders by current status. Statuses with no
	// orders are absent from the map.
	Columns map[order.Status][]*order.Order
}

// buildSnapshot materializes the session's order map into a stable,
// render-ready snapshot.
func buildSnapshot(orders map[kernel.UUID]*order.Order) Snapshot {
	snapshot := Snapshot{
		Orders:  make([]*order.Order, 0, len(orders)),
		Columns: make(map[order.Status][]*order.Order),
	}

	for _, o := range orders {
		snapshot.Orders = append(snapshot.Orders, o.Clone())
	}

	sort.Slice(snapshot.Orders, func(i, j int) bool {
		if !snapshot.Orders[i].PlacedAt().Equal(snapshot.Orders[j].PlacedAt()) {
			return snapshot.Orders[i].PlacedAt().Before(snapshot.Orders[j].PlacedAt())
		}
		return snapshot.Orders[i].ID().String() < snapshot.Orders[j].ID().String()
	})

	for _, o := range snapshot.Orders {
		snapshot.Columns[o.Status()] = append(snapshot.Columns[o.Status()], o)
	}

	return snapshot
}
