package order_test

import (
	"testing"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.LineItem {
	t.Helper()

	burger, err := order.NewLineItem("Burger", 2, []string{"extra cheese"}, "no onions")
	require.NoError(t, err)
	fries, err := order.NewLineItem("Fries", 1, nil, "")
	require.NoError(t, err)

	return []order.LineItem{burger, fries}
}

func TestNewLineItem(t *testing.T) {
	t.Run("should create a valid line item", func(t *testing.T) {
		item, err := order.NewLineItem("Burger", 2, []string{"bacon"}, "well done")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Burger", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, []string{"bacon"}, item.AddOns())
		assert.Equal(t, "well done", item.Notes())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewLineItem("", 1, nil, "")
		require.Error(t, err)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.NewLineItem("Burger", 0, nil, "")
		require.Error(t, err)

		_, err = order.NewLineItem("Burger", -1, nil, "")
		require.Error(t, err)
	})

	t.Run("should reject zero-value line item", func(t *testing.T) {
		var item order.LineItem
		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})

	t.Run("should copy add-ons defensively", func(t *testing.T) {
		addOns := []string{"bacon"}
		item, err := order.NewLineItem("Burger", 1, addOns, "")
		require.NoError(t, err)

		addOns[0] = "mutated"
		assert.Equal(t, []string{"bacon"}, item.AddOns())

		returned := item.AddOns()
		returned[0] = "mutated again"
		assert.Equal(t, []string{"bacon"}, item.AddOns())
	})
}

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("should create order in PENDING status", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, placedAt, order.TypeDineIn, order.PaymentUnpaid, testItems(t), "table 4")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, id, o.ID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Equal(t, order.TypeDineIn, o.OrderType())
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "table 4", o.Notes())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, placedAt, order.TypeDineIn, order.PaymentUnpaid, testItems(t), "")
		require.Error(t, err)
	})

	t.Run("should reject zero placedAt", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), time.Time{}, order.TypeDineIn, order.PaymentUnpaid, testItems(t), "")
		require.Error(t, err)
	})

	t.Run("should reject invalid order type", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), placedAt, order.TypeUnknown, order.PaymentUnpaid, testItems(t), "")
		require.Error(t, err)
	})

	t.Run("should reject invalid payment status", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), placedAt, order.TypeDineIn, order.PaymentUnknown, testItems(t), "")
		require.Error(t, err)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), placedAt, order.TypeDineIn, order.PaymentUnpaid, nil, "")
		require.Error(t, err)
	})

	t.Run("should reject unconstructed items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), placedAt, order.TypeDineIn, order.PaymentUnpaid,
			[]order.LineItem{{}}, "")
		require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})

	t.Run("should reject zero-value order", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	placedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("should restore order with explicit status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.Ready, placedAt,
			order.TypeDelivery, order.PaymentPaid, testItems(t), "")

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.Unknown, placedAt,
			order.TypeDelivery, order.PaymentPaid, testItems(t), "")
		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	placedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	newOrder := func(t *testing.T, status order.Status) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(kernel.NewUUID(), status, placedAt,
			order.TypeTakeaway, order.PaymentPaid, testItems(t), "")
		require.NoError(t, err)
		return o
	}

	t.Run("should advance through the full workflow", func(t *testing.T) {
		o := newOrder(t, order.Pending)

		for _, next := range []order.Status{order.Accepted, order.InProgress, order.Ready, order.Completed} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("should cancel from IN_PROGRESS", func(t *testing.T) {
		o := newOrder(t, order.InProgress)

		require.NoError(t, o.ChangeStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject illegal edge and keep current status", func(t *testing.T) {
		o := newOrder(t, order.Pending)

		err := o.ChangeStatus(order.Ready)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject any change from terminal statuses", func(t *testing.T) {
		completed := newOrder(t, order.Completed)
		require.ErrorIs(t, completed.ChangeStatus(order.Pending), order.ErrIllegalTransition)

		cancelled := newOrder(t, order.Cancelled)
		require.ErrorIs(t, cancelled.ChangeStatus(order.Accepted), order.ErrIllegalTransition)
	})
}

func TestOrder_SyncStatus(t *testing.T) {
	placedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("should adopt authoritative status without transition checks", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.Accepted, placedAt,
			order.TypeDineIn, order.PaymentUnpaid, testItems(t), "")
		require.NoError(t, err)

		// Accepted -> Pending is not a legal edge but is a valid rollback.
		require.NoError(t, o.SyncStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject statuses outside the closed set", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.Accepted, placedAt,
			order.TypeDineIn, order.PaymentUnpaid, testItems(t), "")
		require.NoError(t, err)

		require.Error(t, o.SyncStatus(order.Unknown))
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_Clone(t *testing.T) {
	placedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("should produce an independent copy", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.Accepted, placedAt,
			order.TypeDineIn, order.PaymentUnpaid, testItems(t), "")
		require.NoError(t, err)

		clone := o.Clone()
		require.NoError(t, clone.SyncStatus(order.Ready))

		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, order.Ready, clone.Status())
		assert.True(t, o.IsEqual(clone))
	})
}

func TestOrder_Immutability(t *testing.T) {
	placedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("should not expose internal items for mutation", func(t *testing.T) {
		items := testItems(t)
		o, err := order.NewOrder(kernel.NewUUID(), placedAt, order.TypeDineIn, order.PaymentUnpaid, items, "")
		require.NoError(t, err)

		returned := o.Items()
		returned[0] = order.LineItem{}

		assert.Equal(t, "Burger", o.Items()[0].Name())
	})
}
