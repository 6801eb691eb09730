package order_test

import (
	"strings"
	"testing"
	"time"

	"foodhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []order.LineItem {
	return []order.LineItem{
		{ID: "1", Name: "Margherita Pizza", Price: 14.99, Quantity: 2},
	}
}

func validDelivery() order.DeliveryDetails {
	return order.DeliveryDetails{
		Name:    "John Doe",
		Address: "123 Main St",
		Phone:   "2345678900",
	}
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates pending order with computed total and seeded history", func(t *testing.T) {
		o, err := order.NewOrder(validItems(), validDelivery(), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.InDelta(t, 29.98, o.Total(), 1e-9)
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, "30-45 min", o.EstimatedDelivery())

		updates := o.StatusUpdates()
		require.Len(t, updates, 1)
		assert.Equal(t, o.ID(), updates[0].OrderID)
		assert.Equal(t, order.StatusPending, updates[0].Status)
		assert.Equal(t, "Order received and waiting for confirmation", updates[0].Message)
		assert.Equal(t, createdAt, updates[0].Timestamp)
	})

	t.Run("generates ids of the form ORD-<millis>-<suffix>", func(t *testing.T) {
		o, err := order.NewOrder(validItems(), validDelivery(), createdAt)

		require.NoError(t, err)
		parts := strings.SplitN(o.ID(), "-", 3)
		require.Len(t, parts, 3)
		assert.Equal(t, "ORD", parts[0])
		assert.Equal(t, "1748779200000", parts[1])
		assert.Len(t, parts[2], 8)
	})

	t.Run("distinct orders get distinct ids", func(t *testing.T) {
		a, err := order.NewOrder(validItems(), validDelivery(), createdAt)
		require.NoError(t, err)
		b, err := order.NewOrder(validItems(), validDelivery(), createdAt)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("sums totals across items and quantities", func(t *testing.T) {
		items := []order.LineItem{
			{ID: "1", Name: "Margherita Pizza", Price: 14.99, Quantity: 1},
			{ID: "5", Name: "Caesar Salad", Price: 9.99, Quantity: 3},
		}

		o, err := order.NewOrder(items, validDelivery(), createdAt)

		require.NoError(t, err)
		assert.InDelta(t, 44.96, o.Total(), 1e-9)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		o, err := order.NewOrder(nil, validDelivery(), createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "at least one item")
	})

	t.Run("rejects bad delivery details", func(t *testing.T) {
		o, err := order.NewOrder(validItems(), order.DeliveryDetails{Phone: "123"}, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "Name is required")
		assert.Contains(t, err.Error(), "10 digits")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("fails for nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("fails for zero-value order", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("rehydrates a persisted order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			"ORD-1748779200000-deadbeef",
			validItems(),
			29.98,
			validDelivery(),
			order.StatusConfirmed,
			createdAt,
			"30-45 min",
			[]order.StatusUpdate{
				{OrderID: "ORD-1748779200000-deadbeef", Status: order.StatusPending, Timestamp: createdAt},
			},
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Len(t, o.StatusUpdates(), 1)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := order.RestoreOrder("", validItems(), 0, validDelivery(),
			order.StatusPending, createdAt, "", nil)
		require.Error(t, err)
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder("ORD-1-x", validItems(), 0, validDelivery(),
			order.Status("bogus"), createdAt, "", nil)
		require.Error(t, err)
	})
}

func TestOrder_ApplyStatus(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newPending := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(validItems(), validDelivery(), createdAt)
		require.NoError(t, err)
		return o
	}

	t.Run("advances one step and appends a history entry", func(t *testing.T) {
		o := newPending(t)
		at := createdAt.Add(time.Second)

		require.NoError(t, o.ApplyStatus(order.StatusConfirmed, at))

		assert.Equal(t, order.StatusConfirmed, o.Status())
		updates := o.StatusUpdates()
		require.Len(t, updates, 2)
		assert.Equal(t, order.StatusConfirmed, updates[1].Status)
		assert.Equal(t, "Order confirmed! Restaurant is preparing your food", updates[1].Message)
		assert.Equal(t, at, updates[1].Timestamp)
	})

	t.Run("same-status transition appends a duplicate entry", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.ApplyStatus(order.StatusConfirmed, createdAt.Add(time.Second)))

		require.NoError(t, o.ApplyStatus(order.StatusConfirmed, createdAt.Add(2*time.Second)))

		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Len(t, o.StatusUpdates(), 3)
	})

	t.Run("rejects skipping steps", func(t *testing.T) {
		o := newPending(t)

		err := o.ApplyStatus(order.StatusDelivered, createdAt.Add(time.Second))

		require.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Len(t, o.StatusUpdates(), 1)
	})

	t.Run("rejects moving backward", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.ApplyStatus(order.StatusConfirmed, createdAt))

		err := o.ApplyStatus(order.StatusPending, createdAt.Add(time.Second))

		require.Error(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("rejects invalid literal", func(t *testing.T) {
		o := newPending(t)
		require.Error(t, o.ApplyStatus(order.Status("cooking"), createdAt))
	})
}

func TestOrder_Reconcile(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newPending := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(validItems(), validDelivery(), createdAt)
		require.NoError(t, err)
		return o
	}

	t.Run("no change before the first threshold", func(t *testing.T) {
		o := newPending(t)

		changed := o.Reconcile(createdAt.Add(3 * time.Second))

		assert.False(t, changed)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Len(t, o.StatusUpdates(), 1)
	})

	t.Run("synthesizes the full prefix after 12 seconds", func(t *testing.T) {
		o := newPending(t)

		changed := o.Reconcile(createdAt.Add(12 * time.Second))

		assert.True(t, changed)
		assert.Equal(t, order.StatusPreparing, o.Status())

		updates := o.StatusUpdates()
		require.Len(t, updates, 3)
		assert.Equal(t, order.StatusPending, updates[0].Status)
		assert.Equal(t, order.StatusConfirmed, updates[1].Status)
		assert.Equal(t, order.StatusPreparing, updates[2].Status)
		assert.Equal(t, createdAt.Add(5*time.Second), updates[1].Timestamp)
		assert.Equal(t, createdAt.Add(10*time.Second), updates[2].Timestamp)
	})

	t.Run("reaches delivered after the final threshold", func(t *testing.T) {
		o := newPending(t)

		o.Reconcile(createdAt.Add(time.Minute))

		assert.Equal(t, order.StatusDelivered, o.Status())
		updates := o.StatusUpdates()
		require.Len(t, updates, 5)
		for i, s := range order.StatusSequence() {
			assert.Equal(t, s, updates[i].Status)
			assert.Equal(t, s.Message(), updates[i].Message)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		o := newPending(t)
		now := createdAt.Add(time.Minute)

		assert.True(t, o.Reconcile(now))
		assert.False(t, o.Reconcile(now))
		assert.Len(t, o.StatusUpdates(), 5)
	})

	t.Run("never regresses a manually advanced order", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.ApplyStatus(order.StatusConfirmed, createdAt.Add(time.Second)))

		changed := o.Reconcile(createdAt.Add(2 * time.Second))

		assert.False(t, changed)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("does not duplicate statuses already appended manually", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.ApplyStatus(order.StatusConfirmed, createdAt.Add(time.Second)))

		o.Reconcile(createdAt.Add(12 * time.Second))

		statuses := make(map[order.Status]int)
		for _, u := range o.StatusUpdates() {
			statuses[u.Status]++
		}
		assert.Equal(t, 1, statuses[order.StatusConfirmed])
		assert.Equal(t, 1, statuses[order.StatusPreparing])
	})

	t.Run("history stays ordered by timestamp then sequence", func(t *testing.T) {
		o := newPending(t)
		o.Reconcile(createdAt.Add(time.Minute))

		updates := o.StatusUpdates()
		for i := 1; i < len(updates); i++ {
			prev, curr := updates[i-1], updates[i]
			if prev.Timestamp.Equal(curr.Timestamp) {
				assert.Less(t, prev.Status.Index(), curr.Status.Index())
			} else {
				assert.True(t, prev.Timestamp.Before(curr.Timestamp))
			}
		}
	})

	t.Run("seeds the pending entry for legacy records", func(t *testing.T) {
		o, err := order.RestoreOrder("ORD-1-legacy", validItems(), 29.98, validDelivery(),
			order.StatusPending, createdAt, "30-45 min", nil)
		require.NoError(t, err)

		changed := o.Reconcile(createdAt)

		assert.True(t, changed)
		updates := o.StatusUpdates()
		require.Len(t, updates, 1)
		assert.Equal(t, order.StatusPending, updates[0].Status)
		assert.Equal(t, createdAt, updates[0].Timestamp)
	})
}
