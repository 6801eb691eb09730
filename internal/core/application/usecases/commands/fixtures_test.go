package commands_test

import (
	"testing"
	"time"

	"foodhub/internal/adapters/out/orderrepo"
	"foodhub/internal/adapters/out/storage/memory"
	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newRepo() *orderrepo.Repository {
	return orderrepo.NewRepository(memory.NewBackend())
}

func fixedClock(at time.Time) ports.Clock {
	return func() time.Time { return at }
}

func validItems() []order.LineItem {
	return []order.LineItem{
		{ID: "1", Name: "Margherita Pizza", Price: 12.99, Quantity: 1},
		{ID: "4", Name: "Caesar Salad", Price: 8.99, Quantity: 2},
	}
}

func validDelivery() order.DeliveryDetails {
	return order.DeliveryDetails{
		Name:    "Jordan Reyes",
		Address: "42 Elm Street, Springfield",
		Phone:   "5551234567",
	}
}

func seedOrder(t *testing.T, repo ports.OrderRepository, createdAt time.Time) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(validItems(), validDelivery(), createdAt)
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), aggregate))
	return aggregate
}
