package ports

import (
	"context"

	"foodhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// One backend-agnostic implementation exists; it serializes aggregates to
// JSON documents and delegates raw storage to a Backend.
type OrderRepository interface {
	// Add persists a new order aggregate. The aggregate must be valid.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ObjectNotFoundError for
	// unknown ids.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll retrieves every order, most recently created first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order and its embedded history, reporting whether
	// it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// Clear removes every order. Intended for test isolation.
	Clear(ctx context.Context) error
}
