package queries

import (
	"context"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/core/ports"
	"foodhub/internal/pkg/keylock"
)

// GetOrderQueryHandler loads an order and brings it up to date with the
// progression schedule before returning it. If reconciliation advanced the
// order, the new state is persisted so subsequent reads agree.
type GetOrderQueryHandler struct {
	repo  ports.OrderRepository
	locks *keylock.KeyedMutex
	now   ports.Clock
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(
	repo ports.OrderRepository,
	locks *keylock.KeyedMutex,
	now ports.Clock,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		repo:  repo,
		locks: locks,
		now:   now,
	}
}

// Handle returns the reconciled order.
// Fails with errs.ObjectNotFoundError for an unknown id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	h.locks.Lock(query.OrderID())
	defer h.locks.Unlock(query.OrderID())

	aggregate, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Reconcile(h.now()) {
		if err := h.repo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}
	return aggregate, nil
}
