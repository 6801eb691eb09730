package queries

import (
	"context"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/core/ports"
	"foodhub/internal/pkg/keylock"
)

// GetStatusUpdatesQueryHandler returns an order's status history in
// chronological order. The order is reconciled first, so the history
// already contains every step the schedule has reached.
type GetStatusUpdatesQueryHandler struct {
	repo  ports.OrderRepository
	locks *keylock.KeyedMutex
	now   ports.Clock
}

// NewGetStatusUpdatesQueryHandler creates a handler for history reads.
func NewGetStatusUpdatesQueryHandler(
	repo ports.OrderRepository,
	locks *keylock.KeyedMutex,
	now ports.Clock,
) GetStatusUpdatesQueryHandler {
	return GetStatusUpdatesQueryHandler{
		repo:  repo,
		locks: locks,
		now:   now,
	}
}

// Handle returns the reconciled status history.
// Fails with errs.ObjectNotFoundError for an unknown id.
func (h GetStatusUpdatesQueryHandler) Handle(
	ctx context.Context,
	query GetStatusUpdatesQuery,
) ([]order.StatusUpdate, error) {
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
	return aggregate.StatusUpdates(), nil
}
