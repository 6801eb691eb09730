package queries

import (
	"context"
	"errors"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/core/ports"
	"foodhub/internal/pkg/errs"
	"foodhub/internal/pkg/keylock"
)

// ListOrdersQueryHandler returns every order, reconciled against elapsed
// time, sorted newest first. Orders deleted between the listing and the
// per-order read are skipped rather than failing the whole list.
type ListOrdersQueryHandler struct {
	repo  ports.OrderRepository
	locks *keylock.KeyedMutex
	now   ports.Clock
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(
	repo ports.OrderRepository,
	locks *keylock.KeyedMutex,
	now ports.Clock,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		repo:  repo,
		locks: locks,
		now:   now,
	}
}

// Handle returns all reconciled orders, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*order.Order, 0, len(snapshots))
	for _, snapshot := range snapshots {
		aggregate, err := h.refreshOne(ctx, snapshot.ID())
		if err != nil {
			return nil, err
		}
		if aggregate == nil {
			continue
		}
		result = append(result, aggregate)
	}
	return result, nil
}

func (h ListOrdersQueryHandler) refreshOne(ctx context.Context, id string) (*order.Order, error) {
	h.locks.Lock(id)
	defer h.locks.Unlock(id)

	aggregate, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if aggregate.Reconcile(h.now()) {
		if err := h.repo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}
	return aggregate, nil
}
