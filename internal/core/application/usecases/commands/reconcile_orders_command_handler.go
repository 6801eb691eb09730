package commands

import (
	"context"
	"errors"
	"time"

	"foodhub/internal/core/ports"
	"foodhub/internal/pkg/errs"
	"foodhub/internal/pkg/keylock"
)

// ReconcileOrdersCommandHandler advances every order that has crossed a new
// progression threshold and persists the result. Each order is reconciled
// under its own lock; orders are independent, so no global lock is taken.
type ReconcileOrdersCommandHandler struct {
	repo  ports.OrderRepository
	locks *keylock.KeyedMutex
	now   ports.Clock
}

// NewReconcileOrdersCommandHandler creates a handler for the progression sweep.
func NewReconcileOrdersCommandHandler(
	repo ports.OrderRepository,
	locks *keylock.KeyedMutex,
	now ports.Clock,
) ReconcileOrdersCommandHandler {
	return ReconcileOrdersCommandHandler{
		repo:  repo,
		locks: locks,
		now:   now,
	}
}

// Handle reconciles all orders, returning how many advanced.
func (h ReconcileOrdersCommandHandler) Handle(ctx context.Context, cmd ReconcileOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	orders, err := h.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	now := h.now()
	advanced := 0
	for _, snapshot := range orders {
		changed, err := h.reconcileOne(ctx, snapshot.ID(), now)
		if err != nil {
			return advanced, err
		}
		if changed {
			advanced++
		}
	}
	return advanced, nil
}

func (h ReconcileOrdersCommandHandler) reconcileOne(ctx context.Context, id string, now time.Time) (bool, error) {
	h.locks.Lock(id)
	defer h.locks.Unlock(id)

	// Re-read under the lock; the listing snapshot may be stale relative to
	// a concurrent manual transition or delete.
	aggregate, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	if !aggregate.Reconcile(now) {
		return false, nil
	}
	return true, h.repo.Update(ctx, aggregate)
}
