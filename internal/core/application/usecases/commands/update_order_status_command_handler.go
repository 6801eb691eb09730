package commands

import (
	"context"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/core/ports"
	"foodhub/internal/pkg/keylock"
)

// UpdateOrderStatusCommandHandler handles manual status transitions.
//
// The read-modify-write sequence is serialized per order id through the
// shared lock registry, so two concurrent transition calls cannot both
// advance past the same step. The order is reconciled against elapsed time
// first; the transition rule is then checked against the reconciled status,
// exactly as a polling client would observe it.
type UpdateOrderStatusCommandHandler struct {
	repo  ports.OrderRepository
	locks *keylock.KeyedMutex
	now   ports.Clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	repo ports.OrderRepository,
	locks *keylock.KeyedMutex,
	now ports.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		repo:  repo,
		locks: locks,
		now:   now,
	}
}

// Handle applies the transition and returns the updated order.
// Fails with errs.ObjectNotFoundError for an unknown id and with
// errs.InvalidTransitionError when the target skips a step or moves backward.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.locks.Lock(cmd.OrderID())
	defer h.locks.Unlock(cmd.OrderID())

	aggregate, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.now()
	aggregate.Reconcile(now)

	if err := aggregate.ApplyStatus(cmd.Status(), now); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	return aggregate, nil
}
