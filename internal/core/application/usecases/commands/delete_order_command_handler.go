package commands

import (
	"context"

	"foodhub/internal/core/ports"
	"foodhub/internal/pkg/keylock"
)

// DeleteOrderCommandHandler handles order deletion. The order record carries
// its history, so one delete removes both; the order's lock entry is released
// afterwards. With pull-based progression there are no scheduled timers to
// cancel.
type DeleteOrderCommandHandler struct {
	repo  ports.OrderRepository
	locks *keylock.KeyedMutex
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(repo ports.OrderRepository, locks *keylock.KeyedMutex) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		repo:  repo,
		locks: locks,
	}
}

// Handle removes the order, reporting whether it existed.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	h.locks.Lock(cmd.OrderID())
	existed, err := h.repo.Delete(ctx, cmd.OrderID())
	h.locks.Unlock(cmd.OrderID())
	if err != nil {
		return false, err
	}

	if existed {
		h.locks.Forget(cmd.OrderID())
	}
	return existed, nil
}
