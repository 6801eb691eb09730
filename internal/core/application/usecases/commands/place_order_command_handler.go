package commands

import (
	"context"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/core/ports"
)

// PlaceOrderCommandHandler handles order placement. A new order starts in
// pending status with its seed history entry; the order document and the
// seed entry are persisted in one write, so creation either fully applies
// or reports failure with no visible order.
type PlaceOrderCommandHandler struct {
	repo ports.OrderRepository
	now  ports.Clock
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(repo ports.OrderRepository, now ports.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		repo: repo,
		now:  now,
	}
}

// Handle creates the order and persists it, returning the created aggregate.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.Items(), cmd.DeliveryDetails(), h.now())
	if err != nil {
		return nil, err
	}

	if err := h.repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}
	return aggregate, nil
}
