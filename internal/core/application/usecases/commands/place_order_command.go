package commands

import (
	"errors"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new food order.
// Construction runs both creation-time validators; every violation is
// reported at once, not just the first.
type PlaceOrderCommand struct {
	items    []order.LineItem
	delivery order.DeliveryDetails

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order with the given
// cart and delivery details. Returns an errs.ValidationError listing all
// violations if either input is invalid.
func NewPlaceOrderCommand(items []order.LineItem, delivery order.DeliveryDetails) (PlaceOrderCommand, error) {
	if err := order.ValidateLineItems(items); err != nil {
		return PlaceOrderCommand{}, err
	}
	if err := order.ValidateDeliveryDetails(delivery); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		items:    append([]order.LineItem(nil), items...),
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Items returns the cart's line items.
func (c PlaceOrderCommand) Items() []order.LineItem {
	return append([]order.LineItem(nil), c.items...)
}

// DeliveryDetails returns the delivery contact information.
func (c PlaceOrderCommand) DeliveryDetails() order.DeliveryDetails {
	return c.delivery
}
