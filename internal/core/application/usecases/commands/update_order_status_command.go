package commands

import (
	"errors"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/pkg/errs"
	"foodhub/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a manual status transition request.
// The raw status literal is parsed at construction, so a handler only ever
// sees one of the five valid statuses.
type UpdateOrderStatusCommand struct {
	orderID string
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a transition command from the raw
// request values. Returns an error for a blank id or an unknown status
// literal.
func NewUpdateOrderStatusCommand(orderID, rawStatus string) (UpdateOrderStatusCommand, error) {
	if orderID == "" {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// Status returns the parsed target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
