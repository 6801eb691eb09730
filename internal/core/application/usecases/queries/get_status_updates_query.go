package queries

import (
	"errors"

	"foodhub/internal/pkg/errs"
	"foodhub/internal/pkg/guard"
)

var ErrGetStatusUpdatesQueryIsNotConstructed = errors.New(
	"GetStatusUpdatesQuery must be created via NewGetStatusUpdatesQuery constructor",
)

// GetStatusUpdatesQuery retrieves the status history of a single order.
type GetStatusUpdatesQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetStatusUpdatesQuery creates a history query for the given order id.
// Returns an error for a blank id.
func NewGetStatusUpdatesQuery(orderID string) (GetStatusUpdatesQuery, error) {
	if orderID == "" {
		return GetStatusUpdatesQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetStatusUpdatesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusUpdatesQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusUpdatesQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetStatusUpdatesQuery) OrderID() string {
	return q.orderID
}
