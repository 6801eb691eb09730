package order

import "time"

// StatusUpdate is one entry in an order's append-only status history.
// OrderID is a lookup key back to the order, not an ownership relation.
type StatusUpdate struct {
	OrderID   string
	Status    Status
	Message   string
	Timestamp time.Time
}

// newStatusUpdate builds a history entry with the fixed message for status.
func newStatusUpdate(orderID string, status Status, at time.Time) StatusUpdate {
	return StatusUpdate{
		OrderID:   orderID,
		Status:    status,
		Message:   status.Message(),
		Timestamp: at,
	}
}
