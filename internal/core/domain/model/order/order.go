package order

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// EstimatedDelivery is the informational delivery window fixed at creation.
const EstimatedDelivery = "30-45 min"

// LineItem is one position of an order: a menu item plus a quantity.
// Items are set at creation and immutable thereafter.
type LineItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// DeliveryDetails is the customer contact and destination information
// captured at creation. Email is intentionally not part of it.
type DeliveryDetails struct {
	Name    string
	Address string
	Phone   string
}

// Order represents one placed food order. It is the aggregate root that owns
// the order's status and its append-only status history.
//
// Order maintains these invariants:
//   - id, items, total, delivery details and creation time are immutable
//   - status moves monotonically forward through the fixed sequence
//   - the history's statuses are exactly the prefix of the sequence up to the
//     current status, ascending in sequence order and timestamp (manual
//     same-status transitions may append a duplicate entry on top)
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id                string
	items             []LineItem
	total             float64
	delivery          DeliveryDetails
	status            Status
	createdAt         time.Time
	estimatedDelivery string
	statusUpdates     []StatusUpdate

	isConstructed bool
}

// NewOrderID generates an order identifier of the form
// ORD-<creation unix millis>-<8-char random suffix>.
func NewOrderID(createdAt time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", createdAt.UnixMilli(), uuid.NewString()[:8])
}

// NewOrder creates a new Order in pending status with a seeded history entry.
// Items and delivery details are validated first; every violation is reported,
// not just the first. The total is computed as sum(price x quantity).
//
// Returns the order, or a ValidationError if any input is invalid.
func NewOrder(items []LineItem, delivery DeliveryDetails, createdAt time.Time) (*Order, error) {
	if err := ValidateLineItems(items); err != nil {
		return nil, err
	}
	if err := ValidateDeliveryDetails(delivery); err != nil {
		return nil, err
	}

	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	id := NewOrderID(createdAt)
	o := &Order{
		id:                id,
		items:             append([]LineItem(nil), items...),
		total:             total,
		delivery:          delivery,
		status:            StatusPending,
		createdAt:         createdAt,
		estimatedDelivery: EstimatedDelivery,
		statusUpdates: []StatusUpdate{
			newStatusUpdate(id, StatusPending, createdAt),
		},
		isConstructed: true,
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence without re-running
// creation-time validation. The stored status must still be a valid literal.
func RestoreOrder(
	id string,
	items []LineItem,
	total float64,
	delivery DeliveryDetails,
	status Status,
	createdAt time.Time,
	estimatedDelivery string,
	statusUpdates []StatusUpdate,
) (*Order, error) {
	if id == "" {
		return nil, errors.New("order id is required")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		items:             append([]LineItem(nil), items...),
		total:             total,
		delivery:          delivery,
		status:            status,
		createdAt:         createdAt,
		estimatedDelivery: estimatedDelivery,
		statusUpdates:     append([]StatusUpdate(nil), statusUpdates...),
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Total returns the monetary total computed at creation.
func (o *Order) Total() float64 {
	return o.total
}

// DeliveryDetails returns the delivery contact information.
func (o *Order) DeliveryDetails() DeliveryDetails {
	return o.delivery
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDelivery returns the informational delivery window.
func (o *Order) EstimatedDelivery() string {
	return o.estimatedDelivery
}

// StatusUpdates returns a copy of the order's status history, ordered by
// timestamp then sequence index.
func (o *Order) StatusUpdates() []StatusUpdate {
	return append([]StatusUpdate(nil), o.statusUpdates...)
}

// ApplyStatus performs a manual status transition at the given time.
//
// The target must be a valid literal and its sequence index must equal the
// current index or exceed it by exactly one. A same-status transition is
// accepted and still appends a history entry with a fresh timestamp, matching
// the observed behavior of the tracking UI's manual refresh.
func (o *Order) ApplyStatus(target Status, at time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}

	o.status = target
	o.statusUpdates = append(o.statusUpdates, newStatusUpdate(o.id, target, at))
	return nil
}

// Reconcile advances the order to the status it should have reached by now
// under elapsed-time progression, synthesizing any missing history entries
// with timestamps createdAt+threshold. The computed target never goes below
// the stored status, so progression stays monotonic even if clocks or stored
// state lag. Reports whether anything changed and needs persisting.
func (o *Order) Reconcile(now time.Time) bool {
	changed := false

	seen := make(map[Status]bool, len(o.statusUpdates))
	for _, update := range o.statusUpdates {
		seen[update.Status] = true
	}

	// Orders persisted before history tracking existed lack the seed entry.
	if !seen[StatusPending] {
		o.statusUpdates = append(o.statusUpdates, newStatusUpdate(o.id, StatusPending, o.createdAt))
		seen[StatusPending] = true
		changed = true
	}

	current := o.status.Index()
	if current < 0 {
		current = 0
	}
	target := TargetStatusIndex(o.createdAt, now)
	if target < current {
		target = current
	}

	sequence := StatusSequence()
	for i := 1; i <= target; i++ {
		status := sequence[i]
		if seen[status] {
			continue
		}
		o.statusUpdates = append(o.statusUpdates,
			newStatusUpdate(o.id, status, o.createdAt.Add(status.Delay())))
		seen[status] = true
		changed = true
	}

	// Synthesized entries can share a reconciliation timestamp; the sequence
	// index breaks the tie.
	sort.SliceStable(o.statusUpdates, func(a, b int) bool {
		if !o.statusUpdates[a].Timestamp.Equal(o.statusUpdates[b].Timestamp) {
			return o.statusUpdates[a].Timestamp.Before(o.statusUpdates[b].Timestamp)
		}
		return o.statusUpdates[a].Status.Index() < o.statusUpdates[b].Status.Index()
	})

	if o.status != sequence[target] {
		o.status = sequence[target]
		changed = true
	}

	return changed
}
