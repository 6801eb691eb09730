package order

import (
	"time"

	"foodhub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// The sequence is fixed and linear; an order only holds steady or advances
// by exactly one step at a time:
//
//	pending ──> confirmed ──> preparing ──> out_for_delivery ──> delivered
//
// Status is a value object that validates state transitions and carries the
// fixed customer-facing message for each step.
type Status string

const (
	// StatusPending is the initial status when an order is first placed.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the restaurant has accepted the order.
	StatusConfirmed Status = "confirmed"

	// StatusPreparing indicates the food is being prepared.
	StatusPreparing Status = "preparing"

	// StatusOutForDelivery indicates the order has left the restaurant.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered is the final status. No further transitions are allowed
	// beyond holding steady.
	StatusDelivered Status = "delivered"
)

// StatusSequence returns the fixed ordered list of statuses.
func StatusSequence() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusOutForDelivery,
		StatusDelivered,
	}
}

// statusDelays holds the elapsed-time thresholds at which each status in the
// sequence is reached under automatic progression.
func statusDelays() []time.Duration {
	return []time.Duration{
		0,
		5 * time.Second,
		10 * time.Second,
		15 * time.Second,
		20 * time.Second,
	}
}

// getStatusMessages maps each status to its fixed human-readable message.
func getStatusMessages() map[Status]string {
	return map[Status]string{
		StatusPending:        "Order received and waiting for confirmation",
		StatusConfirmed:      "Order confirmed! Restaurant is preparing your food",
		StatusPreparing:      "Your delicious food is being prepared with care",
		StatusOutForDelivery: "Your order is on the way! Expect delivery soon",
		StatusDelivered:      "Enjoy your meal! Order successfully delivered",
	}
}

// ParseStatus converts a raw string into a Status.
// Returns a ValueIsInvalidError for anything outside the five valid literals.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that the status is one of the five valid literals.
func (s Status) Validate() error {
	if s.Index() < 0 {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// Index returns the status's position in the sequence, or -1 if invalid.
func (s Status) Index() int {
	for i, candidate := range StatusSequence() {
		if s == candidate {
			return i
		}
	}
	return -1
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Message returns the fixed human-readable message recorded in the status
// history when this status is reached. Empty for invalid statuses.
func (s Status) Message() string {
	return getStatusMessages()[s]
}

// Delay returns the elapsed-time threshold at which this status is reached
// under automatic progression, measured from order creation.
func (s Status) Delay() time.Duration {
	i := s.Index()
	if i < 0 {
		return 0
	}
	return statusDelays()[i]
}

// CanTransitionTo checks the manual transition rule: the target's sequence
// index must equal the current index or exceed it by exactly one. Skipping
// steps or moving backward is rejected.
//
// Returns nil if the transition is allowed, an InvalidTransitionError otherwise.
func (s Status) CanTransitionTo(target Status) error {
	current := s.Index()
	next := target.Index()
	if next != current && next != current+1 {
		return errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return nil
}

// TargetStatusIndex computes the sequence index an order should have reached
// given its creation time, taking the latest elapsed-time threshold crossed.
// The result never exceeds the final status and never goes below zero, even
// if now precedes createdAt (clock skew).
func TargetStatusIndex(createdAt, now time.Time) int {
	elapsed := now.Sub(createdAt)
	target := 0
	for i, delay := range statusDelays() {
		if elapsed >= delay {
			target = i
		}
	}
	return target
}
