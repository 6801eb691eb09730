package order

import (
	"fmt"
	"strings"
	"unicode"

	"foodhub/internal/pkg/errs"
)

// ValidateLineItems checks a cart submitted for ordering. All violations are
// accumulated and returned together so the caller can surface one joined
// user-facing error string.
func ValidateLineItems(items []LineItem) error {
	var violations []string

	if len(items) == 0 {
		violations = append(violations, "Order must contain at least one item")
		return errs.NewValidationError(violations)
	}

	for i, item := range items {
		if item.ID == "" || item.Name == "" || item.Price == 0 {
			violations = append(violations, fmt.Sprintf("Item at index %d is missing required fields", i))
		}
		if item.Quantity < 1 {
			violations = append(violations, fmt.Sprintf("Item at index %d has invalid quantity", i))
		}
	}

	if len(violations) > 0 {
		return errs.NewValidationError(violations)
	}
	return nil
}

// ValidateDeliveryDetails checks the contact details submitted with an order.
// Name and address must be non-blank; the phone number must contain exactly
// ten digits once every non-digit character is stripped. Email is explicitly
// not required or validated.
func ValidateDeliveryDetails(details DeliveryDetails) error {
	var violations []string

	if strings.TrimSpace(details.Name) == "" {
		violations = append(violations, "Name is required")
	}
	if strings.TrimSpace(details.Address) == "" {
		violations = append(violations, "Address is required")
	}
	if strings.TrimSpace(details.Phone) == "" {
		violations = append(violations, "Phone number is required")
	} else if len(stripNonDigits(details.Phone)) != 10 {
		violations = append(violations, "Phone number must be exactly 10 digits")
	}

	if len(violations) > 0 {
		return errs.NewValidationError(violations)
	}
	return nil
}

func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
