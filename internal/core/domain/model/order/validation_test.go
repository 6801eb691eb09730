package order_test

import (
	"testing"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLineItems(t *testing.T) {
	t.Run("accepts a valid cart", func(t *testing.T) {
		require.NoError(t, order.ValidateLineItems(validItems()))
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		for _, items := range [][]order.LineItem{nil, {}} {
			err := order.ValidateLineItems(items)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, "Order must contain at least one item", err.Error())
		}
	})

	t.Run("reports missing fields with item index", func(t *testing.T) {
		items := []order.LineItem{
			{ID: "1", Name: "Margherita Pizza", Price: 14.99, Quantity: 1},
			{Name: "No ID", Price: 9.99, Quantity: 1},
			{ID: "3", Name: "Free?", Quantity: 1},
		}

		err := order.ValidateLineItems(items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Item at index 1 is missing required fields")
		assert.Contains(t, err.Error(), "Item at index 2 is missing required fields")
	})

	t.Run("reports invalid quantity", func(t *testing.T) {
		items := []order.LineItem{
			{ID: "1", Name: "Margherita Pizza", Price: 14.99, Quantity: 0},
		}

		err := order.ValidateLineItems(items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Item at index 0 has invalid quantity")
	})

	t.Run("accumulates all violations", func(t *testing.T) {
		items := []order.LineItem{
			{Quantity: 0},
		}

		err := order.ValidateLineItems(items)

		require.Error(t, err)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Violations, 2)
	})
}

func TestValidateDeliveryDetails(t *testing.T) {
	t.Run("accepts valid details", func(t *testing.T) {
		require.NoError(t, order.ValidateDeliveryDetails(validDelivery()))
	})

	t.Run("accepts phone with formatting characters", func(t *testing.T) {
		details := validDelivery()
		details.Phone = "(234) 567-8900"
		require.NoError(t, order.ValidateDeliveryDetails(details))
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		err := order.ValidateDeliveryDetails(order.DeliveryDetails{
			Name:    "   ",
			Address: "",
			Phone:   "\t",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name is required")
		assert.Contains(t, err.Error(), "Address is required")
		assert.Contains(t, err.Error(), "Phone number is required")
	})

	t.Run("rejects phone with wrong digit count", func(t *testing.T) {
		for _, phone := range []string{"123", "12345678901", "234-567-890"} {
			details := validDelivery()
			details.Phone = phone

			err := order.ValidateDeliveryDetails(details)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "Phone number must be exactly 10 digits")
		}
	})

	t.Run("email is not required", func(t *testing.T) {
		// DeliveryDetails has no email field at all; this documents the choice.
		require.NoError(t, order.ValidateDeliveryDetails(validDelivery()))
	})
}
