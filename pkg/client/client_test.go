package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"foodhub/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderPayload(id, status string) map[string]any {
	return map[string]any{
		"success": true,
		"data": map[string]any{
			"id":                id,
			"items":             []map[string]any{{"id": "1", "name": "Margherita Pizza", "price": 14.99, "quantity": 2}},
			"total":             29.98,
			"deliveryDetails":   map[string]any{"name": "Jordan Reyes", "address": "42 Elm Street", "phone": "5551234567"},
			"status":            status,
			"createdAt":         "2025-06-01T12:00:00Z",
			"estimatedDelivery": "30-45 min",
			"statusUpdates": []map[string]any{
				{"orderId": id, "status": "pending", "message": "Order received", "timestamp": "2025-06-01T12:00:00Z"},
			},
		},
	}
}

func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/ORD-1-abc", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(orderPayload("ORD-1-abc", "pending")))
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	order, err := c.GetOrder(t.Context(), "ORD-1-abc")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1-abc", order.ID)
	assert.Equal(t, "pending", order.Status)
	assert.InDelta(t, 29.98, order.Total, 0.0001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestGetOrder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Order not found"})
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	_, err := c.GetOrder(t.Context(), "ORD-0-missing")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Order not found", apiErr.Message)
}

func TestGetStatusUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/ORD-1-abc/status-updates", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"orderId": "ORD-1-abc", "status": "pending", "message": "Order received", "timestamp": "2025-06-01T12:00:00Z"},
				{"orderId": "ORD-1-abc", "status": "confirmed", "message": "Restaurant confirmed your order", "timestamp": "2025-06-01T12:00:05Z"},
			},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	updates, err := c.GetStatusUpdates(t.Context(), "ORD-1-abc")
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "confirmed", updates[1].Status)
}

func TestTrackOrder_StopsOnDelivered(t *testing.T) {
	var calls atomic.Int32
	statuses := []string{"pending", "out_for_delivery", "delivered"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i := calls.Add(1) - 1
		if int(i) >= len(statuses) {
			i = int32(len(statuses) - 1)
		}
		_ = json.NewEncoder(w).Encode(orderPayload("ORD-1-abc", statuses[i]))
	}))
	defer srv.Close()

	var observed []string
	c := client.New(srv.URL, nil)
	err := c.TrackOrder(t.Context(), "ORD-1-abc", time.Millisecond, func(o *client.Order) error {
		observed = append(observed, o.Status)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"pending", "out_for_delivery", "delivered"}, observed)
}

func TestTrackOrder_StopsOnCallbackError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(orderPayload("ORD-1-abc", "pending"))
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	err := c.TrackOrder(t.Context(), "ORD-1-abc", time.Millisecond, func(*client.Order) error {
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestTrackOrder_StopsOnContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(orderPayload("ORD-1-abc", "pending"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	c := client.New(srv.URL, nil)
	err := c.TrackOrder(ctx, "ORD-1-abc", time.Millisecond, func(*client.Order) error { return nil })
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
