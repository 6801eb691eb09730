// Package client is a small polling client for the FoodHub API. It mirrors
// what the web frontend does: fetch an order and its status history on a
// fixed interval until the order is delivered.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultPollInterval matches the frontend's tracking poll rate.
const DefaultPollInterval = 2 * time.Second

// StatusDelivered is the terminal status; TrackOrder stops when it is seen.
const StatusDelivered = "delivered"

// Order is the wire representation of an order.
type Order struct {
	ID                string          `json:"id"`
	Items             []LineItem      `json:"items"`
	Total             float64         `json:"total"`
	DeliveryDetails   DeliveryDetails `json:"deliveryDetails"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	StatusUpdates     []StatusUpdate  `json:"statusUpdates"`
}

// LineItem is one cart entry of an order.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// DeliveryDetails is the order's delivery contact information.
type DeliveryDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// StatusUpdate is one entry of an order's status history.
type StatusUpdate struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// APIError is a non-success answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client calls the FoodHub REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetOrder fetches a single order.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.get(ctx, "/api/orders/"+id, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetStatusUpdates fetches an order's status history.
func (c *Client) GetStatusUpdates(ctx context.Context, id string) ([]StatusUpdate, error) {
	var updates []StatusUpdate
	if err := c.get(ctx, "/api/orders/"+id+"/status-updates", &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// TrackOrder polls the order on the given interval (DefaultPollInterval when
// interval is zero or negative) and calls fn with every observed state,
// including the first one fetched immediately. Tracking stops when the order
// reaches delivered, fn returns an error, a fetch fails, or ctx is done.
func (c *Client) TrackOrder(ctx context.Context, id string, interval time.Duration, fn func(*Order) error) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	observe := func() (bool, error) {
		order, err := c.GetOrder(ctx, id)
		if err != nil {
			return false, err
		}
		if err := fn(order); err != nil {
			return false, err
		}
		return order.Status == StatusDelivered, nil
	}

	done, err := observe()
	if err != nil || done {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := observe()
			if err != nil || done {
				return err
			}
		}
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	return json.Unmarshal(env.Data, out)
}
