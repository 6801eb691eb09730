package http

import (
	"net/http"
	"time"

	"foodhub/internal/core/domain/model/menu"
	"foodhub/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// apiResponse is the envelope every endpoint answers with.
// Data and Message are omitted when empty; Error is set only on failure.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type menuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	PrepTime    string  `json:"prepTime"`
}

type lineItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type deliveryDetailsResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type statusUpdateResponse struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type orderResponse struct {
	ID                string                  `json:"id"`
	Items             []lineItemResponse      `json:"items"`
	Total             float64                 `json:"total"`
	DeliveryDetails   deliveryDetailsResponse `json:"deliveryDetails"`
	Status            string                  `json:"status"`
	CreatedAt         time.Time               `json:"createdAt"`
	EstimatedDelivery string                  `json:"estimatedDelivery"`
	StatusUpdates     []statusUpdateResponse  `json:"statusUpdates"`
}

func toMenuItemResponse(item menu.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Category:    item.Category,
		Rating:      item.Rating,
		PrepTime:    item.PrepTime,
	}
}

func toMenuItemResponses(items []menu.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, len(items))
	for i, item := range items {
		out[i] = toMenuItemResponse(item)
	}
	return out
}

func toStatusUpdateResponses(updates []order.StatusUpdate) []statusUpdateResponse {
	out := make([]statusUpdateResponse, len(updates))
	for i, update := range updates {
		out[i] = statusUpdateResponse{
			OrderID:   update.OrderID,
			Status:    update.Status.String(),
			Message:   update.Message,
			Timestamp: update.Timestamp,
		}
	}
	return out
}

func toOrderResponse(aggregate *order.Order) orderResponse {
	items := aggregate.Items()
	lineItems := make([]lineItemResponse, len(items))
	for i, item := range items {
		lineItems[i] = lineItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	delivery := aggregate.DeliveryDetails()

	return orderResponse{
		ID:                aggregate.ID(),
		Items:             lineItems,
		Total:             aggregate.Total(),
		DeliveryDetails:   deliveryDetailsResponse{Name: delivery.Name, Address: delivery.Address, Phone: delivery.Phone},
		Status:            aggregate.Status().String(),
		CreatedAt:         aggregate.CreatedAt(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		StatusUpdates:     toStatusUpdateResponses(aggregate.StatusUpdates()),
	}
}

func toOrderResponses(aggregates []*order.Order) []orderResponse {
	out := make([]orderResponse, len(aggregates))
	for i, aggregate := range aggregates {
		out[i] = toOrderResponse(aggregate)
	}
	return out
}

func respondData(ctx echo.Context, code int, data any) error {
	return ctx.JSON(code, apiResponse{Success: true, Data: data})
}

func respondDataWithMessage(ctx echo.Context, code int, data any, message string) error {
	return ctx.JSON(code, apiResponse{Success: true, Data: data, Message: message})
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, apiResponse{Success: false, Error: message})
}

func respondInternalError(ctx echo.Context, publicMessage, developmentDetail string) error {
	return ctx.JSON(http.StatusInternalServerError, apiResponse{
		Success: false,
		Error:   publicMessage,
		Message: developmentDetail,
	})
}
