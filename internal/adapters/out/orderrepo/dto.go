// Package orderrepo implements the order repository on top of any storage
// backend. Aggregates are serialized to JSON documents; the backend only ever
// sees opaque keys and bytes, so memory, Postgres, and Mongo are
// interchangeable behind it.
package orderrepo

import (
	"time"

	"foodhub/internal/core/domain/model/order"
)

// orderDocument is the persisted shape of an order aggregate. The status
// history is embedded in the document so an order and its history are written
// and removed together, keeping creation and deletion atomic per record.
type orderDocument struct {
	ID                string               `json:"id"`
	Items             []lineItemDocument   `json:"items"`
	Total             float64              `json:"total"`
	DeliveryDetails   deliveryDocument     `json:"deliveryDetails"`
	Status            string               `json:"status"`
	CreatedAt         time.Time            `json:"createdAt"`
	EstimatedDelivery string               `json:"estimatedDelivery"`
	StatusUpdates     []statusUpdateRecord `json:"statusUpdates"`
}

type lineItemDocument struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type deliveryDocument struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type statusUpdateRecord struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func fromDomain(aggregate *order.Order) orderDocument {
	items := aggregate.Items()
	itemDocs := make([]lineItemDocument, len(items))
	for i, item := range items {
		itemDocs[i] = lineItemDocument{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	updates := aggregate.StatusUpdates()
	updateDocs := make([]statusUpdateRecord, len(updates))
	for i, update := range updates {
		updateDocs[i] = statusUpdateRecord{
			OrderID:   update.OrderID,
			Status:    update.Status.String(),
			Message:   update.Message,
			Timestamp: update.Timestamp,
		}
	}

	delivery := aggregate.DeliveryDetails()
	return orderDocument{
		ID:    aggregate.ID(),
		Items: itemDocs,
		Total: aggregate.Total(),
		DeliveryDetails: deliveryDocument{
			Name:    delivery.Name,
			Address: delivery.Address,
			Phone:   delivery.Phone,
		},
		Status:            aggregate.Status().String(),
		CreatedAt:         aggregate.CreatedAt(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		StatusUpdates:     updateDocs,
	}
}

func toDomain(doc orderDocument) (*order.Order, error) {
	items := make([]order.LineItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = order.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	updates := make([]order.StatusUpdate, len(doc.StatusUpdates))
	for i, update := range doc.StatusUpdates {
		updates[i] = order.StatusUpdate{
			OrderID:   update.OrderID,
			Status:    order.Status(update.Status),
			Message:   update.Message,
			Timestamp: update.Timestamp,
		}
	}

	return order.RestoreOrder(
		doc.ID,
		items,
		doc.Total,
		order.DeliveryDetails{
			Name:    doc.DeliveryDetails.Name,
			Address: doc.DeliveryDetails.Address,
			Phone:   doc.DeliveryDetails.Phone,
		},
		order.Status(doc.Status),
		doc.CreatedAt,
		doc.EstimatedDelivery,
		updates,
	)
}
