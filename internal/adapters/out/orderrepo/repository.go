package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"foodhub/internal/core/domain/model/order"
	"foodhub/internal/core/ports"
	"foodhub/internal/pkg/errs"
)

const keyPrefix = "order:"

// Repository implements ports.OrderRepository over a ports.Backend.
type Repository struct {
	backend ports.Backend
}

// NewRepository creates a repository on the given storage backend.
func NewRepository(backend ports.Backend) *Repository {
	return &Repository{backend: backend}
}

func orderKey(id string) string {
	return keyPrefix + id
}

// Add persists a new order aggregate.
func (r *Repository) Add(ctx context.Context, aggregate *order.Order) error {
	return r.put(ctx, aggregate)
}

// Update persists changes to an existing order aggregate.
func (r *Repository) Update(ctx context.Context, aggregate *order.Order) error {
	return r.put(ctx, aggregate)
}

func (r *Repository) put(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	key := orderKey(aggregate.ID())
	if err := r.backend.Put(ctx, key, value); err != nil {
		return errs.NewStorageError("put "+key, err)
	}
	return nil
}

// Get retrieves an order by id.
func (r *Repository) Get(ctx context.Context, id string) (*order.Order, error) {
	key := orderKey(id)
	value, err := r.backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, errs.NewStorageError("get "+key, err)
	}

	var doc orderDocument
	if err := json.Unmarshal(value, &doc); err != nil {
		return nil, errs.NewStorageError("decode "+key, err)
	}
	return toDomain(doc)
}

// GetAll retrieves every order, most recently created first.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	keys, err := r.backend.ListKeys(ctx, keyPrefix)
	if err != nil {
		return nil, errs.NewStorageError("list keys", err)
	}

	orders := make([]*order.Order, 0, len(keys))
	for _, key := range keys {
		value, err := r.backend.Get(ctx, key)
		if err != nil {
			// A listed key whose record is gone means a concurrent delete or
			// a partially failed write; treat the entry as absent.
			if errors.Is(err, ports.ErrKeyNotFound) {
				continue
			}
			return nil, errs.NewStorageError("get "+key, err)
		}

		var doc orderDocument
		if err := json.Unmarshal(value, &doc); err != nil {
			return nil, errs.NewStorageError("decode "+key, err)
		}

		aggregate, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	sort.SliceStable(orders, func(a, b int) bool {
		return orders[a].CreatedAt().After(orders[b].CreatedAt())
	})
	return orders, nil
}

// Delete removes the order and its embedded history.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	key := orderKey(id)
	existed, err := r.backend.Delete(ctx, key)
	if err != nil {
		return false, errs.NewStorageError("delete "+key, err)
	}
	return existed, nil
}

// Clear removes every order.
func (r *Repository) Clear(ctx context.Context) error {
	keys, err := r.backend.ListKeys(ctx, keyPrefix)
	if err != nil {
		return errs.NewStorageError("list keys", err)
	}

	for _, key := range keys {
		if _, err := r.backend.Delete(ctx, key); err != nil {
			return errs.NewStorageError("delete "+key, err)
		}
	}
	return nil
}
