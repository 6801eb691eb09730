// Package memory provides the in-memory storage backend. It is the default
// for local development and the workhorse for test isolation.
package memory

import (
	"context"
	"strings"
	"sync"

	"foodhub/internal/core/ports"
)

// Backend stores values in a map guarded by a RWMutex. Values are copied on
// the way in and out so callers can never alias internal state.
type Backend struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewBackend creates an empty in-memory backend.
func NewBackend() *Backend {
	return &Backend{
		records: make(map[string][]byte),
	}
}

// Get returns the value stored under key, or ports.ErrKeyNotFound.
func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.records[key]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// Put stores value under key, overwriting any previous value.
func (b *Backend) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key and reports whether it existed.
func (b *Backend) Delete(_ context.Context, key string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.records[key]
	delete(b.records, key)
	return ok, nil
}

// ListKeys returns every stored key with the given prefix.
func (b *Backend) ListKeys(_ context.Context, prefix string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.records))
	for key := range b.records {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
