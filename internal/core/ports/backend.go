package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Backend.Get for keys that do not exist.
// Backends translate their native not-found conditions to this sentinel so
// callers never branch on a driver error.
var ErrKeyNotFound = errors.New("key not found")

// Backend is the pluggable storage contract: opaque string keys mapped to
// JSON-serialized values. The in-memory map, the Postgres table, and the
// Mongo collection are three implementations of this one interface; the
// choice is made once in the composition root, never by conditional
// branching in business code.
//
// Backend calls may be network I/O and can fail transiently. Failures other
// than ErrKeyNotFound are wrapped as errs.StorageError by the repository.
type Backend interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)

	// ListKeys returns every stored key with the given prefix, in no
	// particular order.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
