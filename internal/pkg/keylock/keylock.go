// Package keylock provides per-key mutual exclusion. Status transitions and
// reconciliation are read-modify-write sequences that must be serialized per
// order id; distinct ids stay independent, so no global lock is taken.
package keylock

import "sync"

// KeyedMutex hands out one mutex per key on demand. Mutexes are kept for the
// lifetime of the registry; the key space here is order ids, which is bounded
// by retention, so entries are released together with the order.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedMutex creates an empty registry.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *KeyedMutex) Lock(key string) {
	k.mutexFor(key).Lock()
}

// Unlock releases the mutex for key. Unlock of a never-locked key panics,
// same as sync.Mutex.
func (k *KeyedMutex) Unlock(key string) {
	k.mutexFor(key).Unlock()
}

// Forget drops the mutex for key. Call only after the owning record has been
// removed and no goroutine can still hold the lock.
func (k *KeyedMutex) Forget(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.locks, key)
}

func (k *KeyedMutex) mutexFor(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
