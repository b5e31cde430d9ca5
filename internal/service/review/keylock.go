package review

import (
	"sync"

	"github.com/google/uuid"
)

// keyLock serializes work per word id. Entries are reference counted and
// removed when the last holder unlocks, so the map only holds ids that are
// in use.
type keyLock struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyLockEntry
}

type keyLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[uuid.UUID]*keyLockEntry)}
}

// Lock blocks until id is free and returns the matching unlock func.
func (k *keyLock) Lock(id uuid.UUID) (unlock func()) {
	k.mu.Lock()
	e, ok := k.locks[id]
	if !ok {
		e = &keyLockEntry{}
		k.locks[id] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

func (k *keyLock) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
