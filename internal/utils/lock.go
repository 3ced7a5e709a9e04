package utils

import (
	"sync"
)

// ResourceLocker serializes mutations per resource id so a read-modify-write
// never records a stale "old" value in its audit diff.
type ResourceLocker struct {
	mu    sync.Mutex
	locks map[string]*resourceLock
}

type resourceLock struct {
	mu   sync.Mutex
	refs int
}

func NewResourceLocker() *ResourceLocker {
	return &ResourceLocker{locks: make(map[string]*resourceLock)}
}

// Lock acquires the mutex for id and returns its unlock function. Entries
// are reference-counted and removed once the last holder unlocks, so the
// map does not grow with every id ever touched.
func (l *ResourceLocker) Lock(id string) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &resourceLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
