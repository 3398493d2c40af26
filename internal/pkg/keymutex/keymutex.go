// Package keymutex provides mutual exclusion scoped to a string key. The POS
// core uses it to serialize mutating operations per order identifier: two
// concurrent mutations of the same order never interleave, while operations
// on different orders proceed in parallel.
package keymutex

import (
	"context"
	"sync"
)

// KeyMutex is a set of lazily created mutexes indexed by key. Lock entries
// are reference counted and removed once the last holder or waiter releases
// them, so the map does not grow with the number of keys ever seen.
//
// The zero value is not usable; create instances with New.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{} // capacity 1, holds a token while locked
	refs int
}

// New creates an empty KeyMutex.
func New() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*entry)}
}

// Lock acquires the mutex for key, blocking until it is available or ctx is
// done. On success the caller must invoke the returned release function
// exactly once.
func (km *KeyMutex) Lock(ctx context.Context, key string) (func(), error) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		km.locks[key] = e
	}
	e.refs++
	km.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
		return func() {
			<-e.ch
			km.put(key, e)
		}, nil
	case <-ctx.Done():
		km.put(key, e)
		return nil, ctx.Err()
	}
}

func (km *KeyMutex) put(key string, e *entry) {
	km.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(km.locks, key)
	}
	km.mu.Unlock()
}
