// Package gate implements the store barrier protecting the persistent store
// file. Three access levels exist:
//
//   - writer: a short-lived mutating transaction; many may run at once
//   - snapshot: blocks all writers but shares the store with readers while
//     the store file is copied
//   - restore: exclusive; blocks writers, readers, and other backup
//     operations while the store file is swapped
//
// Acquisition is bounded: a holder that does not release in time causes
// waiters to fail with errs.BusyError instead of deadlocking.
package gate

import (
	"context"
	"time"

	"restopos/internal/pkg/errs"

	"golang.org/x/sync/semaphore"
)

// slots bounds the number of concurrent transactions. Draining a semaphore
// (acquiring all slots) is what turns it into a barrier.
const slots = 64

// DefaultTimeout is used when New is given a non-positive timeout.
const DefaultTimeout = 5 * time.Second

// StoreGate is the barrier construct. Two weighted semaphores are always
// acquired in the same order (write barrier, then tx gate) so mixed-level
// entries cannot deadlock.
type StoreGate struct {
	write   *semaphore.Weighted
	tx      *semaphore.Weighted
	timeout time.Duration
}

// New creates a gate whose acquisitions give up after timeout.
func New(timeout time.Duration) *StoreGate {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &StoreGate{
		write:   semaphore.NewWeighted(slots),
		tx:      semaphore.NewWeighted(slots),
		timeout: timeout,
	}
}

// EnterReader admits a read-only transaction. Readers share the store with
// writers and snapshots but are held out during a restore.
func (g *StoreGate) EnterReader(ctx context.Context) (func(), error) {
	if err := g.acquire(ctx, g.tx, 1); err != nil {
		return nil, err
	}
	return func() { g.tx.Release(1) }, nil
}

// EnterWriter admits one mutating transaction. It is held out while a
// snapshot or restore holds the write barrier.
func (g *StoreGate) EnterWriter(ctx context.Context) (func(), error) {
	if err := g.acquire(ctx, g.write, 1); err != nil {
		return nil, err
	}
	if err := g.acquire(ctx, g.tx, 1); err != nil {
		g.write.Release(1)
		return nil, err
	}
	return func() {
		g.tx.Release(1)
		g.write.Release(1)
	}, nil
}

// EnterSnapshot drains the write barrier so no mutating transaction runs
// while the store file is copied. Readers are unaffected.
func (g *StoreGate) EnterSnapshot(ctx context.Context) (func(), error) {
	if err := g.acquire(ctx, g.write, slots); err != nil {
		return nil, err
	}
	if err := g.acquire(ctx, g.tx, 1); err != nil {
		g.write.Release(slots)
		return nil, err
	}
	return func() {
		g.tx.Release(1)
		g.write.Release(slots)
	}, nil
}

// EnterRestore drains both semaphores, excluding every other store user,
// including snapshots. Once acquired, a restore runs to completion; callers
// must not tie the swap itself to a cancellable context.
func (g *StoreGate) EnterRestore(ctx context.Context) (func(), error) {
	if err := g.acquire(ctx, g.write, slots); err != nil {
		return nil, err
	}
	if err := g.acquire(ctx, g.tx, slots); err != nil {
		g.write.Release(slots)
		return nil, err
	}
	return func() {
		g.tx.Release(slots)
		g.write.Release(slots)
	}, nil
}

// acquire takes n slots of sem within the gate timeout. A caller-cancelled
// context propagates as-is; an expired gate deadline surfaces as BusyError.
func (g *StoreGate) acquire(ctx context.Context, sem *semaphore.Weighted, n int64) error {
	waitCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := sem.Acquire(waitCtx, n); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errs.NewBusyError("store barrier")
	}
	return nil
}
