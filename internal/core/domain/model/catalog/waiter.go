package catalog

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrWaiterIsNotConstructed is returned when a Waiter instance was not
// created through NewWaiter or RestoreWaiter.
var ErrWaiterIsNotConstructed = errors.New("Waiter must be created via NewWaiter or RestoreWaiter")

// Waiter is a member of the floor staff who can own orders.
type Waiter struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewWaiter creates a waiter.
func NewWaiter(id kernel.UUID, name string) (*Waiter, error) {
	w := &Waiter{isConstructed: true}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWaiter reconstructs a waiter from persistence.
func RestoreWaiter(id kernel.UUID, name string) (*Waiter, error) {
	return NewWaiter(id, name)
}

// Validate ensures the Waiter was created through a constructor.
func (w *Waiter) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWaiterIsNotConstructed
	}
	return nil
}

func (w *Waiter) ID() kernel.UUID {
	return w.id
}

func (w *Waiter) Name() string {
	return w.name
}

func (w *Waiter) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Waiter) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("waiter name")
	}
	w.name = name
	return nil
}
