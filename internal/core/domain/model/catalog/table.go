package catalog

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

// Table is a physical table in the dining room, identified to guests by its
// number.
type Table struct {
	id     kernel.UUID
	number int
	seats  int

	isConstructed bool
}

// NewTable creates a table. Number and seat count must be positive.
func NewTable(id kernel.UUID, number, seats int) (*Table, error) {
	t := &Table{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setSeats(seats),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(id kernel.UUID, number, seats int) (*Table, error) {
	return NewTable(id, number, seats)
}

// Validate ensures the Table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

func (t *Table) ID() kernel.UUID {
	return t.id
}

func (t *Table) Number() int {
	return t.number
}

func (t *Table) Seats() int {
	return t.seats
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsInvalidError("table number")
	}
	t.number = number
	return nil
}

func (t *Table) setSeats(seats int) error {
	if seats < 1 {
		return errs.NewValueIsInvalidError("table seats")
	}
	t.seats = seats
	return nil
}
