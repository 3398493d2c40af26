// Package catalog holds the reference data orders are built from: menu
// items, tables, and waiters. These entities change through back-office
// administration, never as part of the transaction flow; orders snapshot the
// values they need at add-time.
package catalog

import (
	"errors"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a sellable product with its current price and availability.
type MenuItem struct {
	id        kernel.UUID
	name      string
	category  string
	price     kernel.Money
	available bool
	createdAt time.Time

	isConstructed bool
}

// NewMenuItem creates an available menu item.
func NewMenuItem(id kernel.UUID, name, category string, price kernel.Money) (*MenuItem, error) {
	m := &MenuItem{
		available:     true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setCategory(category),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenuItem reconstructs a menu item from persistence.
func RestoreMenuItem(id kernel.UUID, name, category string, price kernel.Money, available bool, createdAt time.Time) (*MenuItem, error) {
	m, err := NewMenuItem(id, name, category, price)
	if err != nil {
		return nil, err
	}
	m.available = available
	m.createdAt = createdAt
	return m, nil
}

// Validate ensures the MenuItem was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Category() string {
	return m.category
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// IsAvailable reports whether the item can currently be added to orders.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

func (m *MenuItem) CreatedAt() time.Time {
	return m.createdAt
}

// SetAvailability toggles whether the item may be ordered.
func (m *MenuItem) SetAvailability(available bool) {
	m.available = available
}

// ChangePrice updates the current price. Existing order lines keep the
// price they snapshotted.
func (m *MenuItem) ChangePrice(price kernel.Money) error {
	return m.setPrice(price)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("menu item category")
	}
	m.category = category
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.ValidateNonNegative("menu item price"); err != nil {
		return err
	}
	m.price = price
	return nil
}
