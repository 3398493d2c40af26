package order

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is an order line holding a snapshot of the menu item it was created
// from. Name and unit price are captured at add-time, so later menu price
// changes never retroactively alter historical orders. An Item belongs to
// exactly one Order and cannot outlive it.
type Item struct {
	// id is the unique identifier of the line within the order
	id kernel.UUID

	// menuItemID references the menu item the snapshot was taken from
	menuItemID kernel.UUID

	// name is the menu item name at add-time
	name string

	// unitPrice is the menu item price at add-time, minor units
	unitPrice kernel.Money

	// quantity is the ordered count, always >= 1
	quantity int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates an order line from a menu snapshot. Quantity must be at
// least 1 and the snapshot must carry a name and a non-negative price.
func NewItem(id, menuItemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistence. It applies the
// same validation as NewItem.
func RestoreItem(id, menuItemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (*Item, error) {
	return NewItem(id, menuItemID, name, unitPrice, quantity)
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the identifier of the snapshotted menu item.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name captured at add-time.
func (i *Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price captured at add-time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered count.
func (i *Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price multiplied by quantity.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.ValidateNonNegative("unit price"); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewInvalidQuantityError(quantity)
	}
	i.quantity = quantity
	return nil
}
