package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add a menu item to an order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	itemID     kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add a line to an order.
// Quantity must be at least 1.
func NewAddOrderItemCommand(orderID, itemID, menuItemID kernel.UUID, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the order to add the line to.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier for the new line.
func (c AddOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// MenuItemID returns the menu item to snapshot.
func (c AddOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the ordered count.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AddOrderItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *AddOrderItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewInvalidQuantityError(quantity)
	}
	c.quantity = quantity
	return nil
}
