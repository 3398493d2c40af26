package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrChangeItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeItemQuantityCommand must be created via NewChangeItemQuantityCommand constructor",
)

// ChangeItemQuantityCommand represents a request to change the quantity of
// an order line.
type ChangeItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewChangeItemQuantityCommand creates a command to change a line quantity.
// Quantity must stay at least 1; removing a line is a separate command.
func NewChangeItemQuantityCommand(orderID, itemID kernel.UUID, quantity int) (ChangeItemQuantityCommand, error) {
	cmd := ChangeItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return ChangeItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemQuantityCommandIsNotConstructed)
}

// OrderID returns the order holding the line.
func (c ChangeItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the line to change.
func (c ChangeItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new count.
func (c ChangeItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *ChangeItemQuantityCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeItemQuantityCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *ChangeItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewInvalidQuantityError(quantity)
	}
	c.quantity = quantity
	return nil
}
