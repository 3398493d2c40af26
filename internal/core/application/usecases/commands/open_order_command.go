package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrOpenOrderCommandIsNotConstructed = errors.New(
	"OpenOrderCommand must be created via NewOpenOrderCommand constructor",
)

// OpenOrderCommand represents a request to open a Draft order without items.
type OpenOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenOrderCommand creates a command to open an order.
func NewOpenOrderCommand(orderID kernel.UUID) (OpenOrderCommand, error) {
	cmd := OpenOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return OpenOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenOrderCommand) Validate() error {
	return c.guard.Validate(ErrOpenOrderCommandIsNotConstructed)
}

// OrderID returns the order to open.
func (c OpenOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *OpenOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
