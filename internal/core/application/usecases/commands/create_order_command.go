package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new draft order for a
// table, owned by a waiter.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tableID  kernel.UUID
	waiterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order. All three
// identifiers must be valid UUIDs; existence of the table and waiter is
// checked by the handler against the catalog.
func NewCreateOrderCommand(orderID, tableID, waiterID kernel.UUID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTableID(tableID),
		cmd.setWaiterID(waiterID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableID returns the table the order is served at.
func (c CreateOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

// WaiterID returns the waiter who owns the order.
func (c CreateOrderCommand) WaiterID() kernel.UUID {
	return c.waiterID
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tableID = id
	return nil
}

func (c *CreateOrderCommand) setWaiterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.waiterID = id
	return nil
}
