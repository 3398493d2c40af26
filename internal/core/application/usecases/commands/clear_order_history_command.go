package commands

import (
	"errors"

	"restopos/internal/pkg/guard"
)

var ErrClearOrderHistoryCommandIsNotConstructed = errors.New(
	"ClearOrderHistoryCommand must be created via NewClearOrderHistoryCommand constructor",
)

// ClearOrderHistoryCommand represents a request to purge all Finalized and
// Cancelled orders. Active orders are never touched.
type ClearOrderHistoryCommand struct {
	guard guard.ConstructorGuard
}

// NewClearOrderHistoryCommand creates a command to purge terminal orders.
func NewClearOrderHistoryCommand() ClearOrderHistoryCommand {
	return ClearOrderHistoryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ClearOrderHistoryCommand) Validate() error {
	return c.guard.Validate(ErrClearOrderHistoryCommandIsNotConstructed)
}
