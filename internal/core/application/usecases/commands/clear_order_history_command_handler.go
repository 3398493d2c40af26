package commands

import (
	"context"
)

// ClearOrderHistoryCommandHandler purges Finalized and Cancelled orders
// together with their items and payments. Typically run after a verified
// snapshot, so history is never lost outright.
type ClearOrderHistoryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClearOrderHistoryCommandHandler creates a handler for purging order
// history.
func NewClearOrderHistoryCommandHandler(uowFactory OrderUoWFactory) ClearOrderHistoryCommandHandler {
	return ClearOrderHistoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of orders
// removed.
func (h *ClearOrderHistoryCommandHandler) Handle(ctx context.Context, cmd ClearOrderHistoryCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().DeleteTerminal(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
