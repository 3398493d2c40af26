package commands

import (
	"context"

	"restopos/internal/pkg/keymutex"
)

// RemoveOrderItemCommandHandler removes a line from an order and recomputes
// its totals. Removing the last line leaves the order Open with a zero
// total.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	orderLocks *keymutex.KeyMutex
}

// NewRemoveOrderItemCommandHandler creates a handler for removing order
// lines.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory, orderLocks *keymutex.KeyMutex) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
	}
}

// Handle processes the remove-item command.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock, err := h.orderLocks.Lock(ctx, cmd.OrderID().String())
	if err != nil {
		return err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
