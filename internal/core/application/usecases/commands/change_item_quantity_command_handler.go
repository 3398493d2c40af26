package commands

import (
	"context"

	"restopos/internal/pkg/keymutex"
)

// ChangeItemQuantityCommandHandler updates a line quantity and recomputes
// the order totals.
type ChangeItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
	orderLocks *keymutex.KeyMutex
}

// NewChangeItemQuantityCommandHandler creates a handler for quantity
// changes.
func NewChangeItemQuantityCommandHandler(uowFactory OrderUoWFactory, orderLocks *keymutex.KeyMutex) ChangeItemQuantityCommandHandler {
	return ChangeItemQuantityCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
	}
}

// Handle processes the quantity change command.
func (h *ChangeItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeItemQuantityCommand) error {
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

	if err = aggregate.ChangeItemQuantity(cmd.ItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
