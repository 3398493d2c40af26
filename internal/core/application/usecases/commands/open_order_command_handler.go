package commands

import (
	"context"

	"restopos/internal/pkg/keymutex"
)

// OpenOrderCommandHandler opens a Draft order before any item is added.
// Adding the first item opens a Draft order implicitly, so this handler
// exists for the empty-open path only, such as seating a table ahead of
// the first round.
type OpenOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	orderLocks *keymutex.KeyMutex
}

// NewOpenOrderCommandHandler creates a handler for the explicit empty open.
func NewOpenOrderCommandHandler(uowFactory OrderUoWFactory, orderLocks *keymutex.KeyMutex) OpenOrderCommandHandler {
	return OpenOrderCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
	}
}

// Handle processes the open command.
func (h *OpenOrderCommandHandler) Handle(ctx context.Context, cmd OpenOrderCommand) error {
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

	if err = aggregate.Open(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
