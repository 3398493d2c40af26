package commands

import (
	"context"
	"errors"

	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/keymutex"
)

// AddOrderItemCommandHandler adds a menu snapshot line to an order.
// Mutations of the same order are serialized through a per-order lock, so
// two terminals adding items concurrently can never lose an update.
type AddOrderItemCommandHandler struct {
	uowFactory OrderingUoWFactory
	orderLocks *keymutex.KeyMutex
}

// NewAddOrderItemCommandHandler creates a handler for adding order lines.
func NewAddOrderItemCommandHandler(uowFactory OrderingUoWFactory, orderLocks *keymutex.KeyMutex) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
	}
}

// Handle processes the add-item command. The menu item must exist and be
// available; its name and price are snapshotted onto the line. Adding the
// first item promotes a Draft order to Open.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	menuItem, err := uow.CatalogRepository().GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewInvalidReferenceError("menuItem", cmd.MenuItemID().String())
		}
		return err
	}
	if !menuItem.IsAvailable() {
		return errs.NewInvalidReferenceError("menuItem", menuItem.ID().String())
	}

	item, err := order.NewItem(cmd.ItemID(), menuItem.ID(), menuItem.Name(), menuItem.Price(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
