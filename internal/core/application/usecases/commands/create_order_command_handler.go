package commands

import (
	"context"
	"errors"

	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in Draft status and capture the tax rate in force at
// creation time.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The table and waiter
// references are resolved against the catalog inside the same transaction,
// so an order can never be created against reference data deleted
// concurrently.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.CatalogRepository()
	if _, err := catalog.GetTable(ctx, cmd.TableID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewInvalidReferenceError("table", cmd.TableID().String())
		}
		return err
	}
	if _, err := catalog.GetWaiter(ctx, cmd.WaiterID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewInvalidReferenceError("waiter", cmd.WaiterID().String())
		}
		return err
	}

	shopSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.TableID(), cmd.WaiterID(), shopSettings.TaxRateBp())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
