package commands

import (
	"context"
	"strconv"

	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/payment"
	"restopos/internal/core/domain/services"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/keymutex"
)

// FinalizeOrderCommandResult carries what the terminal shows after a
// successful finalization: the change owed to the customer, the rendered
// receipt, and whether the printer accepted it. Printed is false on a print
// failure so the terminal can offer a reprint; the finalization itself is
// already committed at that point.
type FinalizeOrderCommandResult struct {
	ChangeMinor int64
	Receipt     string
	Printed     bool
}

// FinalizeOrderCommandHandler closes an open order. Payments are reconciled
// against the order total inside the transaction; on success the receipt is
// rendered and sent to the printer. A print failure never rolls back the
// finalization.
type FinalizeOrderCommandHandler struct {
	uowFactory FinalizeUoWFactory
	orderLocks *keymutex.KeyMutex
	renderer   *services.ReceiptRenderer
	printer    ports.Printer
}

// NewFinalizeOrderCommandHandler creates a handler for order finalization.
func NewFinalizeOrderCommandHandler(
	uowFactory FinalizeUoWFactory,
	orderLocks *keymutex.KeyMutex,
	renderer *services.ReceiptRenderer,
	printer ports.Printer,
) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
		renderer:   renderer,
		printer:    printer,
	}
}

// Handle processes the finalize command. Reconciliation fails with an
// UnreconciledPaymentError when payments fall short of the total, so a
// short-paid order can never reach Finalized status.
func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) (FinalizeOrderCommandResult, error) {
	if err := cmd.Validate(); err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	unlock, err := h.orderLocks.Lock(ctx, cmd.OrderID().String())
	if err != nil {
		return FinalizeOrderCommandResult{}, err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	payments, err := uow.PaymentRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	change, err := payment.Reconcile(payments, aggregate.Total())
	if err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	if err = aggregate.Finalize(); err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	rctx, err := h.receiptContext(ctx, uow, aggregate)
	if err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	receipt, err := h.renderer.Render(aggregate, payments, rctx)
	if err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return FinalizeOrderCommandResult{}, err
	}

	// The order is already finalized and committed; a print failure is
	// reported through the result, never as an error.
	printErr := h.printer.Print(ctx, receipt)

	return FinalizeOrderCommandResult{
		ChangeMinor: change.Minor(),
		Receipt:     receipt,
		Printed:     printErr == nil,
	}, nil
}

// receiptContext resolves the names printed on the receipt: shop identity
// from settings, the table number, and the waiter name.
func (h *FinalizeOrderCommandHandler) receiptContext(ctx context.Context, uow FinalizeUoW, aggregate *order.Order) (services.ReceiptContext, error) {
	shopSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return services.ReceiptContext{}, err
	}

	catalog := uow.CatalogRepository()
	table, err := catalog.GetTable(ctx, aggregate.TableID())
	if err != nil {
		return services.ReceiptContext{}, err
	}
	waiter, err := catalog.GetWaiter(ctx, aggregate.WaiterID())
	if err != nil {
		return services.ReceiptContext{}, err
	}

	return services.ReceiptContext{
		RestaurantName: shopSettings.RestaurantName(),
		Address:        shopSettings.Address(),
		Phone:          shopSettings.Phone(),
		TableLabel:     strconv.Itoa(table.Number()),
		WaiterName:     waiter.Name(),
	}, nil
}
