package queries

import (
	"context"
	"strconv"

	"restopos/internal/core/domain/services"
	"restopos/internal/core/ports"
)

// GetReceiptQueryHandler re-renders a receipt. Unlike the raw SQL queries
// it goes through the domain repositories, because rendering needs the full
// order aggregate and reconciled payments, not a flattened read model.
type GetReceiptQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	renderer   *services.ReceiptRenderer
}

// NewGetReceiptQueryHandler creates a handler for receipt queries.
func NewGetReceiptQueryHandler(uowFactory ports.UnitOfWorkFactory, renderer *services.ReceiptRenderer) GetReceiptQueryHandler {
	return GetReceiptQueryHandler{
		uowFactory: uowFactory,
		renderer:   renderer,
	}
}

// Handle executes the query. Fails with an InvalidStateError when the order
// is not finalized.
func (h GetReceiptQueryHandler) Handle(ctx context.Context, query GetReceiptQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return "", err
	}
	payments, err := uow.PaymentRepository().GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return "", err
	}

	shopSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return "", err
	}
	table, err := uow.CatalogRepository().GetTable(ctx, aggregate.TableID())
	if err != nil {
		return "", err
	}
	waiter, err := uow.CatalogRepository().GetWaiter(ctx, aggregate.WaiterID())
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return h.renderer.Render(aggregate, payments, services.ReceiptContext{
		RestaurantName: shopSettings.RestaurantName(),
		Address:        shopSettings.Address(),
		Phone:          shopSettings.Phone(),
		TableLabel:     strconv.Itoa(table.Number()),
		WaiterName:     waiter.Name(),
	})
}
