package queries

import (
	"context"
	"database/sql"
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order read model from the store.
// Uses direct SQL for read performance; totals come from the stored derived
// columns, which the write side keeps consistent with the items.
type GetOrderQueryHandler struct {
	db Database
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db Database) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError for an unknown
// order identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{ID: query.OrderID()}

	row := h.db.Gorm().WithContext(ctx).Raw(`
		SELECT
			t.number,
			w.name,
			o.status,
			o.subtotal_minor,
			o.tax_minor,
			o.total_minor,
			o.created_at,
			o.finalized_at
		FROM orders o
		JOIN tables t ON t.id = o.table_id
		JOIN waiters w ON w.id = o.waiter_id
		WHERE o.id = ?
	`, query.OrderID().String()).Row()

	var finalizedAt sql.NullTime
	err := row.Scan(
		&resp.TableNumber,
		&resp.WaiterName,
		&resp.Status,
		&resp.SubtotalMinor,
		&resp.TaxMinor,
		&resp.TotalMinor,
		&resp.CreatedAt,
		&finalizedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if finalizedAt.Valid {
		at := finalizedAt.Time
		resp.FinalizedAt = &at
	}

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Payments, err = h.loadPayments(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	for _, p := range resp.Payments {
		resp.PaidMinor += p.AmountMinor
	}
	resp.RemainingMinor = resp.TotalMinor - resp.PaidMinor
	if resp.RemainingMinor < 0 {
		resp.RemainingMinor = 0
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.Gorm().WithContext(ctx).Raw(`
		SELECT
			id,
			menu_item_id,
			name,
			unit_price_minor,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var id, menuItemID string

		if err = rows.Scan(&id, &menuItemID, &item.Name, &item.UnitPriceMinor, &item.Quantity); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromString(menuItemID); err != nil {
			return nil, err
		}
		item.LineTotalMinor = item.UnitPriceMinor * int64(item.Quantity)
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) loadPayments(ctx context.Context, orderID kernel.UUID) ([]OrderPaymentResponse, error) {
	rows, err := h.db.Gorm().WithContext(ctx).Raw(`
		SELECT
			id,
			tender,
			amount_minor,
			paid_at
		FROM payments
		WHERE order_id = ?
		ORDER BY paid_at, id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]OrderPaymentResponse, 0)
	for rows.Next() {
		var p OrderPaymentResponse
		var id string

		if err = rows.Scan(&id, &p.Tender, &p.AmountMinor, &p.PaidAt); err != nil {
			return nil, err
		}
		if p.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
