package queries

import (
	"context"

	"restopos/internal/core/domain/model/kernel"
)

// GetActiveOrdersQueryHandler retrieves all Draft and Open orders.
type GetActiveOrdersQueryHandler struct {
	db Database
}

// NewGetActiveOrdersQueryHandler creates a handler for active order
// queries.
func NewGetActiveOrdersQueryHandler(db Database) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered oldest first so long-open
// orders surface at the top.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.Gorm().WithContext(ctx).Raw(`
		SELECT
			o.id,
			t.number,
			w.name,
			o.status,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
			o.total_minor,
			o.created_at
		FROM orders o
		JOIN tables t ON t.id = o.table_id
		JOIN waiters w ON w.id = o.waiter_id
		WHERE o.status IN ('Draft', 'Open')
		ORDER BY o.created_at, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id string

		err = rows.Scan(
			&id,
			&resp.TableNumber,
			&resp.WaiterName,
			&resp.Status,
			&resp.ItemCount,
			&resp.TotalMinor,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	return orders, rows.Err()
}
