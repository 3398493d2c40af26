package queries

import (
	"context"

	"restopos/internal/core/domain/model/kernel"
)

// GetMenuQueryHandler retrieves the menu from the database.
type GetMenuQueryHandler struct {
	db Database
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db Database) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query, sorted by category then name.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			category,
			price_minor,
			available
		FROM menu_items
	`
	if !query.IncludeUnavailable() {
		sql += " WHERE available"
	}
	sql += " ORDER BY category, name"

	rows, err := h.db.Gorm().WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := make([]GetMenuQueryResponse, 0)
	for rows.Next() {
		var resp GetMenuQueryResponse
		var id string

		if err = rows.Scan(&id, &resp.Name, &resp.Category, &resp.PriceMinor, &resp.Available); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		menu = append(menu, resp)
	}

	return menu, rows.Err()
}
