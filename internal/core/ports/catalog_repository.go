package ports

import (
	"context"

	"restopos/internal/core/domain/model/catalog"
	"restopos/internal/core/domain/model/kernel"
)

// CatalogRepository defines read access to the reference data orders are
// built from. All getters return an ObjectNotFoundError for unknown
// identifiers; commands rely on that to reject orders against missing
// tables, waiters, or menu items.
type CatalogRepository interface {
	// GetMenuItem retrieves a menu item by identifier.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// GetAllMenuItems retrieves the full menu sorted by category and name.
	GetAllMenuItems(ctx context.Context) ([]*catalog.MenuItem, error)

	// GetTable retrieves a table by identifier.
	GetTable(ctx context.Context, id kernel.UUID) (*catalog.Table, error)

	// GetAllTables retrieves all tables sorted by number.
	GetAllTables(ctx context.Context) ([]*catalog.Table, error)

	// GetWaiter retrieves a waiter by identifier.
	GetWaiter(ctx context.Context, id kernel.UUID) (*catalog.Waiter, error)

	// GetAllWaiters retrieves all waiters sorted by name.
	GetAllWaiters(ctx context.Context) ([]*catalog.Waiter, error)
}
