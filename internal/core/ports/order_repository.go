package ports

import (
	"context"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier, items included.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders still in Draft or Open status,
	// oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// DeleteTerminal removes all Finalized and Cancelled orders together
	// with their items and payments. Returns the number of orders removed.
	DeleteTerminal(ctx context.Context) (int64, error)
}
