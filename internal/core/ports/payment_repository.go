package ports

import (
	"context"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payments. Payments
// are immutable once recorded, so there is no update operation.
type PaymentRepository interface {
	// Add persists a new payment.
	Add(ctx context.Context, p *payment.Payment) error

	// GetByOrderID retrieves all payments recorded against an order, in
	// recording order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)
}
