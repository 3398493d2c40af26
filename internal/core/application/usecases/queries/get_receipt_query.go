package queries

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrGetReceiptQueryIsNotConstructed = errors.New(
	"GetReceiptQuery must be created via NewGetReceiptQuery constructor",
)

// GetReceiptQuery re-renders the receipt of a finalized order. Because the
// renderer is deterministic, the result is byte-identical to the ticket
// printed at finalization.
type GetReceiptQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReceiptQuery creates a receipt query.
func NewGetReceiptQuery(orderID kernel.UUID) (GetReceiptQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetReceiptQuery{}, err
	}
	return GetReceiptQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

// OrderID returns the finalized order to render.
func (q GetReceiptQuery) OrderID() kernel.UUID {
	return q.orderID
}
