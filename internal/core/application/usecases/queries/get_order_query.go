// Package queries contains read operations for retrieving system state.
// Queries bypass the domain model and read optimized models straight from
// the store; no query ever mutates anything.
package queries

import (
	"errors"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines, payments, and derived
// amounts.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	TableNumber    int
	WaiterName     string
	Status         string
	Items          []OrderItemResponse
	Payments       []OrderPaymentResponse
	SubtotalMinor  int64
	TaxMinor       int64
	TotalMinor     int64
	PaidMinor      int64
	RemainingMinor int64
	CreatedAt      time.Time
	FinalizedAt    *time.Time
}

// OrderItemResponse is one order line in the read model.
type OrderItemResponse struct {
	ID             kernel.UUID
	MenuItemID     kernel.UUID
	Name           string
	UnitPriceMinor int64
	Quantity       int
	LineTotalMinor int64
}

// OrderPaymentResponse is one tender in the read model.
type OrderPaymentResponse struct {
	ID          kernel.UUID
	Tender      string
	AmountMinor int64
	PaidAt      time.Time
}
