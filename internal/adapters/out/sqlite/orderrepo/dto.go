// Package orderrepo maps order aggregates to their relational form. Derived
// totals are persisted alongside the rows for cheap list reads, but the
// domain recomputes them from the items on every rehydration, so they can
// never drift from the lines.
package orderrepo

import (
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates.
type OrderDTO struct {
	ID            string `gorm:"primaryKey;size:36"`
	TableID       string `gorm:"size:36;index"`
	WaiterID      string `gorm:"size:36;index"`
	Status        string `gorm:"size:16;index"`
	TaxRateBp     int64
	SubtotalMinor int64
	TaxMinor      int64
	TotalMinor    int64
	CreatedAt     time.Time
	OpenedAt      *time.Time
	FinalizedAt   *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. Position keeps the
// insertion order stable across rehydrations.
type OrderItemDTO struct {
	ID             string `gorm:"primaryKey;size:36"`
	OrderID        string `gorm:"size:36;index"`
	MenuItemID     string `gorm:"size:36"`
	Name           string
	UnitPriceMinor int64
	Quantity       int
	Position       int
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	dto := OrderDTO{
		ID:            aggregate.ID().String(),
		TableID:       aggregate.TableID().String(),
		WaiterID:      aggregate.WaiterID().String(),
		Status:        aggregate.Status().String(),
		TaxRateBp:     aggregate.TaxRateBp(),
		SubtotalMinor: aggregate.Subtotal().Minor(),
		TaxMinor:      aggregate.TaxAmount().Minor(),
		TotalMinor:    aggregate.Total().Minor(),
		CreatedAt:     aggregate.CreatedAt(),
		OpenedAt:      aggregate.OpenedAt(),
		FinalizedAt:   aggregate.FinalizedAt(),
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for idx, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:             item.ID().String(),
			OrderID:        dto.ID,
			MenuItemID:     item.MenuItemID().String(),
			Name:           item.Name(),
			UnitPriceMinor: item.UnitPrice().Minor(),
			Quantity:       item.Quantity(),
			Position:       idx,
		})
	}

	return dto, items
}

func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	tableID, err := kernel.UUIDFromString(dto.TableID)
	if err != nil {
		return nil, err
	}
	waiterID, err := kernel.UUIDFromString(dto.WaiterID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, tableID, waiterID,
		items, status, dto.TaxRateBp,
		dto.CreatedAt, dto.OpenedAt, dto.FinalizedAt,
	)
}

func toDomainItem(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromString(dto.MenuItemID)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, menuItemID, dto.Name, kernel.NewMoney(dto.UnitPriceMinor), dto.Quantity)
}
