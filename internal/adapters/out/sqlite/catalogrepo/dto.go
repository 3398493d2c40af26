// Package catalogrepo maps menu items, tables, and waiters to their
// relational form. The transaction flow only reads this data; writes happen
// during seeding and back-office administration.
package catalogrepo

import (
	"time"

	"restopos/internal/core/domain/model/catalog"
	"restopos/internal/core/domain/model/kernel"
)

// MenuItemDTO represents one persisted menu item.
type MenuItemDTO struct {
	ID         string `gorm:"primaryKey;size:36"`
	Name       string `gorm:"size:128"`
	Category   string `gorm:"size:64;index"`
	PriceMinor int64
	Available  bool
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// TableDTO represents one persisted dining table.
type TableDTO struct {
	ID     string `gorm:"primaryKey;size:36"`
	Number int    `gorm:"uniqueIndex"`
	Seats  int
}

// TableName overrides GORM's default naming to use "tables".
func (TableDTO) TableName() string {
	return "tables"
}

// WaiterDTO represents one persisted waiter.
type WaiterDTO struct {
	ID   string `gorm:"primaryKey;size:36"`
	Name string `gorm:"size:128"`
}

// TableName overrides GORM's default naming to use "waiters".
func (WaiterDTO) TableName() string {
	return "waiters"
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         m.ID().String(),
		Name:       m.Name(),
		Category:   m.Category(),
		PriceMinor: m.Price().Minor(),
		Available:  m.IsAvailable(),
		CreatedAt:  m.CreatedAt(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMenuItem(id, dto.Name, dto.Category, kernel.NewMoney(dto.PriceMinor), dto.Available, dto.CreatedAt)
}

func tableFromDomain(t *catalog.Table) TableDTO {
	return TableDTO{
		ID:     t.ID().String(),
		Number: t.Number(),
		Seats:  t.Seats(),
	}
}

func tableToDomain(dto TableDTO) (*catalog.Table, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreTable(id, dto.Number, dto.Seats)
}

func waiterFromDomain(w *catalog.Waiter) WaiterDTO {
	return WaiterDTO{
		ID:   w.ID().String(),
		Name: w.Name(),
	}
}

func waiterToDomain(dto WaiterDTO) (*catalog.Waiter, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreWaiter(id, dto.Name)
}
