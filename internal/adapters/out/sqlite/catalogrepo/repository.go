package catalogrepo

import (
	"context"
	"errors"

	"restopos/internal/core/domain/model/catalog"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetMenuItem retrieves a menu item by ID.
func (r *GormCatalogRepository) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

// GetAllMenuItems retrieves the full menu sorted by category and name.
func (r *GormCatalogRepository) GetAllMenuItems(ctx context.Context) ([]*catalog.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("category, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GetTable retrieves a table by ID.
func (r *GormCatalogRepository) GetTable(ctx context.Context, id kernel.UUID) (*catalog.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", id.String())
		}
		return nil, err
	}

	return tableToDomain(dto)
}

// GetAllTables retrieves all tables sorted by number.
func (r *GormCatalogRepository) GetAllTables(ctx context.Context) ([]*catalog.Table, error) {
	var dtos []TableDTO
	if err := r.db.WithContext(ctx).Order("number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tables := make([]*catalog.Table, 0, len(dtos))
	for _, dto := range dtos {
		table, err := tableToDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, nil
}

// GetWaiter retrieves a waiter by ID.
func (r *GormCatalogRepository) GetWaiter(ctx context.Context, id kernel.UUID) (*catalog.Waiter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WaiterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("waiter", id.String())
		}
		return nil, err
	}

	return waiterToDomain(dto)
}

// GetAllWaiters retrieves all waiters sorted by name.
func (r *GormCatalogRepository) GetAllWaiters(ctx context.Context) ([]*catalog.Waiter, error) {
	var dtos []WaiterDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	waiters := make([]*catalog.Waiter, 0, len(dtos))
	for _, dto := range dtos {
		waiter, err := waiterToDomain(dto)
		if err != nil {
			return nil, err
		}
		waiters = append(waiters, waiter)
	}

	return waiters, nil
}

// AddMenuItem persists a new menu item. Used by seeding and back-office
// administration, not by the transaction flow.
func (r *GormCatalogRepository) AddMenuItem(ctx context.Context, m *catalog.MenuItem) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(m)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddTable persists a new table.
func (r *GormCatalogRepository) AddTable(ctx context.Context, t *catalog.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := tableFromDomain(t)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddWaiter persists a new waiter.
func (r *GormCatalogRepository) AddWaiter(ctx context.Context, w *catalog.Waiter) error {
	if err := w.Validate(); err != nil {
		return err
	}

	dto := waiterFromDomain(w)
	return r.db.WithContext(ctx).Create(&dto).Error
}
