package orderrepo

import (
	"context"
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Lines are replaced wholesale; the
// aggregate is the source of truth for which lines exist and in what order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, lines included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// GetAllActive retrieves all Draft and Open orders, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{order.Draft.String(), order.Open.String()}).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		items, itemsErr := r.loadItems(ctx, dto.ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		o, domainErr := toDomain(dto, items)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// DeleteTerminal removes all Finalized and Cancelled orders with their
// lines and payments.
func (r *GormOrderRepository) DeleteTerminal(ctx context.Context) (int64, error) {
	terminal := []string{order.Finalized.String(), order.Cancelled.String()}

	err := r.db.WithContext(ctx).Exec(
		"DELETE FROM payments WHERE order_id IN (SELECT id FROM orders WHERE status IN ?)", terminal,
	).Error
	if err != nil {
		return 0, err
	}

	err = r.db.WithContext(ctx).Exec(
		"DELETE FROM order_items WHERE order_id IN (SELECT id FROM orders WHERE status IN ?)", terminal,
	).Error
	if err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Where("status IN ?", terminal).Delete(&OrderDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormOrderRepository) loadItems(ctx context.Context, orderID string) ([]OrderItemDTO, error) {
	var items []OrderItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("position").
		Find(&items).Error
	return items, err
}
