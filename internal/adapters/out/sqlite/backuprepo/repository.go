package backuprepo

import (
	"context"
	"errors"

	"restopos/internal/core/domain/model/backup"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBackupRepository implements BackupRepository using GORM.
type GormBackupRepository struct {
	db *gorm.DB
}

// NewGormBackupRepository creates a new GORM backup record repository.
func NewGormBackupRepository(db *gorm.DB) *GormBackupRepository {
	return &GormBackupRepository{db: db}
}

// Add saves a new snapshot record to the database.
func (r *GormBackupRepository) Add(ctx context.Context, record *backup.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a snapshot record by ID.
func (r *GormBackupRepository) Get(ctx context.Context, id kernel.UUID) (*backup.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("backup", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all snapshot records, newest first.
func (r *GormBackupRepository) GetAll(ctx context.Context) ([]*backup.Record, error) {
	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*backup.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
