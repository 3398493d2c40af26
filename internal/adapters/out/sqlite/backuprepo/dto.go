// Package backuprepo maps snapshot records to their relational form.
package backuprepo

import (
	"time"

	"restopos/internal/core/domain/model/backup"
	"restopos/internal/core/domain/model/kernel"
)

// RecordDTO represents one persisted snapshot record.
type RecordDTO struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:64"`
	SizeBytes int64
	Checksum  string `gorm:"size:64"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "backups".
func (RecordDTO) TableName() string {
	return "backups"
}

func fromDomain(record *backup.Record) RecordDTO {
	return RecordDTO{
		ID:        record.ID().String(),
		Name:      record.Name(),
		SizeBytes: record.SizeBytes(),
		Checksum:  record.Checksum(),
		CreatedAt: record.CreatedAt(),
	}
}

func toDomain(dto RecordDTO) (*backup.Record, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return backup.RestoreRecord(id, dto.Name, dto.SizeBytes, dto.Checksum, dto.CreatedAt)
}
