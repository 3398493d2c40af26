package ports

import (
	"context"

	"restopos/internal/core/domain/model/backup"
	"restopos/internal/core/domain/model/kernel"
)

// BackupRepository defines the persistence contract for snapshot records.
// Records are metadata only; the snapshot files themselves live in the
// backup directory managed by the store file adapter.
type BackupRepository interface {
	// Add persists a new snapshot record.
	Add(ctx context.Context, record *backup.Record) error

	// Get retrieves a snapshot record by identifier.
	// Returns an ObjectNotFoundError when no such record exists.
	Get(ctx context.Context, id kernel.UUID) (*backup.Record, error)

	// GetAll retrieves all snapshot records, newest first.
	GetAll(ctx context.Context) ([]*backup.Record, error)
}
