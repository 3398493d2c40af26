package queries

import (
	"errors"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrGetBackupQueryIsNotConstructed = errors.New(
	"GetBackupQuery must be created via NewGetBackupQuery constructor",
)

// GetBackupQuery retrieves one snapshot record, resolving its on-disk
// filename for download.
type GetBackupQuery struct {
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBackupQuery creates a query for a single snapshot record.
func NewGetBackupQuery(recordID kernel.UUID) (GetBackupQuery, error) {
	if err := recordID.Validate(); err != nil {
		return GetBackupQuery{}, err
	}
	return GetBackupQuery{
		recordID: recordID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBackupQuery) Validate() error {
	return q.guard.Validate(ErrGetBackupQueryIsNotConstructed)
}

// RecordID returns the snapshot record to fetch.
func (q GetBackupQuery) RecordID() kernel.UUID {
	return q.recordID
}

// GetBackupQueryResponse is the single snapshot record read model.
type GetBackupQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Filename  string
	SizeBytes int64
	Checksum  string
	CreatedAt time.Time
}
