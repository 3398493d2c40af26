package queries

import (
	"errors"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/guard"
)

var ErrListBackupsQueryIsNotConstructed = errors.New(
	"ListBackupsQuery must be created via NewListBackupsQuery constructor",
)

// ListBackupsQuery retrieves all snapshot records.
type ListBackupsQuery struct {
	guard guard.ConstructorGuard
}

// NewListBackupsQuery creates a query for the snapshot list.
func NewListBackupsQuery() ListBackupsQuery {
	return ListBackupsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListBackupsQuery) Validate() error {
	return q.guard.Validate(ErrListBackupsQueryIsNotConstructed)
}

// ListBackupsQueryResponse is one snapshot record in the read model.
type ListBackupsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Filename  string
	SizeBytes int64
	Checksum  string
	CreatedAt time.Time
}
