package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// GetBackupQueryHandler retrieves one snapshot record from the database.
type GetBackupQueryHandler struct {
	db Database
}

// NewGetBackupQueryHandler creates a handler for single snapshot queries.
func NewGetBackupQueryHandler(db Database) GetBackupQueryHandler {
	return GetBackupQueryHandler{db: db}
}

// Handle executes the query.
func (h GetBackupQueryHandler) Handle(ctx context.Context, query GetBackupQuery) (GetBackupQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBackupQueryResponse{}, err
	}

	row := h.db.Gorm().WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			size_bytes,
			checksum,
			created_at
		FROM backups
		WHERE id = ?
	`, query.RecordID().String()).Row()

	var resp GetBackupQueryResponse
	var id string

	err := row.Scan(&id, &resp.Name, &resp.SizeBytes, &resp.Checksum, &resp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetBackupQueryResponse{}, errs.NewObjectNotFoundError("backup", query.RecordID().String())
		}
		return GetBackupQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromString(id); err != nil {
		return GetBackupQueryResponse{}, err
	}
	resp.Filename = fmt.Sprintf("%s_%s.db", resp.Name, resp.CreatedAt.UTC().Format("20060102_150405"))

	return resp, nil
}
