package queries

import (
	"context"
	"fmt"

	"restopos/internal/core/domain/model/kernel"
)

// ListBackupsQueryHandler retrieves all snapshot records from the database.
type ListBackupsQueryHandler struct {
	db Database
}

// NewListBackupsQueryHandler creates a handler for snapshot list queries.
func NewListBackupsQueryHandler(db Database) ListBackupsQueryHandler {
	return ListBackupsQueryHandler{db: db}
}

// Handle executes the query, newest snapshots first.
func (h ListBackupsQueryHandler) Handle(ctx context.Context, query ListBackupsQuery) ([]ListBackupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.Gorm().WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			size_bytes,
			checksum,
			created_at
		FROM backups
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]ListBackupsQueryResponse, 0)
	for rows.Next() {
		var resp ListBackupsQueryResponse
		var id string

		if err = rows.Scan(&id, &resp.Name, &resp.SizeBytes, &resp.Checksum, &resp.CreatedAt); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		resp.Filename = fmt.Sprintf("%s_%s.db", resp.Name, resp.CreatedAt.UTC().Format("20060102_150405"))
		records = append(records, resp)
	}

	return records, rows.Err()
}
