package http

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/application/usecases/queries"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createSnapshotRequest struct {
	Name string `json:"name"`
}

type backupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSnapshot handles POST /api/v1/backups. Only admins may take
// snapshots.
func (s *Server) CreateSnapshot(c echo.Context) error {
	if !currentSession(c).IsAdmin() {
		return s.writeError(c, adminRequired())
	}

	var req createSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewCreateSnapshotCommand(kernel.NewUUID(), req.Name)
	if err != nil {
		return s.writeError(c, err)
	}

	record, err := s.deps.CreateSnapshot.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, backupResponse{
		ID:        record.ID().String(),
		Name:      record.Name(),
		Filename:  record.Filename(),
		SizeBytes: record.SizeBytes(),
		Checksum:  record.Checksum(),
		CreatedAt: record.CreatedAt(),
	})
}

// ListBackups handles GET /api/v1/backups.
func (s *Server) ListBackups(c echo.Context) error {
	query := queries.NewListBackupsQuery()

	return s.readQuery(c, func() error {
		results, err := s.deps.ListBackups.Handle(c.Request().Context(), query)
		if err != nil {
			return s.writeError(c, err)
		}

		response := make([]backupResponse, len(results))
		for i, result := range results {
			response[i] = backupResponse{
				ID:        result.ID.String(),
				Name:      result.Name,
				Filename:  result.Filename,
				SizeBytes: result.SizeBytes,
				Checksum:  result.Checksum,
				CreatedAt: result.CreatedAt,
			}
		}
		return c.JSON(http.StatusOK, response)
	})
}

// UploadSnapshot handles POST /api/v1/backups/upload. The multipart file is
// staged into the backup directory, size-capped, validated, and registered
// as a restorable snapshot. Only admins may upload.
func (s *Server) UploadSnapshot(c echo.Context) error {
	if !currentSession(c).IsAdmin() {
		return s.writeError(c, adminRequired())
	}

	name := c.FormValue("name")
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "missing snapshot file"})
	}

	if s.deps.MaxUploadBytes > 0 && file.Size > s.deps.MaxUploadBytes {
		return s.writeError(c, errs.NewPayloadTooLargeError(file.Size, s.deps.MaxUploadBytes))
	}

	recordID := kernel.NewUUID()
	cmd, err := commands.NewImportSnapshotCommand(recordID, name, s.stagingPath(recordID))
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.stageUpload(file, cmd.SourcePath()); err != nil {
		return s.writeError(c, err)
	}

	record, err := s.deps.ImportSnapshot.Handle(c.Request().Context(), cmd)
	if err != nil {
		_ = os.Remove(cmd.SourcePath())
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, backupResponse{
		ID:        record.ID().String(),
		Name:      record.Name(),
		Filename:  record.Filename(),
		SizeBytes: record.SizeBytes(),
		Checksum:  record.Checksum(),
		CreatedAt: record.CreatedAt(),
	})
}

// stagingPath keeps uploads inside the backup directory so the final move is
// a same-filesystem rename.
func (s *Server) stagingPath(recordID kernel.UUID) string {
	return filepath.Join(s.deps.BackupDir, recordID.String()+".upload")
}

func (s *Server) stageUpload(file *multipart.FileHeader, dst string) error {
	if err := os.MkdirAll(s.deps.BackupDir, 0o755); err != nil {
		return errs.NewBackupIOError("create backup directory", err)
	}

	src, err := file.Open()
	if err != nil {
		return errs.NewBackupIOError("open uploaded snapshot", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errs.NewBackupIOError("stage uploaded snapshot", err)
	}

	if _, err = io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return errs.NewBackupIOError("write uploaded snapshot", err)
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(dst)
		return errs.NewBackupIOError("close uploaded snapshot", err)
	}
	return nil
}

// DownloadSnapshot handles GET /api/v1/backups/:backupID/download.
func (s *Server) DownloadSnapshot(c echo.Context) error {
	recordID, err := pathUUID(c, "backupID")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetBackupQuery(recordID)
	if err != nil {
		return s.writeError(c, err)
	}

	var result queries.GetBackupQueryResponse
	err = s.readQuery(c, func() error {
		var handleErr error
		result, handleErr = s.deps.GetBackup.Handle(c.Request().Context(), query)
		if handleErr != nil {
			return s.writeError(c, handleErr)
		}
		return nil
	})
	if err != nil || result.Filename == "" {
		return err
	}

	return c.Attachment(filepath.Join(s.deps.BackupDir, result.Filename), result.Filename)
}

// RestoreBackup handles POST /api/v1/backups/:backupID/restore. The admin
// check also happens in the command handler; checking here just fails fast.
func (s *Server) RestoreBackup(c echo.Context) error {
	recordID, err := pathUUID(c, "backupID")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRestoreBackupCommand(recordID, currentSession(c))
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deps.RestoreBackup.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func adminRequired() error {
	return errs.NewAuthenticationError("administrator role required")
}
