package commands

import (
	"context"
	"os"
	"path/filepath"

	"restopos/internal/core/domain/model/backup"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
)

// ImportSnapshotCommandHandler registers an uploaded snapshot file as a
// restorable backup. The candidate is validated and size-capped before it is
// accepted; only then does it move into the backup directory and gain a
// metadata row. No store barrier is needed, the live store is never touched.
//
// The staged file must live on the same filesystem as the backup directory
// so the final move is a rename.
type ImportSnapshotCommandHandler struct {
	uowFactory BackupUoWFactory
	storeFile  ports.StoreFile
	backupDir  string
	maxBytes   int64
}

// NewImportSnapshotCommandHandler creates a handler for importing uploaded
// snapshots. Files larger than maxBytes are rejected.
func NewImportSnapshotCommandHandler(
	uowFactory BackupUoWFactory,
	storeFile ports.StoreFile,
	backupDir string,
	maxBytes int64,
) ImportSnapshotCommandHandler {
	return ImportSnapshotCommandHandler{
		uowFactory: uowFactory,
		storeFile:  storeFile,
		backupDir:  backupDir,
		maxBytes:   maxBytes,
	}
}

// Handle processes the import command and returns the created record.
func (h *ImportSnapshotCommandHandler) Handle(ctx context.Context, cmd ImportSnapshotCommand) (*backup.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(cmd.SourcePath())
	if err != nil {
		return nil, errs.NewBackupIOError("stat uploaded snapshot", err)
	}
	if h.maxBytes > 0 && info.Size() > h.maxBytes {
		return nil, errs.NewPayloadTooLargeError(info.Size(), h.maxBytes)
	}

	if err = h.storeFile.ValidateSnapshot(ctx, cmd.SourcePath()); err != nil {
		return nil, err
	}

	checksum, err := h.storeFile.Checksum(ctx, cmd.SourcePath())
	if err != nil {
		return nil, err
	}

	record, err := backup.NewRecord(cmd.RecordID(), cmd.Name(), info.Size(), checksum)
	if err != nil {
		return nil, err
	}

	if err = os.MkdirAll(h.backupDir, 0o755); err != nil {
		return nil, errs.NewBackupIOError("create backup directory", err)
	}
	if err = os.Rename(cmd.SourcePath(), filepath.Join(h.backupDir, record.Filename())); err != nil {
		return nil, errs.NewBackupIOError("store uploaded snapshot", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		h.discard(record)
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BackupRepository().Add(ctx, record); err != nil {
		h.discard(record)
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		h.discard(record)
		return nil, err
	}

	return record, nil
}

func (h *ImportSnapshotCommandHandler) discard(record *backup.Record) {
	_ = os.Remove(filepath.Join(h.backupDir, record.Filename()))
}
