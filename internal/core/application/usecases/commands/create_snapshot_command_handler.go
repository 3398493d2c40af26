package commands

import (
	"context"
	"os"
	"path/filepath"

	"restopos/internal/core/domain/model/backup"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/gate"
)

// CreateSnapshotCommandHandler copies the live store into the backup
// directory and records the snapshot metadata.
//
// The copy runs under the snapshot barrier: writers are drained and held
// off for the duration, while readers keep going. The metadata row is
// written after the barrier is released, because persisting it needs a
// writer slot of its own.
type CreateSnapshotCommandHandler struct {
	uowFactory BackupUoWFactory
	storeGate  *gate.StoreGate
	storeFile  ports.StoreFile
	backupDir  string
}

// NewCreateSnapshotCommandHandler creates a handler for taking snapshots.
func NewCreateSnapshotCommandHandler(
	uowFactory BackupUoWFactory,
	storeGate *gate.StoreGate,
	storeFile ports.StoreFile,
	backupDir string,
) CreateSnapshotCommandHandler {
	return CreateSnapshotCommandHandler{
		uowFactory: uowFactory,
		storeGate:  storeGate,
		storeFile:  storeFile,
		backupDir:  backupDir,
	}
}

// Handle processes the snapshot command and returns the created record.
func (h *CreateSnapshotCommandHandler) Handle(ctx context.Context, cmd CreateSnapshotCommand) (*backup.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(h.backupDir, 0o755); err != nil {
		return nil, errs.NewBackupIOError("create backup directory", err)
	}

	record, err := h.copySnapshot(ctx, cmd)
	if err != nil {
		return nil, err
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

// copySnapshot performs the file copy under the snapshot barrier.
func (h *CreateSnapshotCommandHandler) copySnapshot(ctx context.Context, cmd CreateSnapshotCommand) (*backup.Record, error) {
	release, err := h.storeGate.EnterSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	tmp := filepath.Join(h.backupDir, cmd.Name()+".tmp")
	size, checksum, err := h.storeFile.CopyTo(ctx, tmp)
	if err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}

	record, err := backup.NewRecord(cmd.RecordID(), cmd.Name(), size, checksum)
	if err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}

	if err = os.Rename(tmp, filepath.Join(h.backupDir, record.Filename())); err != nil {
		_ = os.Remove(tmp)
		return nil, errs.NewBackupIOError("store snapshot", err)
	}

	return record, nil
}

func (h *CreateSnapshotCommandHandler) discard(record *backup.Record) {
	_ = os.Remove(filepath.Join(h.backupDir, record.Filename()))
}
