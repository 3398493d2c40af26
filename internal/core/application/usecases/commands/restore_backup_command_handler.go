package commands

import (
	"context"
	"path/filepath"

	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/gate"
)

// StoreReopener reopens the store connection pool after the underlying file
// has been swapped.
type StoreReopener interface {
	Reopen(ctx context.Context) error
}

// RestoreBackupCommandHandler replaces the live store with a snapshot.
//
// The snapshot is validated before anything is touched: file signature,
// required tables, and checksum against the record. Only then is the
// exclusive restore barrier taken, the file atomically swapped in, and the
// connection pool reopened. Every login session is revoked afterwards,
// since the restored store carries its own user table.
type RestoreBackupCommandHandler struct {
	uowFactory BackupUoWFactory
	storeGate  *gate.StoreGate
	storeFile  ports.StoreFile
	reopener   StoreReopener
	sessions   ports.SessionGuard
	backupDir  string
}

// NewRestoreBackupCommandHandler creates a handler for restoring snapshots.
func NewRestoreBackupCommandHandler(
	uowFactory BackupUoWFactory,
	storeGate *gate.StoreGate,
	storeFile ports.StoreFile,
	reopener StoreReopener,
	sessions ports.SessionGuard,
	backupDir string,
) RestoreBackupCommandHandler {
	return RestoreBackupCommandHandler{
		uowFactory: uowFactory,
		storeGate:  storeGate,
		storeFile:  storeFile,
		reopener:   reopener,
		sessions:   sessions,
		backupDir:  backupDir,
	}
}

// Handle processes the restore command. Requires an administrator session;
// any validation failure leaves the live store untouched.
func (h *RestoreBackupCommandHandler) Handle(ctx context.Context, cmd RestoreBackupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Session().IsAdmin() {
		return errs.NewAuthenticationError("administrator account required")
	}

	path, err := h.resolveSnapshot(ctx, cmd)
	if err != nil {
		return err
	}

	if err = h.storeFile.ValidateSnapshot(ctx, path); err != nil {
		return err
	}

	release, err := h.storeGate.EnterRestore(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err = h.storeFile.AtomicReplaceFrom(ctx, path); err != nil {
		return err
	}

	if err = h.reopener.Reopen(ctx); err != nil {
		return errs.NewRestoreIOError("reopen store", err)
	}

	return h.sessions.RevokeAll(ctx)
}

// resolveSnapshot loads the record and verifies the snapshot file still
// matches its recorded checksum.
func (h *RestoreBackupCommandHandler) resolveSnapshot(ctx context.Context, cmd RestoreBackupCommand) (string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := uow.BackupRepository().Get(ctx, cmd.RecordID())
	if err != nil {
		return "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	path := filepath.Join(h.backupDir, record.Filename())
	checksum, err := h.storeFile.Checksum(ctx, path)
	if err != nil {
		return "", err
	}
	if !record.MatchesChecksum(checksum) {
		return "", errs.NewInvalidBackupFormatError("checksum does not match the snapshot record")
	}

	return path, nil
}
