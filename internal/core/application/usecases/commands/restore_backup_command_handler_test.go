package commands_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/backup"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/staff"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/gate"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminSession() ports.Session {
	return ports.Session{
		Token:     "token",
		UserID:    kernel.NewUUID(),
		Username:  "admin",
		Role:      staff.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func staffSession() ports.Session {
	s := adminSession()
	s.Role = staff.RoleStaff
	return s
}

func snapshotRecord(t *testing.T, id kernel.UUID) *backup.Record {
	t.Helper()
	record, err := backup.NewRecord(id, "nightly", 8, snapshotChecksum)
	require.NoError(t, err)
	return record
}

func restoreHandler(
	factory *MockBackupUoWFactory,
	storeFile *MockStoreFile,
	reopener *MockStoreReopener,
	sessions *MockSessionGuard,
	backupDir string,
) commands.RestoreBackupCommandHandler {
	return commands.NewRestoreBackupCommandHandler(factory, gate.New(0), storeFile, reopener, sessions, backupDir)
}

func TestRestoreBackupCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	backupDir := t.TempDir()
	recordID := kernel.NewUUID()
	record := snapshotRecord(t, recordID)
	path := filepath.Join(backupDir, record.Filename())

	cmd, err := commands.NewRestoreBackupCommand(recordID, adminSession())
	require.NoError(t, err)

	backupRepo := new(MockBackupRepository)
	backupRepo.On("Get", ctx, recordID).Return(record, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BackupRepository").Return(backupRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBackupUoWFactory)
	factory.On("Create").Return(uow).Once()

	storeFile := new(MockStoreFile)
	storeFile.On("Checksum", ctx, path).Return(snapshotChecksum, nil).Once()
	storeFile.On("ValidateSnapshot", ctx, path).Return(nil).Once()
	storeFile.On("AtomicReplaceFrom", ctx, path).Return(nil).Once()

	reopener := new(MockStoreReopener)
	reopener.On("Reopen", ctx).Return(nil).Once()

	sessions := new(MockSessionGuard)
	sessions.On("RevokeAll", ctx).Return(nil).Once()

	h := restoreHandler(factory, storeFile, reopener, sessions, backupDir)
	require.NoError(t, h.Handle(ctx, cmd))

	storeFile.AssertExpectations(t)
	reopener.AssertExpectations(t)
	sessions.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRestoreBackupCommandHandler_Handle_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRestoreBackupCommand(kernel.NewUUID(), staffSession())
	require.NoError(t, err)

	factory := new(MockBackupUoWFactory)
	storeFile := new(MockStoreFile)

	h := restoreHandler(factory, storeFile, new(MockStoreReopener), new(MockSessionGuard), t.TempDir())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthentication)

	factory.AssertNotCalled(t, "Create")
	storeFile.AssertNotCalled(t, "AtomicReplaceFrom", mock.Anything, mock.Anything)
}

func TestRestoreBackupCommandHandler_Handle_ChecksumMismatch(t *testing.T) {
	ctx := context.Background()
	backupDir := t.TempDir()
	recordID := kernel.NewUUID()
	record := snapshotRecord(t, recordID)
	path := filepath.Join(backupDir, record.Filename())

	cmd, err := commands.NewRestoreBackupCommand(recordID, adminSession())
	require.NoError(t, err)

	backupRepo := new(MockBackupRepository)
	backupRepo.On("Get", ctx, recordID).Return(record, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BackupRepository").Return(backupRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBackupUoWFactory)
	factory.On("Create").Return(uow).Once()

	tampered := "0000000000000000000000000000000000000000000000000000000000000000"
	storeFile := new(MockStoreFile)
	storeFile.On("Checksum", ctx, path).Return(tampered, nil).Once()

	h := restoreHandler(factory, storeFile, new(MockStoreReopener), new(MockSessionGuard), backupDir)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidBackupFormat)

	storeFile.AssertNotCalled(t, "AtomicReplaceFrom", mock.Anything, mock.Anything)
}

func TestRestoreBackupCommandHandler_Handle_InvalidSnapshot(t *testing.T) {
	ctx := context.Background()
	backupDir := t.TempDir()
	recordID := kernel.NewUUID()
	record := snapshotRecord(t, recordID)
	path := filepath.Join(backupDir, record.Filename())

	cmd, err := commands.NewRestoreBackupCommand(recordID, adminSession())
	require.NoError(t, err)

	backupRepo := new(MockBackupRepository)
	backupRepo.On("Get", ctx, recordID).Return(record, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BackupRepository").Return(backupRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBackupUoWFactory)
	factory.On("Create").Return(uow).Once()

	storeFile := new(MockStoreFile)
	storeFile.On("Checksum", ctx, path).Return(snapshotChecksum, nil).Once()
	storeFile.On("ValidateSnapshot", ctx, path).
		Return(errs.NewInvalidBackupFormatError("bad file signature")).Once()

	h := restoreHandler(factory, storeFile, new(MockStoreReopener), new(MockSessionGuard), backupDir)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidBackupFormat)

	storeFile.AssertNotCalled(t, "AtomicReplaceFrom", mock.Anything, mock.Anything)
}
