package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stageUpload(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "upload.tmp")
	require.NoError(t, os.WriteFile(path, []byte("snapshot"), 0o644))
	return path
}

func TestImportSnapshotCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	backupDir := t.TempDir()
	staged := stageUpload(t, backupDir)

	cmd, err := commands.NewImportSnapshotCommand(kernel.NewUUID(), "uploaded", staged)
	require.NoError(t, err)

	storeFile := new(MockStoreFile)
	storeFile.On("ValidateSnapshot", ctx, staged).Return(nil).Once()
	storeFile.On("Checksum", ctx, staged).Return(snapshotChecksum, nil).Once()

	backupRepo := new(MockBackupRepository)
	backupRepo.On("Add", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BackupRepository").Return(backupRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBackupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewImportSnapshotCommandHandler(factory, storeFile, backupDir, 1<<20)
	record, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "uploaded", record.Name())
	assert.Equal(t, int64(8), record.SizeBytes())
	assert.Equal(t, snapshotChecksum, record.Checksum())

	assert.NoFileExists(t, staged)
	assert.FileExists(t, filepath.Join(backupDir, record.Filename()))

	storeFile.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestImportSnapshotCommandHandler_Handle_PayloadTooLarge(t *testing.T) {
	ctx := context.Background()
	backupDir := t.TempDir()
	staged := stageUpload(t, backupDir)

	cmd, err := commands.NewImportSnapshotCommand(kernel.NewUUID(), "uploaded", staged)
	require.NoError(t, err)

	storeFile := new(MockStoreFile)
	factory := new(MockBackupUoWFactory)

	h := commands.NewImportSnapshotCommandHandler(factory, storeFile, backupDir, 4)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)

	storeFile.AssertNotCalled(t, "ValidateSnapshot", mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestImportSnapshotCommandHandler_Handle_InvalidSnapshot(t *testing.T) {
	ctx := context.Background()
	backupDir := t.TempDir()
	staged := stageUpload(t, backupDir)

	cmd, err := commands.NewImportSnapshotCommand(kernel.NewUUID(), "uploaded", staged)
	require.NoError(t, err)

	storeFile := new(MockStoreFile)
	storeFile.On("ValidateSnapshot", ctx, staged).
		Return(errs.NewInvalidBackupFormatError("bad file signature")).Once()

	factory := new(MockBackupUoWFactory)

	h := commands.NewImportSnapshotCommandHandler(factory, storeFile, backupDir, 1<<20)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidBackupFormat)

	assert.FileExists(t, staged)
	factory.AssertNotCalled(t, "Create")
}

func TestImportSnapshotCommandHandler_Handle_PersistFailureDiscardsFile(t *testing.T) {
	ctx := context.Background()
	backupDir := t.TempDir()
	staged := stageUpload(t, backupDir)

	cmd, err := commands.NewImportSnapshotCommand(kernel.NewUUID(), "uploaded", staged)
	require.NoError(t, err)

	storeFile := new(MockStoreFile)
	storeFile.On("ValidateSnapshot", ctx, staged).Return(nil).Once()
	storeFile.On("Checksum", ctx, staged).Return(snapshotChecksum, nil).Once()

	backupRepo := new(MockBackupRepository)
	backupRepo.On("Add", ctx, mock.Anything).Return(assert.AnError).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BackupRepository").Return(backupRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBackupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewImportSnapshotCommandHandler(factory, storeFile, backupDir, 1<<20)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
