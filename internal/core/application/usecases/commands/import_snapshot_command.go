package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrImportSnapshotCommandIsNotConstructed = errors.New(
	"ImportSnapshotCommand must be created via NewImportSnapshotCommand constructor",
)

// ImportSnapshotCommand represents a request to register an uploaded
// snapshot file so it can later be restored. The file is already staged on
// local disk; the command carries its location.
type ImportSnapshotCommand struct { //nolint:recvcheck //using for validation
	recordID   kernel.UUID
	name       string
	sourcePath string

	guard guard.ConstructorGuard
}

// NewImportSnapshotCommand creates a command to import a staged snapshot.
func NewImportSnapshotCommand(recordID kernel.UUID, name, sourcePath string) (ImportSnapshotCommand, error) {
	cmd := ImportSnapshotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setName(name),
		cmd.setSourcePath(sourcePath),
	); err != nil {
		return ImportSnapshotCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrImportSnapshotCommandIsNotConstructed)
}

// RecordID returns the identifier for the new snapshot record.
func (c ImportSnapshotCommand) RecordID() kernel.UUID {
	return c.recordID
}

// Name returns the operator-chosen snapshot name.
func (c ImportSnapshotCommand) Name() string {
	return c.name
}

// SourcePath returns where the uploaded file is staged.
func (c ImportSnapshotCommand) SourcePath() string {
	return c.sourcePath
}

func (c *ImportSnapshotCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.recordID = id
	return nil
}

func (c *ImportSnapshotCommand) setName(name string) error {
	if !snapshotNameRe.MatchString(name) {
		return errs.NewValueIsInvalidError("snapshot name")
	}
	c.name = name
	return nil
}

func (c *ImportSnapshotCommand) setSourcePath(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("snapshot source path")
	}
	c.sourcePath = path
	return nil
}
