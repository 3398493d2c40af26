package commands

import (
	"errors"
	"regexp"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrCreateSnapshotCommandIsNotConstructed = errors.New(
	"CreateSnapshotCommand must be created via NewCreateSnapshotCommand constructor",
)

// snapshotNameRe mirrors the backup record's name rule so a bad name is
// rejected before any file copying starts.
var snapshotNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// CreateSnapshotCommand represents a request to take a point-in-time copy
// of the store under an operator-chosen name.
type CreateSnapshotCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewCreateSnapshotCommand creates a command to take a snapshot.
func NewCreateSnapshotCommand(recordID kernel.UUID, name string) (CreateSnapshotCommand, error) {
	cmd := CreateSnapshotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setName(name),
	); err != nil {
		return CreateSnapshotCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrCreateSnapshotCommandIsNotConstructed)
}

// RecordID returns the identifier for the new snapshot record.
func (c CreateSnapshotCommand) RecordID() kernel.UUID {
	return c.recordID
}

// Name returns the operator-chosen snapshot name.
func (c CreateSnapshotCommand) Name() string {
	return c.name
}

func (c *CreateSnapshotCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.recordID = id
	return nil
}

func (c *CreateSnapshotCommand) setName(name string) error {
	if !snapshotNameRe.MatchString(name) {
		return errs.NewValueIsInvalidError("snapshot name")
	}
	c.name = name
	return nil
}
