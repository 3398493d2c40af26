package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrRestoreBackupCommandIsNotConstructed = errors.New(
	"RestoreBackupCommand must be created via NewRestoreBackupCommand constructor",
)

// RestoreBackupCommand represents a request to replace the live store with
// a previously taken snapshot. The requesting session is part of the
// command so the handler can enforce the administrator precondition.
type RestoreBackupCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID
	session  ports.Session

	guard guard.ConstructorGuard
}

// NewRestoreBackupCommand creates a command to restore a snapshot.
func NewRestoreBackupCommand(recordID kernel.UUID, session ports.Session) (RestoreBackupCommand, error) {
	cmd := RestoreBackupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setSession(session),
	); err != nil {
		return RestoreBackupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreBackupCommand) Validate() error {
	return c.guard.Validate(ErrRestoreBackupCommandIsNotConstructed)
}

// RecordID returns the snapshot record to restore from.
func (c RestoreBackupCommand) RecordID() kernel.UUID {
	return c.recordID
}

// Session returns the authenticated session requesting the restore.
func (c RestoreBackupCommand) Session() ports.Session {
	return c.session
}

func (c *RestoreBackupCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.recordID = id
	return nil
}

func (c *RestoreBackupCommand) setSession(session ports.Session) error {
	if session.Token == "" {
		return errs.NewAuthenticationError("session token is required")
	}
	c.session = session
	return nil
}
