package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request so concurrent
// commands never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Begin also claims a writer
// slot on the store gate, so a transaction never runs while a snapshot or
// restore holds the barrier. Client code must explicitly manage the
// transaction lifecycle.
type UnitOfWork interface {
	// Begin enters the store gate and starts a database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and releases the gate.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and releases the gate.
	// Rolling back after a successful commit is a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// PaymentRepository returns a PaymentRepository bound to the current
	// transaction.
	PaymentRepository() PaymentRepository

	// BackupRepository returns a BackupRepository bound to the current
	// transaction.
	BackupRepository() BackupRepository

	// CatalogRepository returns a CatalogRepository bound to the current
	// transaction.
	CatalogRepository() CatalogRepository

	// SettingsRepository returns a SettingsRepository bound to the current
	// transaction.
	SettingsRepository() SettingsRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction.
	UserRepository() UserRepository
}
