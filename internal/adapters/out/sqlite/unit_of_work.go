package sqlite

import (
	"context"

	"restopos/internal/adapters/out/sqlite/backuprepo"
	"restopos/internal/adapters/out/sqlite/catalogrepo"
	"restopos/internal/adapters/out/sqlite/orderrepo"
	"restopos/internal/adapters/out/sqlite/paymentrepo"
	"restopos/internal/adapters/out/sqlite/settingsrepo"
	"restopos/internal/adapters/out/sqlite/userrepo"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/gate"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances bound to the store and
// its gate. Each business operation gets a fresh unit of work instance with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db   *DB
	gate *gate.StoreGate
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *DB, g *gate.StoreGate) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, gate: g}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		gate:              f.gate,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a store transaction and tracks aggregate
// changes. Begin claims a writer slot on the store gate before opening the
// transaction, so a transaction never overlaps a snapshot or restore barrier;
// Commit and Rollback release the slot.
type GormUnitOfWork struct {
	db                *DB
	gate              *gate.StoreGate
	tx                *gorm.DB
	leave             func()
	trackedAggregates []trackedAggregate
}

// Begin enters the store gate and starts a database transaction. Multiple
// calls to Begin on the same instance are safe and will not create nested
// transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	leave, err := uow.gate.EnterWriter(ctx)
	if err != nil {
		return err
	}

	tx := uow.db.Gorm().WithContext(ctx).Begin()
	if tx.Error != nil {
		leave()
		return tx.Error
	}

	uow.tx = tx
	uow.leave = leave
	return nil
}

// Commit finalizes all changes made within the current transaction and
// releases the gate. After commit, the transaction is closed and cannot be
// reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.close()
	return err
}

// Rollback discards all changes made within the current transaction and
// releases the gate. Rolling back with no active transaction is a no-op, so
// a deferred Rollback after a successful Commit is safe.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.close()
	return err
}

func (uow *GormUnitOfWork) close() {
	uow.tx = nil
	if uow.leave != nil {
		uow.leave()
		uow.leave = nil
	}
}

// OrderRepository provides order persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.handle(), uow)
}

// PaymentRepository provides payment persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.handle(), uow)
}

// BackupRepository provides snapshot record persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) BackupRepository() ports.BackupRepository {
	return backuprepo.NewGormBackupRepository(uow.handle())
}

// CatalogRepository provides reference data access bound to the current
// transaction.
func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.handle())
}

// SettingsRepository provides shop configuration access bound to the current
// transaction.
func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.handle())
}

// UserRepository provides account persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.handle())
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db.Gorm()
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
