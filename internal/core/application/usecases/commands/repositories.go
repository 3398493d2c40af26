// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, per-order locking
// where the operation mutates an order, transaction management, and
// persistence.
package commands

import (
	"context"

	"restopos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest composite it needs, so a
// handler cannot accidentally reach repositories outside its concern.
type (
	// TxManager handles the transaction lifecycle. Begin also claims a
	// writer slot on the store gate.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a
	// transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// BackupRepoFactory provides access to the backup record repository
	// within a transaction.
	BackupRepoFactory interface {
		BackupRepository() ports.BackupRepository
	}

	// CatalogRepoFactory provides access to reference data within a
	// transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// SettingsRepoFactory provides access to shop settings within a
	// transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// UserRepoFactory provides access to back-office accounts within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderingUoW manages transactions for operations that build orders
	// from reference data.
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
		SettingsRepoFactory
	}

	// OrderingUoWFactory creates new ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// PaymentUoW manages transactions for recording tenders.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		SettingsRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// FinalizeUoW manages transactions for order finalization, which reads
	// payments and the reference data printed on the receipt.
	FinalizeUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		CatalogRepoFactory
		SettingsRepoFactory
	}

	// FinalizeUoWFactory creates new finalize unit of work instances.
	FinalizeUoWFactory interface {
		Create() FinalizeUoW
	}

	// BackupUoW manages transactions for snapshot record bookkeeping.
	BackupUoW interface {
		TxManager
		BackupRepoFactory
	}

	// BackupUoWFactory creates new backup unit of work instances.
	BackupUoWFactory interface {
		Create() BackupUoW
	}

	// UserUoW manages transactions for account lookups.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
