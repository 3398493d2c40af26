// Package sqlite provides the GORM-based persistence adapter on top of a
// single-file embedded store. The file doubles as the unit of backup: a
// snapshot is a byte-for-byte copy of it, and a restore atomically swaps it
// out and reopens the pool through this package.
package sqlite

import (
	"context"
	"fmt"
	"sync"

	"restopos/internal/adapters/out/sqlite/backuprepo"
	"restopos/internal/adapters/out/sqlite/catalogrepo"
	"restopos/internal/adapters/out/sqlite/orderrepo"
	"restopos/internal/adapters/out/sqlite/paymentrepo"
	"restopos/internal/adapters/out/sqlite/settingsrepo"
	"restopos/internal/adapters/out/sqlite/userrepo"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// requiredTables are the tables a structurally sound store must contain.
// Snapshot validation checks them before a restore is allowed to proceed.
var requiredTables = []string{
	"orders",
	"order_items",
	"payments",
	"backups",
	"menu_items",
	"tables",
	"waiters",
	"users",
	"settings",
}

// DB wraps the GORM handle so the pool can be swapped after a restore.
// Callers resolve the handle through Gorm per operation and never cache it.
type DB struct {
	mu   sync.RWMutex
	path string
	gdb  *gorm.DB
}

// Open opens the store file, creating it with the full schema when absent.
func Open(path string) (*DB, error) {
	gdb, err := open(path)
	if err != nil {
		return nil, err
	}

	if err = migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate store schema: %w", err)
	}

	return &DB{path: path, gdb: gdb}, nil
}

func open(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return gdb, nil
}

func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&catalogrepo.MenuItemDTO{},
		&catalogrepo.TableDTO{},
		&catalogrepo.WaiterDTO{},
		&userrepo.UserDTO{},
		&settingsrepo.SettingsDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&paymentrepo.PaymentDTO{},
		&backuprepo.RecordDTO{},
	)
}

// Gorm returns the current handle.
func (d *DB) Gorm() *gorm.DB {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.gdb
}

// Path returns the store file location.
func (d *DB) Path() string {
	return d.path
}

// Reopen closes the pool and opens the store file again. Called with the
// exclusive restore barrier held, so no transaction can be in flight.
// The restored file arrives schema-complete; no migration is run against
// it.
func (d *DB) Reopen(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sqlDB, err := d.gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}

	gdb, err := open(d.path)
	if err != nil {
		return err
	}

	d.gdb = gdb
	return nil
}

// Close releases the connection pool.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	sqlDB, err := d.gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
