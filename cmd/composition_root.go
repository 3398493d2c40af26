package cmd

import (
	"log/slog"

	httpin "restopos/internal/adapters/in/http"
	"restopos/internal/adapters/out/printer"
	"restopos/internal/adapters/out/session"
	"restopos/internal/adapters/out/sqlite"
	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/application/usecases/queries"
	"restopos/internal/core/domain/services"
	"restopos/internal/core/ports"
	"restopos/internal/jobs"
	"restopos/internal/pkg/gate"
	"restopos/internal/pkg/keymutex"
)

// CompositionRoot builds and owns every component of the application.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	db         *sqlite.DB
	storeGate  *gate.StoreGate
	orderLocks *keymutex.KeyMutex
	uowFactory *sqlite.GormUnitOfWorkFactory
	storeFile  *sqlite.StoreFile
	sessions   ports.SessionGuard
	printer    ports.Printer
	renderer   *services.ReceiptRenderer
}

// NewCompositionRoot wires the object graph on top of an opened store.
func NewCompositionRoot(config Config, db *sqlite.DB, logger *slog.Logger) *CompositionRoot {
	storeGate := gate.New(config.GateTimeout)

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		db:         db,
		storeGate:  storeGate,
		orderLocks: keymutex.New(),
		uowFactory: sqlite.NewGormUnitOfWorkFactory(db, storeGate),
		storeFile:  sqlite.NewStoreFile(db),
		sessions:   session.NewGuard(config.SessionTTL),
		printer:    printer.NewConsolePrinter(logger),
		renderer:   services.NewReceiptRenderer(),
	}
}

// DB exposes the store for shutdown.
func (c *CompositionRoot) DB() *sqlite.DB {
	return c.db
}

// Sessions exposes the session guard for jobs and seeding.
func (c *CompositionRoot) Sessions() ports.SessionGuard {
	return c.sessions
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenOrderCommandHandler() commands.OpenOrderCommandHandler {
	return commands.NewOpenOrderCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateChangeItemQuantityCommandHandler() commands.ChangeItemQuantityCommandHandler {
	return commands.NewChangeItemQuantityCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	var f commands.FinalizeUoWFactory = FuncFinalizeUoWFactory(func() commands.FinalizeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeOrderCommandHandler(f, c.orderLocks, c.renderer, c.printer)
}

func (c *CompositionRoot) CreateClearOrderHistoryCommandHandler() commands.ClearOrderHistoryCommandHandler {
	return commands.NewClearOrderHistoryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateSnapshotCommandHandler() commands.CreateSnapshotCommandHandler {
	return commands.NewCreateSnapshotCommandHandler(
		c.backupUoWFactory(), c.storeGate, c.storeFile, c.config.BackupDir)
}

func (c *CompositionRoot) CreateImportSnapshotCommandHandler() commands.ImportSnapshotCommandHandler {
	return commands.NewImportSnapshotCommandHandler(
		c.backupUoWFactory(), c.storeFile, c.config.BackupDir, c.config.MaxUploadBytes)
}

func (c *CompositionRoot) CreateRestoreBackupCommandHandler() commands.RestoreBackupCommandHandler {
	return commands.NewRestoreBackupCommandHandler(
		c.backupUoWFactory(), c.storeGate, c.storeFile, c.db, c.sessions, c.config.BackupDir)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.sessions)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.db)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.db)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.db)
}

func (c *CompositionRoot) CreateListBackupsQueryHandler() queries.ListBackupsQueryHandler {
	return queries.NewListBackupsQueryHandler(c.db)
}

func (c *CompositionRoot) CreateGetBackupQueryHandler() queries.GetBackupQueryHandler {
	return queries.NewGetBackupQueryHandler(c.db)
}

func (c *CompositionRoot) CreateGetReceiptQueryHandler() queries.GetReceiptQueryHandler {
	return queries.NewGetReceiptQueryHandler(c.uowFactory, c.renderer)
}

// CreateHTTPServer assembles the HTTP surface.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Dependencies{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		OpenOrder:          c.CreateOpenOrderCommandHandler(),
		AddOrderItem:       c.CreateAddOrderItemCommandHandler(),
		RemoveOrderItem:    c.CreateRemoveOrderItemCommandHandler(),
		ChangeItemQuantity: c.CreateChangeItemQuantityCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		RecordPayment:      c.CreateRecordPaymentCommandHandler(),
		FinalizeOrder:      c.CreateFinalizeOrderCommandHandler(),
		CreateSnapshot:     c.CreateCreateSnapshotCommandHandler(),
		ImportSnapshot:     c.CreateImportSnapshotCommandHandler(),
		RestoreBackup:      c.CreateRestoreBackupCommandHandler(),
		ClearOrderHistory:  c.CreateClearOrderHistoryCommandHandler(),
		Login:              c.CreateLoginCommandHandler(),

		GetOrder:        c.CreateGetOrderQueryHandler(),
		GetActiveOrders: c.CreateGetActiveOrdersQueryHandler(),
		GetMenu:         c.CreateGetMenuQueryHandler(),
		ListBackups:     c.CreateListBackupsQueryHandler(),
		GetBackup:       c.CreateGetBackupQueryHandler(),
		GetReceipt:      c.CreateGetReceiptQueryHandler(),

		Sessions:       c.sessions,
		StoreGate:      c.storeGate,
		BackupDir:      c.config.BackupDir,
		MaxUploadBytes: c.config.MaxUploadBytes,
	})
}

// CreateJobManager assembles the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCreateSnapshotCommandHandler(), c.sessions, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) backupUoWFactory() commands.BackupUoWFactory {
	return FuncBackupUoWFactory(func() commands.BackupUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncFinalizeUoWFactory func() commands.FinalizeUoW

func (f FuncFinalizeUoWFactory) Create() commands.FinalizeUoW {
	return f()
}

type FuncBackupUoWFactory func() commands.BackupUoW

func (f FuncBackupUoWFactory) Create() commands.BackupUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
