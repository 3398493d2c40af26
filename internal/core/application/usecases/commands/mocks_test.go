package commands_test

import (
	"context"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/backup"
	"restopos/internal/core/domain/model/catalog"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/payment"
	"restopos/internal/core/domain/model/settings"
	"restopos/internal/core/domain/model/staff"
	"restopos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) DeleteTerminal(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

type MockBackupRepository struct{ mock.Mock }

func (m *MockBackupRepository) Add(ctx context.Context, record *backup.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockBackupRepository) Get(ctx context.Context, id kernel.UUID) (*backup.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backup.Record), args.Error(1)
}
func (m *MockBackupRepository) GetAll(ctx context.Context) ([]*backup.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*backup.Record), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}
func (m *MockCatalogRepository) GetAllMenuItems(ctx context.Context) ([]*catalog.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.MenuItem), args.Error(1)
}
func (m *MockCatalogRepository) GetTable(ctx context.Context, id kernel.UUID) (*catalog.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Table), args.Error(1)
}
func (m *MockCatalogRepository) GetAllTables(ctx context.Context) ([]*catalog.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Table), args.Error(1)
}
func (m *MockCatalogRepository) GetWaiter(ctx context.Context, id kernel.UUID) (*catalog.Waiter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Waiter), args.Error(1)
}
func (m *MockCatalogRepository) GetAllWaiters(ctx context.Context) ([]*catalog.Waiter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Waiter), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Settings), args.Error(1)
}
func (m *MockSettingsRepository) Update(ctx context.Context, s *settings.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, user *staff.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*staff.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}

// MockUoW satisfies every narrow unit of work composite.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) BackupRepository() ports.BackupRepository {
	return m.Called().Get(0).(ports.BackupRepository)
}
func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}
func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	return m.Called().Get(0).(ports.SettingsRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockOrderingUoWFactory struct{ mock.Mock }

func (m *MockOrderingUoWFactory) Create() commands.OrderingUoW {
	return m.Called().Get(0).(commands.OrderingUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

type MockFinalizeUoWFactory struct{ mock.Mock }

func (m *MockFinalizeUoWFactory) Create() commands.FinalizeUoW {
	return m.Called().Get(0).(commands.FinalizeUoW)
}

type MockBackupUoWFactory struct{ mock.Mock }

func (m *MockBackupUoWFactory) Create() commands.BackupUoW {
	return m.Called().Get(0).(commands.BackupUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockSessionGuard struct{ mock.Mock }

func (m *MockSessionGuard) Issue(ctx context.Context, user *staff.User) (ports.Session, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(ports.Session), args.Error(1)
}
func (m *MockSessionGuard) Authenticate(ctx context.Context, token string) (ports.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(ports.Session), args.Error(1)
}
func (m *MockSessionGuard) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockSessionGuard) RevokeAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSessionGuard) Sweep(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

type MockPrinter struct{ mock.Mock }

func (m *MockPrinter) Print(ctx context.Context, receipt string) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

type MockStoreFile struct{ mock.Mock }

func (m *MockStoreFile) Path() string {
	return m.Called().String(0)
}
func (m *MockStoreFile) CopyTo(ctx context.Context, dst string) (int64, string, error) {
	args := m.Called(ctx, dst)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}
func (m *MockStoreFile) ValidateSnapshot(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
func (m *MockStoreFile) Checksum(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}
func (m *MockStoreFile) AtomicReplaceFrom(ctx context.Context, src string) error {
	args := m.Called(ctx, src)
	return args.Error(0)
}

type MockStoreReopener struct{ mock.Mock }

func (m *MockStoreReopener) Reopen(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
