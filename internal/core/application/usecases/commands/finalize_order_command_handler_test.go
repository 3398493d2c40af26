package commands_test

import (
	"context"
	"testing"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/payment"
	"restopos/internal/core/domain/services"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/keymutex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func finalizeUoW(ctx context.Context, aggregate *order.Order, payments []*payment.Payment, t *testing.T) (*MockUoW, *MockOrderRepository) {
	t.Helper()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Maybe()

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrderID", ctx, aggregate.ID()).Return(payments, nil).Once()

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("GetTable", ctx, aggregate.TableID()).Return(testTable(t, aggregate.TableID()), nil).Maybe()
	catalogRepo.On("GetWaiter", ctx, aggregate.WaiterID()).Return(testWaiter(t, aggregate.WaiterID()), nil).Maybe()

	settingsRepo := new(MockSettingsRepository)
	settingsRepo.On("Get", ctx).Return(testSettings(t), nil).Maybe()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("CatalogRepository").Return(catalogRepo).Maybe()
	uow.On("SettingsRepository").Return(settingsRepo).Maybe()
	uow.On("Commit", ctx).Return(nil).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()

	return uow, orderRepo
}

func TestFinalizeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	aggregate := openOrder(t, kernel.NewUUID())
	cmd, err := commands.NewFinalizeOrderCommand(aggregate.ID())
	require.NoError(t, err)

	cash, err := payment.NewPayment(kernel.NewUUID(), aggregate.ID(), payment.TenderCash, kernel.NewMoney(2000))
	require.NoError(t, err)

	uow, orderRepo := finalizeUoW(ctx, aggregate, []*payment.Payment{cash}, t)
	factory := new(MockFinalizeUoWFactory)
	factory.On("Create").Return(uow).Once()

	printer := new(MockPrinter)
	printer.On("Print", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewFinalizeOrderCommandHandler(factory, keymutex.New(), services.NewReceiptRenderer(), printer)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(570), result.ChangeMinor)
	assert.True(t, result.Printed)
	assert.Contains(t, result.Receipt, "TOTAL:                     14.30")
	assert.Equal(t, order.Finalized, aggregate.Status())
	orderRepo.AssertExpectations(t)
	printer.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_ShortPayment(t *testing.T) {
	ctx := context.Background()
	aggregate := openOrder(t, kernel.NewUUID())
	cmd, err := commands.NewFinalizeOrderCommand(aggregate.ID())
	require.NoError(t, err)

	short, err := payment.NewPayment(kernel.NewUUID(), aggregate.ID(), payment.TenderCard, kernel.NewMoney(1000))
	require.NoError(t, err)

	uow, orderRepo := finalizeUoW(ctx, aggregate, []*payment.Payment{short}, t)
	factory := new(MockFinalizeUoWFactory)
	factory.On("Create").Return(uow).Once()

	printer := new(MockPrinter)

	h := commands.NewFinalizeOrderCommandHandler(factory, keymutex.New(), services.NewReceiptRenderer(), printer)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnreconciledPayment)
	assert.Equal(t, order.Open, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	printer.AssertNotCalled(t, "Print", mock.Anything, mock.Anything)
}

func TestFinalizeOrderCommandHandler_Handle_PrintFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	aggregate := openOrder(t, kernel.NewUUID())
	cmd, err := commands.NewFinalizeOrderCommand(aggregate.ID())
	require.NoError(t, err)

	card, err := payment.NewPayment(kernel.NewUUID(), aggregate.ID(), payment.TenderCard, kernel.NewMoney(1430))
	require.NoError(t, err)

	uow, _ := finalizeUoW(ctx, aggregate, []*payment.Payment{card}, t)
	factory := new(MockFinalizeUoWFactory)
	factory.On("Create").Return(uow).Once()

	printer := new(MockPrinter)
	printer.On("Print", ctx, mock.AnythingOfType("string")).
		Return(assert.AnError).Once()

	h := commands.NewFinalizeOrderCommandHandler(factory, keymutex.New(), services.NewReceiptRenderer(), printer)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result.ChangeMinor)
	assert.False(t, result.Printed)
	assert.Equal(t, order.Finalized, aggregate.Status())
	printer.AssertExpectations(t)
}
