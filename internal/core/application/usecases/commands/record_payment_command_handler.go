package commands

import (
	"context"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/payment"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/keymutex"
)

// RecordPaymentCommandHandler records a tender against an open order.
// The per-order lock serializes concurrent tenders, so the over-tender
// check always sees every previously recorded payment.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	orderLocks *keymutex.KeyMutex
}

// NewRecordPaymentCommandHandler creates a handler for recording tenders.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory, orderLocks *keymutex.KeyMutex) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
	}
}

// Handle processes the record-payment command. Card and digital tenders may
// not exceed the remaining due; cash may exceed it by the configured
// allowance.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock, err := h.orderLocks.Lock(ctx, cmd.OrderID().String())
	if err != nil {
		return err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Status() != order.Open {
		return errs.NewInvalidStateError("record a payment against", aggregate.Status().String())
	}

	paymentRepo := uow.PaymentRepository()
	existing, err := paymentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	shopSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return err
	}

	allowance := kernel.NewMoney(shopSettings.AllowanceMinor())
	if err = payment.ValidateTender(existing, aggregate.Total(), cmd.Tender(), cmd.Amount(), allowance); err != nil {
		return err
	}

	p, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), cmd.Tender(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
