package commands

import (
	"errors"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/payment"
	"restopos/internal/pkg/errs"
	"restopos/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to record a tender against an
// open order. Split payments are multiple commands against the same order.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	tender    payment.Tender
	amount    kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a tender. Amount must
// be positive; the over-tender rules are enforced by the handler, which
// sees the order's remaining due.
func NewRecordPaymentCommand(paymentID, orderID kernel.UUID, tender payment.Tender, amount kernel.Money) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setTender(tender),
		cmd.setAmount(amount),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the order the tender applies to.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Tender returns the payment instrument.
func (c RecordPaymentCommand) Tender() payment.Tender {
	return c.tender
}

// Amount returns the tendered amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RecordPaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *RecordPaymentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RecordPaymentCommand) setTender(t payment.Tender) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tender = t
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewInvalidAmountError(amount.Minor())
	}
	c.amount = amount
	return nil
}
