package payment

import (
	"errors"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is a single tender applied to an order. Payments are immutable
// once created; split tenders attach multiple Payments to one order.
type Payment struct {
	// id is the unique identifier of the payment
	id kernel.UUID

	// orderID references the order the tender applies to
	orderID kernel.UUID

	// tender is the payment instrument
	tender Tender

	// amount is the tendered amount in minor units, always positive
	amount kernel.Money

	// paidAt is the time the tender was recorded
	paidAt time.Time

	// isConstructed ensures the payment was created via a constructor
	isConstructed bool
}

// NewPayment records a tender against an order. Amount must be positive;
// overpayment rules are enforced by the recording use case, which sees the
// order's remaining due.
func NewPayment(id, orderID kernel.UUID, tender Tender, amount kernel.Money) (*Payment, error) {
	p := &Payment{
		paidAt:        time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setTender(tender),
		p.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment from persistence, keeping its
// original timestamp.
func RestorePayment(id, orderID kernel.UUID, tender Tender, amount kernel.Money, paidAt time.Time) (*Payment, error) {
	p, err := NewPayment(id, orderID, tender, amount)
	if err != nil {
		return nil, err
	}
	p.paidAt = paidAt
	return p, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the tender applies to.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Tender returns the payment instrument.
func (p *Payment) Tender() Tender {
	return p.tender
}

// Amount returns the tendered amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// PaidAt returns the recording time.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.orderID = id
	return nil
}

func (p *Payment) setTender(t Tender) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.tender = t
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewInvalidAmountError(amount.Minor())
	}
	p.amount = amount
	return nil
}

// Sum returns the cumulative amount of the given payments.
func Sum(payments []*Payment) kernel.Money {
	total := kernel.Zero()
	for _, p := range payments {
		total = total.Add(p.Amount())
	}
	return total
}

// ValidateTender checks a new tender against the payments already recorded
// for an order. due is the order total; allowance is the configured
// over-tender headroom for change-producing tenders.
//
// Rules:
//   - card/digital must not exceed the remaining due (they cannot produce
//     change)
//   - cash may exceed the remaining due by at most allowance
func ValidateTender(existing []*Payment, due kernel.Money, tender Tender, amount kernel.Money, allowance kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewInvalidAmountError(amount.Minor())
	}
	if err := tender.Validate(); err != nil {
		return err
	}

	remaining := due.Sub(Sum(existing))
	if remaining.IsNegative() {
		remaining = kernel.Zero()
	}

	limit := remaining
	if tender.MayProduceChange() {
		limit = remaining.Add(allowance)
	}

	if amount.GreaterThan(limit) {
		return errs.NewOverpaymentError(tender.String(), amount.Minor(), remaining.Minor())
	}
	return nil
}

// Reconcile verifies that payments settle the amount due and computes the
// change owed to the customer. Short payments fail with an
// UnreconciledPaymentError; non-cash tenders in excess of the due amount
// fail with an OverpaymentError (ValidateTender makes that unreachable in
// the normal flow, but reconciliation re-checks rather than assumes).
// Change is returned to the caller and never persisted.
func Reconcile(payments []*Payment, due kernel.Money) (kernel.Money, error) {
	paid := Sum(payments)
	if paid.LessThan(due) {
		return kernel.Zero(), errs.NewUnreconciledPaymentError(paid.Minor(), due.Minor())
	}

	nonCash := kernel.Zero()
	for _, p := range payments {
		if !p.Tender().MayProduceChange() {
			nonCash = nonCash.Add(p.Amount())
		}
	}
	if nonCash.GreaterThan(due) {
		return kernel.Zero(), errs.NewOverpaymentError("card/digital", nonCash.Minor(), due.Minor())
	}

	return paid.Sub(due), nil
}
