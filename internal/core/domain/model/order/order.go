package order

import (
	"errors"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// maxTaxRateBp caps the configured tax rate at 100%.
const maxTaxRateBp = 10_000

// Order is the aggregate root of the order ledger. It owns its items and
// derived totals and enforces the lifecycle state machine.
//
// Order maintains these invariants:
//   - total == subtotal + round(subtotal * taxRate), recomputed on every
//     item mutation and never stored stale
//   - every item quantity is >= 1
//   - Finalized and Cancelled orders reject all mutation
//   - the tax rate is captured at creation, so an order's totals are not
//     affected by later settings changes
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableID references the table the order is served at
	tableID kernel.UUID

	// waiterID references the waiter who owns the order
	waiterID kernel.UUID

	// items is the ordered sequence of menu snapshots
	items []*Item

	// status is the current state in the order lifecycle
	status Status

	// taxRateBp is the tax rate in basis points captured at creation
	taxRateBp int64

	// derived amounts, recomputed on every item mutation
	subtotal  kernel.Money
	taxAmount kernel.Money
	total     kernel.Money

	createdAt   time.Time
	openedAt    *time.Time
	finalizedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in Draft status for the given table and waiter.
// The caller is responsible for having checked that both references exist;
// the aggregate only validates identifier shape and the tax rate range.
func NewOrder(id, tableID, waiterID kernel.UUID, taxRateBp int64) (*Order, error) {
	o := &Order{
		status:        Draft,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
		o.setWaiterID(waiterID),
		o.setTaxRateBp(taxRateBp),
	); err != nil {
		return nil, err
	}

	o.recompute()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Totals are recomputed
// from the items rather than trusted, so a stale stored total can never
// survive rehydration.
func RestoreOrder(
	id, tableID, waiterID kernel.UUID,
	items []*Item,
	status Status,
	taxRateBp int64,
	createdAt time.Time,
	openedAt, finalizedAt *time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		createdAt:     createdAt,
		openedAt:      openedAt,
		finalizedAt:   finalizedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
		o.setWaiterID(waiterID),
		o.setTaxRateBp(taxRateBp),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	o.recompute()
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableID returns the referenced table identifier.
func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// WaiterID returns the referenced waiter identifier.
func (o *Order) WaiterID() kernel.UUID {
	return o.waiterID
}

// Items returns the order lines in insertion order. The slice is a copy;
// items themselves are shared and must not be mutated by callers.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TaxRateBp returns the tax rate captured at creation, in basis points.
func (o *Order) TaxRateBp() int64 {
	return o.taxRateBp
}

// Subtotal returns the sum of all line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// TaxAmount returns the tax due on the subtotal.
func (o *Order) TaxAmount() kernel.Money {
	return o.taxAmount
}

// Total returns subtotal plus tax. This is the amount payments must
// reconcile against before the order can finalize.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// OpenedAt returns when the order left Draft, or nil.
func (o *Order) OpenedAt() *time.Time {
	return o.openedAt
}

// FinalizedAt returns when the order was finalized, or nil.
func (o *Order) FinalizedAt() *time.Time {
	return o.finalizedAt
}

// Open explicitly promotes a Draft order to Open without items. An order
// may also open implicitly when its first item is added.
func (o *Order) Open() error {
	newStatus, err := o.status.Open()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.openedAt = &now
	return nil
}

// AddItem appends a menu snapshot line and recomputes totals. Adding the
// first item to a Draft order promotes it to Open. Fails with an
// InvalidStateError when the order is Finalized or Cancelled.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if o.status == Draft {
		if err := o.Open(); err != nil {
			return err
		}
	} else if err := o.status.ValidateMutate("add an item to"); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recompute()
	return nil
}

// RemoveItem deletes a line by identifier and recomputes totals. Removing
// the last item leaves the order Open with a zero total.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.status.ValidateMutate("remove an item from"); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recompute()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// ChangeItemQuantity updates a line's quantity and recomputes totals.
// Quantity must stay >= 1; use RemoveItem to drop a line.
func (o *Order) ChangeItemQuantity(itemID kernel.UUID, quantity int) error {
	if err := o.status.ValidateMutate("change an item of"); err != nil {
		return err
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			if err := item.setQuantity(quantity); err != nil {
				return err
			}
			o.recompute()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// Cancel transitions a Draft or Open order to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Finalize transitions an Open order to Finalized and stamps the
// finalization time. Payment reconciliation happens before this call; the
// aggregate only guards the state transition. Finalizing a zero-total order
// is permitted and left to the caller's judgement.
func (o *Order) Finalize() error {
	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.finalizedAt = &now
	return nil
}

// recompute derives subtotal, tax, and total from the current items.
func (o *Order) recompute() {
	subtotal := kernel.Zero()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	o.subtotal = subtotal
	o.taxAmount = subtotal.TaxAt(o.taxRateBp)
	o.total = subtotal.Add(o.taxAmount)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.tableID = id
	return nil
}

func (o *Order) setWaiterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.waiterID = id
	return nil
}

func (o *Order) setTaxRateBp(rateBp int64) error {
	if rateBp < 0 || rateBp > maxTaxRateBp {
		return errs.NewValueIsInvalidError("tax rate")
	}
	o.taxRateBp = rateBp
	return nil
}
