package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/payment"
	"restopos/internal/pkg/errs"
)

// paperWidth is the character width of the thermal printer paper.
const paperWidth = 32

// ReceiptContext carries the presentation data the renderer cannot derive
// from the order itself: shop identity from settings and the resolved names
// behind the table and waiter references.
type ReceiptContext struct {
	RestaurantName string
	Address        string
	Phone          string
	TableLabel     string
	WaiterName     string
}

// ReceiptRenderer renders a finalized order into the fixed-width ticket sent
// to the printing capability. Rendering is a pure function of the order, its
// payments, and the receipt context: the only timestamp on the ticket is the
// order's finalization time, so re-rendering the same order always yields a
// byte-identical receipt.
type ReceiptRenderer struct{}

// NewReceiptRenderer creates a ReceiptRenderer.
func NewReceiptRenderer() *ReceiptRenderer {
	return &ReceiptRenderer{}
}

// Render produces the receipt text for a finalized order. Orders in any
// other status fail with an InvalidStateError, and the payments must
// reconcile against the order total.
func (r *ReceiptRenderer) Render(o *order.Order, payments []*payment.Payment, rctx ReceiptContext) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	if o.Status() != order.Finalized {
		return "", errs.NewInvalidStateError("print a receipt for", o.Status().String())
	}

	change, err := payment.Reconcile(payments, o.Total())
	if err != nil {
		return "", err
	}

	var b strings.Builder

	writeCentered(&b, rctx.RestaurantName)
	writeCentered(&b, rctx.Address)
	writeCentered(&b, rctx.Phone)
	writeRule(&b, '=')
	writeCentered(&b, "RECEIPT")
	b.WriteString(fmt.Sprintf("Order: %s\n", shortID(o.ID().String())))
	if rctx.TableLabel != "" {
		b.WriteString(fmt.Sprintf("Table: %s\n", rctx.TableLabel))
	}
	if rctx.WaiterName != "" {
		b.WriteString(fmt.Sprintf("Waiter: %s\n", rctx.WaiterName))
	}
	writeRule(&b, '-')

	for _, item := range o.Items() {
		b.WriteString(fmt.Sprintf("%dx %s\n", item.Quantity(), truncate(item.Name(), paperWidth-4)))
		writeAmountLine(&b, fmt.Sprintf("  %d x %s", item.Quantity(), item.UnitPrice().String()), item.LineTotal().String())
	}

	writeRule(&b, '-')
	writeAmountLine(&b, "Subtotal:", o.Subtotal().String())
	writeAmountLine(&b, fmt.Sprintf("Tax (%s%%):", formatRate(o.TaxRateBp())), o.TaxAmount().String())
	writeAmountLine(&b, "TOTAL:", o.Total().String())
	writeRule(&b, '-')

	for _, p := range payments {
		writeAmountLine(&b, capitalize(p.Tender().String())+":", p.Amount().String())
	}
	if change.IsPositive() {
		writeAmountLine(&b, "Change:", change.String())
	}

	writeRule(&b, '=')
	writeCentered(&b, "THANK YOU")
	if at := o.FinalizedAt(); at != nil {
		writeCentered(&b, at.UTC().Format("02/01/2006 15:04:05"))
	}

	return b.String(), nil
}

// writeCentered writes text centered within the paper width, skipping empty
// lines so an unset address or phone does not leave a blank row.
func writeCentered(b *strings.Builder, text string) {
	if text == "" {
		return
	}
	text = truncate(text, paperWidth)
	pad := (paperWidth - utf8.RuneCountInString(text)) / 2
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(text)
	b.WriteByte('\n')
}

// writeAmountLine writes a label on the left and an amount flush right.
func writeAmountLine(b *strings.Builder, label, amount string) {
	gap := paperWidth - utf8.RuneCountInString(label) - utf8.RuneCountInString(amount)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(amount)
	b.WriteByte('\n')
}

func writeRule(b *strings.Builder, c byte) {
	b.WriteString(strings.Repeat(string(c), paperWidth))
	b.WriteByte('\n')
}

// truncate cuts s to max characters without splitting a multi-byte rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// shortID keeps the first UUID group, enough for a human to match a ticket
// to an order on a busy shift.
func shortID(id string) string {
	if idx := strings.IndexByte(id, '-'); idx > 0 {
		return id[:idx]
	}
	return id
}

// formatRate renders basis points as a percentage, dropping trailing zeros
// so 1000bp prints as "10" and 1250bp as "12.5".
func formatRate(rateBp int64) string {
	whole := rateBp / 100
	frac := rateBp % 100
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	s := fmt.Sprintf("%d.%02d", whole, frac)
	return strings.TrimRight(s, "0")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
