package ports

import "context"

// Printer sends a rendered receipt to the printing capability. The engine
// treats printing as fire-and-forget: a failed print never rolls back the
// finalization that produced the receipt.
type Printer interface {
	Print(ctx context.Context, receipt string) error
}
