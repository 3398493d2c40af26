// Package printer provides the outbound printing adapter. The console
// printer writes receipts to the process log, standing in for a thermal
// printer device.
package printer

import (
	"context"
	"log/slog"
)

// ConsolePrinter logs rendered receipts. Printing is fire-and-forget from
// the caller's perspective; this adapter never fails.
type ConsolePrinter struct {
	log *slog.Logger
}

// NewConsolePrinter creates a printer writing to the given logger.
func NewConsolePrinter(log *slog.Logger) *ConsolePrinter {
	return &ConsolePrinter{log: log}
}

// Print writes the receipt to the log.
func (p *ConsolePrinter) Print(_ context.Context, receipt string) error {
	p.log.Info("printing receipt\n" + receipt)
	return nil
}
