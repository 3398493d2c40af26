// Package payment implements payment tenders and the reconciliation rules
// that close an order: payments must cover the order total before
// finalization, only cash may over-tender, and change is computed, returned
// to the caller, and never persisted.
package payment
