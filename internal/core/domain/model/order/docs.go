// Package order implements the order ledger aggregate: the Order root, its
// Item lines, and the lifecycle Status state machine.
//
// An order is created in Draft while table and waiter are chosen, opens on
// its first item (or explicitly), accumulates menu-snapshot items with
// derived totals while Open, and ends in Finalized (paid and reconciled) or
// Cancelled. Both terminal states are immutable.
//
// Totals are recomputed inside the aggregate on every item mutation, so a
// stale total is unrepresentable. All amounts are kernel.Money minor units.
package order
