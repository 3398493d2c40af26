// Package kernel provides the shared domain primitives of the POS core:
// the UUID identifier value object and Money, the minor-unit currency
// representation every amount in the system is expressed in.
//
// Both types are immutable value objects. UUID wraps github.com/google/uuid
// and treats the zero value as unconstructed; Money wraps an int64 amount in
// minor units (cents) so totals and reconciliation never touch floating
// point.
package kernel
