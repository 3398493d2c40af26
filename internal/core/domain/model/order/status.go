package order

import (
	"restopos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions:
//
//	Draft ──> Open ──> Finalized
//	  │         │
//	  └────┬────┘
//	       v
//	   Cancelled
//
// Draft exists only during creation, while table and waiter are being
// chosen. Open allows item mutation. Finalized and Cancelled are terminal
// and reject every further mutation.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a freshly created order, before the
	// first item is added or the order is explicitly opened.
	Draft

	// Open allows item add/remove/quantity edits and payment recording.
	Open

	// Finalized means payments reconciled against the total; the order is
	// immutable and eligible for receipt rendering.
	Finalized

	// Cancelled is the terminal state of an abandoned order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Open:      "Open",
		Finalized: "Finalized",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Open:      "Open",
		Finalized: "Finalized",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status value is one of the defined states.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a stored status name back into a Status. Used
// when reconstructing orders from persistence.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Finalized || s == Cancelled
}

// ValidateMutate checks that items and payments may change in the current
// status. Only Open orders are mutable; operation names the attempted
// action for the error message.
func (s Status) ValidateMutate(operation string) error {
	if s != Open {
		return errs.NewInvalidStateError(operation, s.String())
	}
	return nil
}

// Open transitions Draft to Open. Returns the new status or an
// InvalidStateError when the order is past Draft.
func (s Status) Open() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStateError("open", s.String())
	}
	return Open, nil
}

// Finalize transitions Open to Finalized, the terminal paid state.
func (s Status) Finalize() (Status, error) {
	if s != Open {
		return 0, errs.NewInvalidStateError("finalize", s.String())
	}
	return Finalized, nil
}

// Cancel transitions Draft or Open to Cancelled. Finalized orders cannot be
// cancelled; they are settled.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Open {
		return 0, errs.NewInvalidStateError("cancel", s.String())
	}
	return Cancelled, nil
}
