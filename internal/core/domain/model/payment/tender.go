package payment

import (
	"restopos/internal/pkg/errs"
)

// Tender is the payment instrument applied to an order. Cash is the only
// tender that may exceed the amount due and produce change; card and
// digital tenders settle exactly.
type Tender int

const (
	// TenderUnknown represents an invalid or undefined tender. The zero
	// value helps catch uninitialized Tender values.
	TenderUnknown Tender = iota

	// TenderCash is physical currency; may over-tender within the
	// configured allowance, producing change.
	TenderCash

	// TenderCard is a card settlement; must not exceed the remaining due.
	TenderCard

	// TenderDigital is a wallet or transfer settlement; same exactness
	// rule as card.
	TenderDigital
)

func getTenderStrings() map[Tender]string {
	return map[Tender]string{
		TenderUnknown: "unknown",
		TenderCash:    "cash",
		TenderCard:    "card",
		TenderDigital: "digital",
	}
}

// TenderFromString parses a tender name as stored in persistence or sent by
// callers. Unrecognized names yield an error, never TenderUnknown silently.
func TenderFromString(s string) (Tender, error) {
	for tender, name := range getTenderStrings() {
		if tender != TenderUnknown && name == s {
			return tender, nil
		}
	}
	return TenderUnknown, errs.NewValueIsInvalidError("tender")
}

// Validate checks that the tender is one of cash, card, or digital.
func (t Tender) Validate() error {
	switch t {
	case TenderCash, TenderCard, TenderDigital:
		return nil
	default:
		return errs.NewValueIsInvalidError("tender")
	}
}

// String returns the lowercase tender name. It implements fmt.Stringer and
// is safe on any value, including invalid ones.
func (t Tender) String() string {
	if s, ok := getTenderStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// MayProduceChange reports whether the tender is allowed to exceed the
// amount due.
func (t Tender) MayProduceChange() bool {
	return t == TenderCash
}
