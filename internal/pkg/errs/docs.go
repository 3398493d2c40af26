// Package errs provides the standardized error taxonomy for the POS core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package carries two groups of errors:
//   - Generic value errors used by value-object validation
//     (ValueIsRequiredError, ValueIsInvalidError, ObjectNotFoundError)
//   - The transaction-engine taxonomy: InvalidReferenceError,
//     InvalidStateError, InvalidQuantityError, InvalidAmountError,
//     OverpaymentError, UnreconciledPaymentError, AuthenticationError,
//     InvalidBackupFormatError, PayloadTooLargeError, BackupIOError,
//     RestoreIOError, and BusyError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrOverpayment)
//   - A struct type with fields for error details
//   - Constructor functions, with a cause variant where a cause exists
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// BusyError is the only kind a caller may retry automatically; all other
// kinds require caller or operator intervention. Messages never embed
// internal paths or stack detail.
package errs
