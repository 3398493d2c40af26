package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each typed error below
// unwraps to exactly one of these.
var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")

	ErrInvalidReference    = errors.New("referenced object does not exist")
	ErrInvalidState        = errors.New("operation is not allowed in the current state")
	ErrInvalidQuantity     = errors.New("quantity is invalid")
	ErrInvalidAmount       = errors.New("amount is invalid")
	ErrOverpayment         = errors.New("payment exceeds the amount due")
	ErrUnreconciledPayment = errors.New("payments do not reconcile with the order total")
	ErrAuthentication      = errors.New("authentication failed")
	ErrInvalidBackupFormat = errors.New("backup file format is invalid")
	ErrPayloadTooLarge     = errors.New("payload is too large")
	ErrBackupIO            = errors.New("backup operation failed")
	ErrRestoreIO           = errors.New("restore operation failed")
	ErrBusy                = errors.New("resource is busy")
)

// sanitize flattens multi-line values so error messages stay single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ObjectNotFoundError reports a missing persistent object.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("object not found: %s is %s", e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error { return ErrObjectNotFound }

// ValueIsInvalidError reports a value that fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("value is invalid: %s", e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error { return ErrValueIsInvalid }

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("value is required: %s", e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error { return ErrValueIsRequired }

// InvalidReferenceError reports an order referring to a table, waiter, or
// menu item that does not exist.
type InvalidReferenceError struct {
	ParamName string
	ID        any
}

func NewInvalidReferenceError(paramName string, id any) *InvalidReferenceError {
	return &InvalidReferenceError{ParamName: paramName, ID: id}
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference: %s is %s", e.ParamName, sanitize(e.ID))
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }

// InvalidStateError reports an operation attempted against an order whose
// status forbids it.
type InvalidStateError struct {
	Operation string
	Status    string
}

func NewInvalidStateError(operation, status string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: cannot %s an order in %s status", e.Operation, e.Status)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// InvalidQuantityError reports a non-positive order item quantity.
type InvalidQuantityError struct {
	Quantity int
}

func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity is invalid: %d is not greater than 0", e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error { return ErrInvalidQuantity }

// InvalidAmountError reports a non-positive payment amount in minor units.
type InvalidAmountError struct {
	AmountMinor int64
}

func NewInvalidAmountError(amountMinor int64) *InvalidAmountError {
	return &InvalidAmountError{AmountMinor: amountMinor}
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount is invalid: %d is not greater than 0", e.AmountMinor)
}

func (e *InvalidAmountError) Unwrap() error { return ErrInvalidAmount }

// OverpaymentError reports a tender that would push cumulative payments past
// what the order allows. Amounts are minor units.
type OverpaymentError struct {
	Tender         string
	AmountMinor    int64
	RemainingMinor int64
}

func NewOverpaymentError(tender string, amountMinor, remainingMinor int64) *OverpaymentError {
	return &OverpaymentError{Tender: tender, AmountMinor: amountMinor, RemainingMinor: remainingMinor}
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("overpayment: %s tender of %d exceeds the %d remaining due", e.Tender, e.AmountMinor, e.RemainingMinor)
}

func (e *OverpaymentError) Unwrap() error { return ErrOverpayment }

// UnreconciledPaymentError reports a finalization attempt on an underpaid
// order. Amounts are minor units.
type UnreconciledPaymentError struct {
	PaidMinor int64
	DueMinor  int64
}

func NewUnreconciledPaymentError(paidMinor, dueMinor int64) *UnreconciledPaymentError {
	return &UnreconciledPaymentError{PaidMinor: paidMinor, DueMinor: dueMinor}
}

func (e *UnreconciledPaymentError) Error() string {
	return fmt.Sprintf("payments do not reconcile: paid %d of %d due", e.PaidMinor, e.DueMinor)
}

func (e *UnreconciledPaymentError) Unwrap() error { return ErrUnreconciledPayment }

// AuthenticationError reports a mutating call made without a valid session.
// Reason is operator-facing and must not carry internal detail.
type AuthenticationError struct {
	Reason string
}

func NewAuthenticationError(reason string) *AuthenticationError {
	return &AuthenticationError{Reason: reason}
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthenticationError) Unwrap() error { return ErrAuthentication }

// InvalidBackupFormatError reports a restore candidate that is not a
// recognizable snapshot of the datastore.
type InvalidBackupFormatError struct {
	Reason string
}

func NewInvalidBackupFormatError(reason string) *InvalidBackupFormatError {
	return &InvalidBackupFormatError{Reason: reason}
}

func (e *InvalidBackupFormatError) Error() string {
	return fmt.Sprintf("invalid backup format: %s", e.Reason)
}

func (e *InvalidBackupFormatError) Unwrap() error { return ErrInvalidBackupFormat }

// PayloadTooLargeError reports an upload rejected before validation because
// it exceeds the configured size cap.
type PayloadTooLargeError struct {
	SizeBytes int64
	MaxBytes  int64
}

func NewPayloadTooLargeError(sizeBytes, maxBytes int64) *PayloadTooLargeError {
	return &PayloadTooLargeError{SizeBytes: sizeBytes, MaxBytes: maxBytes}
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload too large: %d bytes exceeds the %d byte limit", e.SizeBytes, e.MaxBytes)
}

func (e *PayloadTooLargeError) Unwrap() error { return ErrPayloadTooLarge }

// BackupIOError reports a snapshot copy or bookkeeping failure.
type BackupIOError struct {
	Op    string
	Cause error
}

func NewBackupIOError(op string, cause error) *BackupIOError {
	return &BackupIOError{Op: op, Cause: cause}
}

func (e *BackupIOError) Error() string {
	return withCause(fmt.Sprintf("backup failed: %s", e.Op), e.Cause)
}

func (e *BackupIOError) Unwrap() error { return ErrBackupIO }

// RestoreIOError reports a staging write or atomic swap failure. The live
// store is untouched whenever this error is returned.
type RestoreIOError struct {
	Op    string
	Cause error
}

func NewRestoreIOError(op string, cause error) *RestoreIOError {
	return &RestoreIOError{Op: op, Cause: cause}
}

func (e *RestoreIOError) Error() string {
	return withCause(fmt.Sprintf("restore failed: %s", e.Op), e.Cause)
}

func (e *RestoreIOError) Unwrap() error { return ErrRestoreIO }

// BusyError reports that the store barrier could not be entered before the
// deadline. It is the only error in the taxonomy a caller may retry
// automatically.
type BusyError struct {
	Resource string
}

func NewBusyError(resource string) *BusyError {
	return &BusyError{Resource: resource}
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("resource is busy: %s", e.Resource)
}

func (e *BusyError) Unwrap() error { return ErrBusy }
