package errs_test

import (
	"errors"
	"testing"

	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: orderId is 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: orderId is 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("value is invalid", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("value is required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("sanitize flattens newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("text", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestTransactionTaxonomy(t *testing.T) {
	t.Run("invalid reference", func(t *testing.T) {
		err := errs.NewInvalidReferenceError("table", "t-9")

		assert.Equal(t, "invalid reference: table is t-9", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidReference)
	})

	t.Run("invalid state", func(t *testing.T) {
		err := errs.NewInvalidStateError("add an item to", "Cancelled")

		assert.Equal(t, "invalid state: cannot add an item to an order in Cancelled status", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		err := errs.NewInvalidQuantityError(0)

		assert.Equal(t, "quantity is invalid: 0 is not greater than 0", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("invalid amount", func(t *testing.T) {
		err := errs.NewInvalidAmountError(-50)

		assert.Equal(t, "amount is invalid: -50 is not greater than 0", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("overpayment", func(t *testing.T) {
		err := errs.NewOverpaymentError("card", 2000, 1430)

		assert.Equal(t, "overpayment: card tender of 2000 exceeds the 1430 remaining due", err.Error())
		require.ErrorIs(t, err, errs.ErrOverpayment)
	})

	t.Run("unreconciled payment", func(t *testing.T) {
		err := errs.NewUnreconciledPaymentError(1000, 1430)

		assert.Equal(t, "payments do not reconcile: paid 1000 of 1430 due", err.Error())
		require.ErrorIs(t, err, errs.ErrUnreconciledPayment)
	})

	t.Run("authentication", func(t *testing.T) {
		err := errs.NewAuthenticationError("session is not valid")

		assert.Equal(t, "authentication failed: session is not valid", err.Error())
		require.ErrorIs(t, err, errs.ErrAuthentication)
	})
}

func TestBackupTaxonomy(t *testing.T) {
	t.Run("invalid backup format", func(t *testing.T) {
		err := errs.NewInvalidBackupFormatError("missing required table: payments")

		assert.Equal(t, "invalid backup format: missing required table: payments", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidBackupFormat)
	})

	t.Run("payload too large", func(t *testing.T) {
		err := errs.NewPayloadTooLargeError(200, 100)

		assert.Equal(t, "payload too large: 200 bytes exceeds the 100 byte limit", err.Error())
		require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
	})

	t.Run("backup io", func(t *testing.T) {
		cause := errors.New("disk full")
		err := errs.NewBackupIOError("copy snapshot", cause)

		assert.Equal(t, "backup failed: copy snapshot (cause: disk full)", err.Error())
		require.ErrorIs(t, err, errs.ErrBackupIO)
	})

	t.Run("restore io", func(t *testing.T) {
		err := errs.NewRestoreIOError("swap store file", nil)

		assert.Equal(t, "restore failed: swap store file", err.Error())
		require.ErrorIs(t, err, errs.ErrRestoreIO)
	})

	t.Run("busy", func(t *testing.T) {
		err := errs.NewBusyError("store write barrier")

		assert.Equal(t, "resource is busy: store write barrier", err.Error())
		require.ErrorIs(t, err, errs.ErrBusy)
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works across the taxonomy", func(t *testing.T) {
		require.ErrorIs(t, errs.NewInvalidStateError("finalize", "Draft"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewOverpaymentError("digital", 1, 0), errs.ErrOverpayment)
		require.ErrorIs(t, errs.NewBusyError("gate"), errs.ErrBusy)
		require.ErrorIs(t, errs.NewRestoreIOError("stage", errors.New("x")), errs.ErrRestoreIO)
	})

	t.Run("kinds stay distinguishable", func(t *testing.T) {
		authErr := errs.NewAuthenticationError("not logged in")
		formatErr := errs.NewInvalidBackupFormatError("not a datastore file")

		require.NotErrorIs(t, authErr, errs.ErrInvalidBackupFormat)
		require.NotErrorIs(t, formatErr, errs.ErrAuthentication)
	})
}
