package order_test

import (
	"testing"

	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Draft, order.Open, order.Finalized, order.Cancelled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", order.Draft.String())
	assert.Equal(t, "Open", order.Open.String())
	assert.Equal(t, "Finalized", order.Finalized.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Open(t *testing.T) {
	t.Run("draft opens", func(t *testing.T) {
		s, err := order.Draft.Open()
		require.NoError(t, err)
		assert.Equal(t, order.Open, s)
	})

	t.Run("non-draft cannot open", func(t *testing.T) {
		for _, s := range []order.Status{order.Open, order.Finalized, order.Cancelled} {
			_, err := s.Open()
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_Finalize(t *testing.T) {
	t.Run("open finalizes", func(t *testing.T) {
		s, err := order.Open.Finalize()
		require.NoError(t, err)
		assert.Equal(t, order.Finalized, s)
	})

	t.Run("draft and terminal states cannot finalize", func(t *testing.T) {
		for _, s := range []order.Status{order.Draft, order.Finalized, order.Cancelled} {
			_, err := s.Finalize()
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("draft and open cancel", func(t *testing.T) {
		for _, from := range []order.Status{order.Draft, order.Open} {
			s, err := from.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, s)
		}
	})

	t.Run("terminal states cannot cancel", func(t *testing.T) {
		for _, s := range []order.Status{order.Finalized, order.Cancelled} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_Terminality(t *testing.T) {
	assert.False(t, order.Draft.IsTerminal())
	assert.False(t, order.Open.IsTerminal())
	assert.True(t, order.Finalized.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	require.NoError(t, order.Open.ValidateMutate("add an item to"))
	require.ErrorIs(t, order.Cancelled.ValidateMutate("add an item to"), errs.ErrInvalidState)
}
