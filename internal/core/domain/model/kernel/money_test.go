package kernel_test

import (
	"testing"

	"restopos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and sub", func(t *testing.T) {
		a := kernel.NewMoney(500)
		b := kernel.NewMoney(300)

		assert.Equal(t, int64(800), a.Add(b).Minor())
		assert.Equal(t, int64(200), a.Sub(b).Minor())
	})

	t.Run("quantity multiplication", func(t *testing.T) {
		unit := kernel.NewMoney(500)
		assert.Equal(t, int64(1000), unit.MulQuantity(2).Minor())
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsZero())
		require.NoError(t, m.ValidateNonNegative("amount"))
	})
}

func TestMoney_TaxAt(t *testing.T) {
	t.Run("ten percent on 13.00 is 1.30", func(t *testing.T) {
		subtotal := kernel.NewMoney(1300)
		assert.Equal(t, int64(130), subtotal.TaxAt(1000).Minor())
	})

	t.Run("rounds half up", func(t *testing.T) {
		// 0.05 at 15% = 0.0075 -> rounds to 0.01
		assert.Equal(t, int64(1), kernel.NewMoney(5).TaxAt(1500).Minor())
		// 0.03 at 15% = 0.0045 -> rounds to 0.00
		assert.Equal(t, int64(0), kernel.NewMoney(3).TaxAt(1400).Minor())
	})

	t.Run("zero rate yields zero tax", func(t *testing.T) {
		assert.True(t, kernel.NewMoney(9999).TaxAt(0).IsZero())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a := kernel.NewMoney(100)
	b := kernel.NewMoney(200)

	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.IsEqual(kernel.NewMoney(100)))
	assert.True(t, a.IsPositive())
	assert.True(t, a.Sub(b).IsNegative())
}

func TestMoney_Validation(t *testing.T) {
	err := kernel.NewMoney(-1).ValidateNonNegative("price")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
	assert.Contains(t, err.Error(), "-1 is below zero")
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "14.30", kernel.NewMoney(1430).String())
	assert.Equal(t, "0.05", kernel.NewMoney(5).String())
	assert.Equal(t, "-3.07", kernel.NewMoney(-307).String())
}
