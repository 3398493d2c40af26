package services_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/payment"
	"restopos/internal/core/domain/services"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalizedOrder(t *testing.T) *order.Order {
	t.Helper()

	burger, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Burger", kernel.NewMoney(500), 2)
	require.NoError(t, err)
	cola, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Cola", kernel.NewMoney(300), 1)
	require.NoError(t, err)

	createdAt := time.Date(2024, 1, 31, 11, 0, 0, 0, time.UTC)
	openedAt := createdAt.Add(time.Minute)
	finalizedAt := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]*order.Item{burger, cola},
		order.Finalized,
		1000,
		createdAt, &openedAt, &finalizedAt,
	)
	require.NoError(t, err)
	require.Equal(t, int64(1430), o.Total().Minor())

	return o
}

func cardPayment(t *testing.T, orderID kernel.UUID, amountMinor int64) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.TenderCard, kernel.NewMoney(amountMinor))
	require.NoError(t, err)
	return p
}

func TestReceiptRenderer_Render(t *testing.T) {
	renderer := services.NewReceiptRenderer()
	rctx := services.ReceiptContext{
		RestaurantName: "Gourmet at Home",
		Address:        "1 Main Street",
		Phone:          "555-0100",
		TableLabel:     "5",
		WaiterName:     "Dana",
	}

	t.Run("renders a finalized order", func(t *testing.T) {
		o := finalizedOrder(t)

		receipt, err := renderer.Render(o, []*payment.Payment{cardPayment(t, o.ID(), 1430)}, rctx)
		require.NoError(t, err)

		assert.Contains(t, receipt, "Gourmet at Home")
		assert.Contains(t, receipt, "2x Burger")
		assert.Contains(t, receipt, "1x Cola")
		assert.Contains(t, receipt, "Subtotal:                  13.00")
		assert.Contains(t, receipt, "Tax (10%):                  1.30")
		assert.Contains(t, receipt, "TOTAL:                     14.30")
		assert.Contains(t, receipt, "Card:                      14.30")
		assert.Contains(t, receipt, "31/01/2024 12:00:00")
		assert.NotContains(t, receipt, "Change:")

		for _, line := range strings.Split(receipt, "\n") {
			assert.LessOrEqual(t, len(line), 32, "line %q exceeds paper width", line)
		}
	})

	t.Run("cash over-tender prints the change", func(t *testing.T) {
		o := finalizedOrder(t)
		cash, err := payment.NewPayment(kernel.NewUUID(), o.ID(), payment.TenderCash, kernel.NewMoney(2000))
		require.NoError(t, err)

		receipt, err := renderer.Render(o, []*payment.Payment{cash}, rctx)
		require.NoError(t, err)

		assert.Contains(t, receipt, "Cash:                      20.00")
		assert.Contains(t, receipt, "Change:                     5.70")
	})

	t.Run("re-rendering yields an identical receipt", func(t *testing.T) {
		o := finalizedOrder(t)
		payments := []*payment.Payment{cardPayment(t, o.ID(), 1430)}

		first, err := renderer.Render(o, payments, rctx)
		require.NoError(t, err)
		second, err := renderer.Render(o, payments, rctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("handles multi-byte names within the paper width", func(t *testing.T) {
		zurek, err := order.NewItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Żurek staropolski z białą kiełbasą", kernel.NewMoney(1300), 1,
		)
		require.NoError(t, err)

		finalizedAt := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
		createdAt := finalizedAt.Add(-time.Hour)
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]*order.Item{zurek},
			order.Finalized,
			1000,
			createdAt, &createdAt, &finalizedAt,
		)
		require.NoError(t, err)

		wideCtx := services.ReceiptContext{
			RestaurantName: "Café Zażółć gęślą jaźń über alles",
			TableLabel:     "5",
			WaiterName:     "Dana",
		}

		receipt, err := renderer.Render(o, []*payment.Payment{cardPayment(t, o.ID(), o.Total().Minor())}, wideCtx)
		require.NoError(t, err)

		require.True(t, utf8.ValidString(receipt), "truncation split a rune")
		for _, line := range strings.Split(receipt, "\n") {
			assert.LessOrEqual(t, utf8.RuneCountInString(line), 32, "line %q exceeds paper width", line)
		}
		assert.Contains(t, receipt, "1x Żurek staropolski z białą ki")
	})

	t.Run("rejects orders that are not finalized", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1000)
		require.NoError(t, err)

		_, err = renderer.Render(o, nil, rctx)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects payments that do not reconcile", func(t *testing.T) {
		o := finalizedOrder(t)

		_, err := renderer.Render(o, []*payment.Payment{cardPayment(t, o.ID(), 1000)}, rctx)
		require.ErrorIs(t, err, errs.ErrUnreconciledPayment)
	})
}
