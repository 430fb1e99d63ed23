package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderDiscountTags(t *testing.T) {
	customer := Customer{Name: "Alice"}
	items := []LineItem{{Name: "apple", UnitPrice: 1.2, Quantity: 10}}

	t.Run("none ignores the discount value", func(t *testing.T) {
		order, err := CreateOrder(1, customer, items, StatusPending, DiscountNone, 99)
		require.NoError(t, err)
		assert.InDelta(t, 14.4, order.Total(), 1e-9)
	})

	t.Run("percentage applies the value", func(t *testing.T) {
		order, err := CreateOrder(2, customer, items, StatusPending, DiscountPercentage, 50)
		require.NoError(t, err)
		assert.InDelta(t, 7.2, order.Total(), 1e-9)
	})

	t.Run("unknown tag fails before construction", func(t *testing.T) {
		order, err := CreateOrder(3, customer, items, StatusPending, "bogus", 0)
		require.Error(t, err)
		assert.Nil(t, order)
		assert.True(t, IsUnknownDiscountType(err))
		assert.ErrorContains(t, err, "bogus")
	})
}
