package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItemTotal(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want float64
	}{
		{
			name: "applies the 20 percent tax",
			item: LineItem{Name: "apple", UnitPrice: 1.2, Quantity: 10},
			want: 14.4,
		},
		{
			name: "zero quantity totals zero",
			item: LineItem{Name: "apple", UnitPrice: 99.99, Quantity: 0},
			want: 0,
		},
		{
			name: "zero price totals zero",
			item: LineItem{Name: "freebie", UnitPrice: 0, Quantity: 7},
			want: 0,
		},
		{
			name: "single unit",
			item: LineItem{Name: "milk", UnitPrice: 1.5, Quantity: 1},
			want: 1.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.item.Total(), 1e-9)
		})
	}
}

func TestLineItemSubtotalHasNoTax(t *testing.T) {
	item := LineItem{Name: "orange", UnitPrice: 0.8, Quantity: 3}
	assert.InDelta(t, 2.4, item.Subtotal(), 1e-9)
	assert.InDelta(t, item.Subtotal()*(1+TaxRate), item.Total(), 1e-9)
}
