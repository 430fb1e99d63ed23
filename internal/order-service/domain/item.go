package domain

// TaxRate is the flat tax applied on top of every line item subtotal.
// It is a compile-time constant shared by all items; changing it requires
// a rebuild, which keeps totals consistent across the whole process.
const TaxRate = 0.20

// Customer is the owner of an order. Immutable after creation.
type Customer struct {
	Name string
}

// LineItem is a single priced position within an order.
//
// Numeric bounds are not validated: a negative quantity or price is
// garbage-in/garbage-out, per the registry's contract.
type LineItem struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// Subtotal returns the pre-tax amount for this item.
func (i LineItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Total returns the taxed amount for this item.
func (i LineItem) Total() float64 {
	return i.Subtotal() * (1 + TaxRate)
}
