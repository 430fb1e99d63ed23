// Package legacy models the pre-migration order record and the adapter
// that lets it participate in the current valuation contract.
package legacy

// Product is a priced position in a legacy order. Quantity is a float
// because the old system allowed fractional quantities.
type Product struct {
	Price    float64
	Quantity float64
}

// Order is the legacy record: structurally unrelated to the current
// order aggregate, with its own untaxed, undiscounted total.
type Order struct {
	ID       int
	Client   string
	Products []Product
}

// Total sums price times quantity over all products.
func (o Order) Total() float64 {
	var sum float64
	for _, p := range o.Products {
		sum += p.Price * p.Quantity
	}
	return sum
}
