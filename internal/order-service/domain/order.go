package domain

import "slices"

// Valuable is anything that can price itself.
type Valuable interface {
	Total() float64
}

// Registrable is a Valuable with the identity the registry keys on.
// Both native orders and adapted legacy orders satisfy it.
type Registrable interface {
	Valuable
	ID() int
	CustomerName() string
}

// Order aggregates a customer, its line items, a status and a discount
// strategy. Fields are fixed at construction; there are no setters and
// Items returns a copy, so an order is logically immutable once built.
type Order struct {
	id       int
	customer Customer
	items    []LineItem
	status   Status
	discount DiscountStrategy
}

// NewOrder builds an order directly from its parts. Most callers should
// go through CreateOrder, which also validates the discount tag.
// A nil discount is treated as no discount.
func NewOrder(id int, customer Customer, items []LineItem, status Status, discount DiscountStrategy) *Order {
	if discount == nil {
		discount = NoDiscount{}
	}
	return &Order{
		id:       id,
		customer: customer,
		items:    slices.Clone(items),
		status:   status,
		discount: discount,
	}
}

func (o *Order) ID() int            { return o.id }
func (o *Order) Customer() Customer { return o.customer }
func (o *Order) Status() Status     { return o.status }

func (o *Order) CustomerName() string { return o.customer.Name }

// Items returns a copy of the line items, in order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Total sums the taxed item totals and applies the discount. An empty
// order totals zero. The value is re-derived on every call, never cached.
func (o *Order) Total() float64 {
	var sum float64
	for _, it := range o.items {
		sum += it.Total()
	}
	return o.discount.Apply(sum)
}
