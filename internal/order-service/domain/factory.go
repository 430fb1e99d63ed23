package domain

import "fmt"

// DiscountType tags the discount strategy an order should be built with.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
)

// CreateOrder is the sanctioned construction path for orders: it resolves
// the discount tag to a strategy before building anything. The value is
// only meaningful for percentage discounts and is ignored otherwise.
func CreateOrder(id int, customer Customer, items []LineItem, status Status, discountType DiscountType, discountValue float64) (*Order, error) {
	var discount DiscountStrategy
	switch discountType {
	case DiscountNone:
		discount = NoDiscount{}
	case DiscountPercentage:
		discount = PercentageDiscount{Percentage: discountValue}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDiscountType, discountType)
	}
	return NewOrder(id, customer, items, status, discount), nil
}
