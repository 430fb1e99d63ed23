package domain

import "errors"

// ErrUnknownDiscountType is returned by CreateOrder when the discount
// tag is neither "none" nor "percentage".
var ErrUnknownDiscountType = errors.New("unknown discount type")

func IsUnknownDiscountType(err error) bool {
	return errors.Is(err, ErrUnknownDiscountType)
}
