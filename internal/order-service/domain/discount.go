package domain

// DiscountStrategy transforms a pre-discount total into a post-discount
// total. The set of variants is small and closed; new ones only need to
// implement Apply.
type DiscountStrategy interface {
	Apply(amount float64) float64
}

// NoDiscount leaves the amount untouched.
type NoDiscount struct{}

func (NoDiscount) Apply(amount float64) float64 { return amount }

// PercentageDiscount takes Percentage percent off the amount.
//
// The percentage is deliberately not clamped: values below 0 act as a
// surcharge and values above 100 yield a negative total.
type PercentageDiscount struct {
	Percentage float64
}

func (d PercentageDiscount) Apply(amount float64) float64 {
	return amount * (1 - d.Percentage/100)
}
