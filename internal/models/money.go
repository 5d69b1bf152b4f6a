package models

import "math"

// Money is a whole-rupee amount.
type Money int64

// RoundMoney rounds half-up to the nearest whole rupee.
func RoundMoney(v float64) Money {
	return Money(math.Floor(v + 0.5))
}
