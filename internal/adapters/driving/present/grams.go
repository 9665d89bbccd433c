package present

import (
	"github.com/shopspring/decimal"
)

// FormatGrams rounds to 0.1 g and drops a trailing ".0": 315.04 -> "315 g",
// 2.15 -> "2.2 g". Halves round away from zero.
func FormatGrams(g float64) string {
	return RoundGrams(g).String() + " g"
}

// RoundGrams rounds a weight to one decimal place.
func RoundGrams(g float64) decimal.Decimal {
	return decimal.NewFromFloat(g).Round(1)
}
