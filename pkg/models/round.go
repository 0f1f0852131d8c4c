package models

import "github.com/shopspring/decimal"

// RoundTo rounds v to the given number of fraction digits. Prices use 2,
// normalized weights use 3.
func RoundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
