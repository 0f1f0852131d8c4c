// Package market folds generated company batches into aggregate values.
package market

import "github.com/shubham-shewale/market-synth/pkg/models"

// Value computes the weighted average of each price field across the batch,
// rounded to 2 decimal places. An empty batch yields the zero value rather
// than an error, matching the generator's zero-count case.
func Value(companies []models.Company) models.MarketValue {
	var v models.MarketValue
	for _, c := range companies {
		v.Open += c.Open * c.Weight
		v.High += c.High * c.Weight
		v.Low += c.Low * c.Weight
		v.Close += c.Close * c.Weight
	}

	v.Open = models.RoundTo(v.Open, 2)
	v.High = models.RoundTo(v.High, 2)
	v.Low = models.RoundTo(v.Low, 2)
	v.Close = models.RoundTo(v.Close, 2)

	return v
}
