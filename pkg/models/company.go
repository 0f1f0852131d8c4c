package models

// Company represents a single synthetic listing produced by the generator.
// Prices carry 2 decimal places, the normalized weight carries 3.
type Company struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"` // derived uppercase ticker, not guaranteed unique
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Weight float64 `json:"weight"` // in (0,1], sums to 1 across a batch
}

// MarketValue holds the weighted price averages of a company batch.
type MarketValue struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}
