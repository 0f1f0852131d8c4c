// Package profilestats computes aggregate statistics over profile batches.
package profilestats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shubham-shewale/market-synth/pkg/models"
)

// Clock abstracts wall time so the age statistics are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// Calculator runs the profile reducers against an injected clock.
type Calculator struct {
	clock Clock
}

func NewCalculator(clock Clock) *Calculator {
	return &Calculator{clock: clock}
}

// MostCommonBloodGroup returns the blood group with the highest frequency.
// When two groups are equally frequent the winner is implementation-defined.
func (c *Calculator) MostCommonBloodGroup(profiles []models.Profile) (string, error) {
	if len(profiles) == 0 {
		return "", ErrEmptyInput
	}

	counts := make(map[string]int, len(models.BloodGroups))
	for _, p := range profiles {
		counts[p.BloodGroup]++
	}

	best := ""
	bestCount := -1
	for group, n := range counts {
		if n > bestCount {
			best = group
			bestCount = n
		}
	}

	return best, nil
}

// MeanLocation returns the arithmetic mean latitude and longitude. The sums
// run on decimals so the result is free of binary floating error even though
// the inputs are floats.
func (c *Calculator) MeanLocation(profiles []models.Profile) (lat, lng decimal.Decimal, err error) {
	if len(profiles) == 0 {
		return decimal.Zero, decimal.Zero, ErrEmptyInput
	}

	var latSum, lngSum decimal.Decimal
	for _, p := range profiles {
		latSum = latSum.Add(decimal.NewFromFloat(p.CurrentLocation.Latitude))
		lngSum = lngSum.Add(decimal.NewFromFloat(p.CurrentLocation.Longitude))
	}

	n := decimal.NewFromInt(int64(len(profiles)))
	return latSum.Div(n), lngSum.Div(n), nil
}

// OldestAge returns the age of the record with the earliest birthdate. Age
// is the calendar-year difference only, not a full date-aware age.
func (c *Calculator) OldestAge(profiles []models.Profile) (int, error) {
	if len(profiles) == 0 {
		return 0, ErrEmptyInput
	}

	oldest := profiles[0].Birthdate
	for _, p := range profiles[1:] {
		if p.Birthdate.Before(oldest) {
			oldest = p.Birthdate
		}
	}

	year := c.clock.Now().Year()
	if oldest.IsZero() || oldest.Year() > year {
		return 0, ErrInvalidBirthdate
	}

	return year - oldest.Year(), nil
}

// MeanAge returns the mean calendar-year age across the batch. A
// non-positive age sum is rejected; that guards against batches made
// entirely of current-year or bogus birthdates.
func (c *Calculator) MeanAge(profiles []models.Profile) (float64, error) {
	if len(profiles) == 0 {
		return 0, ErrEmptyInput
	}

	year := c.clock.Now().Year()
	sum := 0
	for _, p := range profiles {
		sum += year - p.Birthdate.Year()
	}

	if sum <= 0 {
		return 0, ErrInvalidAggregate
	}

	return float64(sum) / float64(len(profiles)), nil
}
