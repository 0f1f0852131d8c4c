package main

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shubham-shewale/market-synth/pkg/models"
	"github.com/shubham-shewale/market-synth/pkg/profilestats"
)

// statsResult bundles the output of one full pass of the four reducers.
type statsResult struct {
	BloodGroup string
	Lat        decimal.Decimal
	Lng        decimal.Decimal
	OldestAge  int
	MeanAge    float64
}

func (r statsResult) agrees(other statsResult) bool {
	return r.BloodGroup == other.BloodGroup &&
		r.Lat.Equal(other.Lat) &&
		r.Lng.Equal(other.Lng) &&
		r.OldestAge == other.OldestAge &&
		r.MeanAge == other.MeanAge
}

// structLayoutStats runs the canonical reducers over the fixed-schema slice.
func structLayoutStats(calc *profilestats.Calculator, profiles []models.Profile) (statsResult, error) {
	var res statsResult
	var err error

	if res.BloodGroup, err = calc.MostCommonBloodGroup(profiles); err != nil {
		return res, err
	}
	if res.Lat, res.Lng, err = calc.MeanLocation(profiles); err != nil {
		return res, err
	}
	if res.OldestAge, err = calc.OldestAge(profiles); err != nil {
		return res, err
	}
	if res.MeanAge, err = calc.MeanAge(profiles); err != nil {
		return res, err
	}

	return res, nil
}

// mapLayoutStats reimplements the same four passes over the dynamically-keyed
// representation. Kept separate from the core on purpose: the benchmark
// compares container layouts, so each side has to pay its own access costs.
func mapLayoutStats(year int, profiles []map[string]interface{}) (statsResult, error) {
	var res statsResult
	if len(profiles) == 0 {
		return res, profilestats.ErrEmptyInput
	}

	counts := make(map[string]int, len(models.BloodGroups))
	for _, p := range profiles {
		counts[p["blood_group"].(string)]++
	}
	bestCount := -1
	for group, n := range counts {
		if n > bestCount {
			res.BloodGroup = group
			bestCount = n
		}
	}

	var latSum, lngSum decimal.Decimal
	for _, p := range profiles {
		loc := p["current_location"].(models.Coordinate)
		latSum = latSum.Add(decimal.NewFromFloat(loc.Latitude))
		lngSum = lngSum.Add(decimal.NewFromFloat(loc.Longitude))
	}
	n := decimal.NewFromInt(int64(len(profiles)))
	res.Lat = latSum.Div(n)
	res.Lng = lngSum.Div(n)

	oldest := profiles[0]["birthdate"].(time.Time)
	ageSum := 0
	for _, p := range profiles {
		birthdate := p["birthdate"].(time.Time)
		if birthdate.Before(oldest) {
			oldest = birthdate
		}
		ageSum += year - birthdate.Year()
	}
	if oldest.IsZero() || oldest.Year() > year {
		return res, profilestats.ErrInvalidBirthdate
	}
	res.OldestAge = year - oldest.Year()

	if ageSum <= 0 {
		return res, profilestats.ErrInvalidAggregate
	}
	res.MeanAge = float64(ageSum) / float64(len(profiles))

	return res, nil
}
