package profilestats_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shubham-shewale/market-synth/pkg/models"
	"github.com/shubham-shewale/market-synth/pkg/profilestats"
	"github.com/shubham-shewale/market-synth/pkg/testutils"
)

var testClock = testutils.FixedClock{Current: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

func profile(blood string, lat, lng float64, birthYear int) models.Profile {
	return models.Profile{
		BloodGroup:      blood,
		CurrentLocation: models.Coordinate{Latitude: lat, Longitude: lng},
		Birthdate:       time.Date(birthYear, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestMostCommonBloodGroup(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	profiles := []models.Profile{
		profile("A+", 0, 0, 1990),
		profile("B-", 0, 0, 1985),
		profile("A+", 0, 0, 2000),
	}

	got, err := calc.MostCommonBloodGroup(profiles)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "A+" {
		t.Errorf("Expected A+, got %s", got)
	}
}

func TestMeanLocation_ExactZero(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	profiles := []models.Profile{
		profile("A+", 90, 180, 1990),
		profile("B-", -90, -180, 1990),
	}

	lat, lng, err := calc.MeanLocation(profiles)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !lat.IsZero() || !lng.IsZero() {
		t.Errorf("Expected (0,0), got (%s,%s)", lat, lng)
	}
}

func TestMeanLocation_DecimalPrecision(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	profiles := []models.Profile{
		profile("A+", 0.1, 0.2, 1990),
		profile("A+", 0.2, 0.4, 1990),
	}

	lat, lng, err := calc.MeanLocation(profiles)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// 0.1 + 0.2 does not make 0.3 in binary floats; it must here.
	if !lat.Equal(decimal.RequireFromString("0.15")) {
		t.Errorf("Expected mean latitude 0.15, got %s", lat)
	}
	if !lng.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("Expected mean longitude 0.3, got %s", lng)
	}
}

func TestOldestAge(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	profiles := []models.Profile{
		profile("A+", 0, 0, 1980),
		profile("B-", 0, 0, 1950),
		profile("O+", 0, 0, 2000),
	}

	got, err := calc.OldestAge(profiles)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 74 { // 2024 - 1950, year difference only
		t.Errorf("Expected 74, got %d", got)
	}
}

func TestOldestAge_FutureBirthdate(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	profiles := []models.Profile{profile("A+", 0, 0, 2025)}

	if _, err := calc.OldestAge(profiles); !errors.Is(err, profilestats.ErrInvalidBirthdate) {
		t.Errorf("Expected ErrInvalidBirthdate, got %v", err)
	}
}

func TestOldestAge_ZeroBirthdate(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	profiles := []models.Profile{
		profile("A+", 0, 0, 1990),
		{BloodGroup: "B-"}, // zero birthdate sorts first
	}

	if _, err := calc.OldestAge(profiles); !errors.Is(err, profilestats.ErrInvalidBirthdate) {
		t.Errorf("Expected ErrInvalidBirthdate, got %v", err)
	}
}

func TestMeanAge(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	profiles := []models.Profile{
		profile("A+", 0, 0, 1950), // 74
		profile("B-", 0, 0, 1980), // 44
	}

	got, err := calc.MeanAge(profiles)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 59.0 {
		t.Errorf("Expected mean age 59.0, got %f", got)
	}
}

func TestMeanAge_FutureBirthdate(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	profiles := []models.Profile{profile("A+", 0, 0, 2025)}

	if _, err := calc.MeanAge(profiles); !errors.Is(err, profilestats.ErrInvalidAggregate) {
		t.Errorf("Expected ErrInvalidAggregate, got %v", err)
	}
}

func TestEmptyInput_AllReducers(t *testing.T) {
	calc := profilestats.NewCalculator(testClock)

	if _, err := calc.MostCommonBloodGroup(nil); !errors.Is(err, profilestats.ErrEmptyInput) {
		t.Errorf("MostCommonBloodGroup: expected ErrEmptyInput, got %v", err)
	}
	if _, _, err := calc.MeanLocation(nil); !errors.Is(err, profilestats.ErrEmptyInput) {
		t.Errorf("MeanLocation: expected ErrEmptyInput, got %v", err)
	}
	if _, err := calc.OldestAge(nil); !errors.Is(err, profilestats.ErrEmptyInput) {
		t.Errorf("OldestAge: expected ErrEmptyInput, got %v", err)
	}
	if _, err := calc.MeanAge(nil); !errors.Is(err, profilestats.ErrEmptyInput) {
		t.Errorf("MeanAge: expected ErrEmptyInput, got %v", err)
	}
}
