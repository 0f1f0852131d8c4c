package market_test

import (
	"testing"

	"github.com/shubham-shewale/market-synth/pkg/market"
	"github.com/shubham-shewale/market-synth/pkg/models"
	"github.com/shubham-shewale/market-synth/pkg/synth"
)

func sampleCompanies() []models.Company {
	return []models.Company{
		{Name: "Tech Corp", Symbol: "TCX", Open: 500.00, High: 550.00, Low: 480.00, Close: 525.00, Weight: 0.5},
		{Name: "Finance Inc", Symbol: "FIN", Open: 200.00, High: 220.00, Low: 190.00, Close: 210.00, Weight: 0.3},
		{Name: "Energy Ltd", Symbol: "ENG", Open: 300.00, High: 320.00, Low: 290.00, Close: 310.00, Weight: 0.2},
	}
}

func TestValue_WeightedAverages(t *testing.T) {
	v := market.Value(sampleCompanies())

	expected := models.MarketValue{
		Open:  370.00, // 500*0.5 + 200*0.3 + 300*0.2
		High:  405.00,
		Low:   355.00,
		Close: 387.50,
	}

	if v != expected {
		t.Errorf("Value() = %+v, expected %+v", v, expected)
	}
}

func TestValue_Empty(t *testing.T) {
	v := market.Value(nil)
	if v != (models.MarketValue{}) {
		t.Errorf("Empty batch should yield the zero value, got %+v", v)
	}
}

func TestValue_SingleFullWeight(t *testing.T) {
	c := models.Company{Name: "Solo Inc", Symbol: "SOL", Open: 123.45, High: 130.00, Low: 120.10, Close: 125.99, Weight: 1.0}
	v := market.Value([]models.Company{c})

	if v.Open != c.Open || v.High != c.High || v.Low != c.Low || v.Close != c.Close {
		t.Errorf("Single full-weight company should reproduce its own prices, got %+v", v)
	}
}

func TestValue_Rounding(t *testing.T) {
	v := market.Value(sampleCompanies())
	for _, field := range []float64{v.Open, v.High, v.Low, v.Close} {
		if models.RoundTo(field, 2) != field {
			t.Errorf("Value %v is not rounded to 2 decimals", field)
		}
	}
}

func TestValue_GeneratedBatch(t *testing.T) {
	companies := synth.GenerateCompanies(10, 42)
	v := market.Value(companies)

	// Weighted averages of positive prices must stay positive and below the
	// maximum possible high.
	if v.Open <= 0 || v.High <= 0 || v.Low <= 0 || v.Close <= 0 {
		t.Errorf("Generated batch produced non-positive market value: %+v", v)
	}
	if v.High > 1000*1.25*1.01 {
		t.Errorf("Weighted high %f exceeds the maximum possible price", v.High)
	}
}
