package synth

import (
	"strings"

	"go.uber.org/zap"

	"github.com/shubham-shewale/market-synth/pkg/models"
)

const (
	circuitBreakerMin = 0.10
	circuitBreakerMax = 0.25

	openMin = 100.0
	openMax = 1000.0

	rawWeightMin = 0.1
	rawWeightMax = 1.0
)

// CompanyGenerator produces batches of synthetic company listings.
type CompanyGenerator struct {
	logger *zap.Logger
	rand   Rand
}

func NewCompanyGenerator(logger *zap.Logger, rnd Rand) *CompanyGenerator {
	return &CompanyGenerator{
		logger: logger,
		rand:   rnd,
	}
}

// Generate produces count companies that all share a single circuit-breaker
// fraction drawn for the batch. Weights are drawn raw, then renormalized so
// the batch sums to 1. A zero count yields an empty batch; normalization is
// skipped then to avoid dividing by a zero total.
func (cg *CompanyGenerator) Generate(count int) []models.Company {
	circuitBreaker := uniform(cg.rand, circuitBreakerMin, circuitBreakerMax)

	companies := make([]models.Company, 0, count)
	totalWeight := 0.0

	for i := 0; i < count; i++ {
		name := companyName(cg.rand)
		open := models.RoundTo(uniform(cg.rand, openMin, openMax), 2)
		high := models.RoundTo(uniform(cg.rand, open, open+circuitBreaker*open), 2)
		low := models.RoundTo(uniform(cg.rand, open-circuitBreaker*open, open), 2)
		closing := models.RoundTo(uniform(cg.rand, low, high), 2)
		weight := models.RoundTo(uniform(cg.rand, rawWeightMin, rawWeightMax), 2)
		totalWeight += weight

		companies = append(companies, models.Company{
			Name:   name,
			Symbol: TickerSymbol(cg.rand, name),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closing,
			Weight: weight,
		})
	}

	if totalWeight == 0 {
		return companies
	}

	normalized := make([]models.Company, 0, len(companies))
	for _, c := range companies {
		c.Weight = models.RoundTo(c.Weight/totalWeight, 3)
		normalized = append(normalized, c)
	}

	cg.logger.Debug("Generated company batch",
		zap.Int("count", count),
		zap.Float64("circuit_breaker", circuitBreaker))

	return normalized
}

// TickerSymbol derives an uppercase symbol from the shape of the company
// name. The rules are deliberately naive and may collide or look odd;
// callers rely on them being stable, not unique:
//   - name contains a comma: first letter of the name, second letter of the
//     segment after the comma, plus a random letter
//   - name contains a hyphen: first letter of the name, first letter of the
//     segment after the hyphen, plus a random letter
//   - otherwise: the first three letters uppercased
//   - name contains "and" (or "AND"): the first two characters of the symbol
//     above plus the second letter of the text after the first "and"
func TickerSymbol(r Rand, name string) string {
	var symbol string

	switch {
	case strings.Contains(name, ","):
		rest := strings.SplitN(name, ",", 2)[1]
		symbol = upperAt(name, 0) + upperAt(rest, 1) + randomLetter(r)
	case strings.Contains(name, "-"):
		rest := strings.SplitN(name, "-", 2)[1]
		symbol = upperAt(name, 0) + upperAt(rest, 0) + randomLetter(r)
	default:
		if len(name) >= 3 {
			symbol = strings.ToUpper(name[:3])
		} else {
			symbol = strings.ToUpper(name)
		}
	}

	idx := strings.Index(name, "and")
	if idx < 0 {
		idx = strings.Index(name, "AND")
	}
	if idx >= 0 {
		rest := name[idx+3:]
		if len(symbol) >= 2 && len(rest) >= 2 {
			symbol = symbol[:2] + upperAt(rest, 1)
		}
	}

	return symbol
}

func upperAt(s string, i int) string {
	if i >= len(s) {
		return ""
	}
	return strings.ToUpper(string(s[i]))
}

// GenerateCompanies is a convenience wrapper that seeds a fresh source, so
// the same seed and count always reproduce the same batch.
func GenerateCompanies(count int, seed int64) []models.Company {
	return NewCompanyGenerator(zap.NewNop(), NewRand(seed)).Generate(count)
}
