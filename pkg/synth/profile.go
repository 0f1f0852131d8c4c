package synth

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shubham-shewale/market-synth/pkg/models"
)

const (
	minAgeYears = 18
	maxAgeYears = 90
)

// ProfileGenerator produces batches of synthetic personal profiles.
type ProfileGenerator struct {
	logger *zap.Logger
	rand   Rand
	clock  Clock
}

func NewProfileGenerator(logger *zap.Logger, rnd Rand, clock Clock) *ProfileGenerator {
	return &ProfileGenerator{
		logger: logger,
		rand:   rnd,
		clock:  clock,
	}
}

func (pg *ProfileGenerator) Generate(count int) []models.Profile {
	profiles := make([]models.Profile, 0, count)
	for i := 0; i < count; i++ {
		profiles = append(profiles, pg.profile())
	}

	pg.logger.Debug("Generated profile batch", zap.Int("count", count))

	return profiles
}

func (pg *ProfileGenerator) profile() models.Profile {
	sex := "M"
	first := pick(pg.rand, firstNamesMale)
	if pg.rand.Intn(2) == 0 {
		sex = "F"
		first = pick(pg.rand, firstNamesFemale)
	}
	last := pick(pg.rand, surnames)

	mail := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(first), strings.ToLower(last),
		pg.rand.Intn(100), pick(pg.rand, mailDomains))

	return models.Profile{
		Name:       first + " " + last,
		Sex:        sex,
		Mail:       mail,
		Job:        pick(pg.rand, jobs),
		BloodGroup: pick(pg.rand, models.BloodGroups),
		CurrentLocation: models.Coordinate{
			Latitude:  models.RoundTo(uniform(pg.rand, -90, 90), 6),
			Longitude: models.RoundTo(uniform(pg.rand, -180, 180), 6),
		},
		Birthdate: pg.birthdate(),
	}
}

// birthdate draws a date between minAgeYears and maxAgeYears before the
// clock's current year. Day of month is capped at 28 so any month is valid.
func (pg *ProfileGenerator) birthdate() time.Time {
	years := minAgeYears + pg.rand.Intn(maxAgeYears-minAgeYears+1)
	year := pg.clock.Now().Year() - years
	month := time.Month(1 + pg.rand.Intn(12))
	day := 1 + pg.rand.Intn(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// GenerateProfiles is a convenience wrapper that seeds a fresh source, so
// the same seed and count always reproduce the same batch.
func GenerateProfiles(count int, seed int64) []models.Profile {
	return NewProfileGenerator(zap.NewNop(), NewRand(seed), RealClock{}).Generate(count)
}
