package main

import (
	"go.uber.org/zap"

	"github.com/shubham-shewale/market-synth/pkg/config"
	"github.com/shubham-shewale/market-synth/pkg/profilestats"
	"github.com/shubham-shewale/market-synth/pkg/synth"
)

func main() {
	// 1. Initialize Zap Logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 2. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// 3. Generate a profile batch
	clock := synth.RealClock{}
	gen := synth.NewProfileGenerator(logger, synth.NewRand(cfg.Synth.Seed), clock)
	profiles := gen.Generate(cfg.Synth.Profiles)

	// 4. Run the four reducers
	calc := profilestats.NewCalculator(clock)

	bloodGroup, err := calc.MostCommonBloodGroup(profiles)
	if err != nil {
		logger.Fatal("Blood group reducer failed", zap.Error(err))
	}

	lat, lng, err := calc.MeanLocation(profiles)
	if err != nil {
		logger.Fatal("Mean location reducer failed", zap.Error(err))
	}

	oldest, err := calc.OldestAge(profiles)
	if err != nil {
		logger.Fatal("Oldest age reducer failed", zap.Error(err))
	}

	meanAge, err := calc.MeanAge(profiles)
	if err != nil {
		logger.Fatal("Mean age reducer failed", zap.Error(err))
	}

	logger.Info("Profile statistics",
		zap.Int("profiles", len(profiles)),
		zap.String("most_common_blood_group", bloodGroup),
		zap.String("mean_latitude", lat.String()),
		zap.String("mean_longitude", lng.String()),
		zap.Int("oldest_age", oldest),
		zap.Float64("mean_age", meanAge))
}
