package main

import (
	"go.uber.org/zap"

	"github.com/shubham-shewale/market-synth/pkg/config"
	"github.com/shubham-shewale/market-synth/pkg/market"
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

	// 3. Generate a company batch
	gen := synth.NewCompanyGenerator(logger, synth.NewRand(cfg.Synth.Seed))
	companies := gen.Generate(cfg.Synth.Companies)

	for _, c := range companies {
		logger.Info("Generated company",
			zap.String("name", c.Name),
			zap.String("symbol", c.Symbol),
			zap.Float64("open", c.Open),
			zap.Float64("high", c.High),
			zap.Float64("low", c.Low),
			zap.Float64("close", c.Close),
			zap.Float64("weight", c.Weight))
	}

	// 4. Fold the batch into its weighted market value
	value := market.Value(companies)
	logger.Info("Weighted market value",
		zap.Int("companies", len(companies)),
		zap.Float64("open", value.Open),
		zap.Float64("high", value.High),
		zap.Float64("low", value.Low),
		zap.Float64("close", value.Close))
}
