package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/shubham-shewale/market-synth/pkg/config"
	"github.com/shubham-shewale/market-synth/pkg/profilestats"
	"github.com/shubham-shewale/market-synth/pkg/synth"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 2)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	winnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	clock := synth.RealClock{}
	gen := synth.NewProfileGenerator(logger, synth.NewRand(cfg.Synth.Seed), clock)
	profiles := gen.Generate(cfg.Bench.Profiles)

	maps := make([]map[string]interface{}, len(profiles))
	for i, p := range profiles {
		maps[i] = p.AsMap()
	}

	calc := profilestats.NewCalculator(clock)
	year := clock.Now().Year()

	start := time.Now()
	structRes, err := structLayoutStats(calc, profiles)
	structElapsed := time.Since(start)
	if err != nil {
		logger.Fatal("Struct layout pass failed", zap.Error(err))
	}

	start = time.Now()
	mapRes, err := mapLayoutStats(year, maps)
	mapElapsed := time.Since(start)
	if err != nil {
		logger.Fatal("Map layout pass failed", zap.Error(err))
	}

	if !structRes.agrees(mapRes) {
		logger.Error("Layouts disagree on statistics",
			zap.String("struct_blood_group", structRes.BloodGroup),
			zap.String("map_blood_group", mapRes.BloodGroup))
	}

	winner := "Struct layout"
	if mapElapsed < structElapsed {
		winner = "Map layout"
	}
	diff := structElapsed - mapElapsed
	if diff < 0 {
		diff = -diff
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Layout comparison over %d profiles", len(profiles))),
		rowStyle.Render(fmt.Sprintf("Struct layout: %s", structElapsed)),
		rowStyle.Render(fmt.Sprintf("Map layout:    %s", mapElapsed)),
		rowStyle.Render(fmt.Sprintf("Difference:    %s", diff)),
		rowStyle.Render(fmt.Sprintf("Most common blood group: %s", structRes.BloodGroup)),
		rowStyle.Render(fmt.Sprintf("Mean location: (%s, %s)", structRes.Lat, structRes.Lng)),
		rowStyle.Render(fmt.Sprintf("Oldest age: %d  Mean age: %.2f", structRes.OldestAge, structRes.MeanAge)),
		winnerStyle.Render(winner+" was faster"),
	)
	fmt.Println(boxStyle.Render(body))
}
