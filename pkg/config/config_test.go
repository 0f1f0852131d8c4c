package config_test

import (
	"testing"

	"github.com/shubham-shewale/market-synth/pkg/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Synth.Seed != 42 {
		t.Errorf("Expected default seed 42, got %d", cfg.Synth.Seed)
	}
	if cfg.Synth.Companies != 5 {
		t.Errorf("Expected default company count 5, got %d", cfg.Synth.Companies)
	}
	if cfg.Synth.Profiles != 10000 {
		t.Errorf("Expected default profile count 10000, got %d", cfg.Synth.Profiles)
	}
	if cfg.Bench.Profiles != 20000 {
		t.Errorf("Expected default bench profile count 20000, got %d", cfg.Bench.Profiles)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SYNTH_SEED", "7")
	t.Setenv("SYNTH_COMPANIES", "12")

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Synth.Seed != 7 {
		t.Errorf("Expected seed 7 from env, got %d", cfg.Synth.Seed)
	}
	if cfg.Synth.Companies != 12 {
		t.Errorf("Expected company count 12 from env, got %d", cfg.Synth.Companies)
	}
}

func TestLoadConfig_RejectsNegativeCounts(t *testing.T) {
	t.Setenv("SYNTH_COMPANIES", "-1")

	if _, err := config.LoadConfig(); err == nil {
		t.Error("Expected error for negative company count")
	}
}
