package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App   AppConfig   `mapstructure:"app"`
	Synth SynthConfig `mapstructure:"synth"`
	Bench BenchConfig `mapstructure:"bench"`
}

type AppConfig struct {
	Env string `mapstructure:"env"` // e.g., "local", "prod"
}

type SynthConfig struct {
	Seed      int64 `mapstructure:"seed"`
	Companies int   `mapstructure:"companies"`
	Profiles  int   `mapstructure:"profiles"`
}

type BenchConfig struct {
	Profiles int `mapstructure:"profiles"`
}

// LoadConfig reads configuration from .env file, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. Load .env file into System Environment (if it exists)
	// This ensures variables like SYNTH_SEED are available as real env vars
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, relying on System Env Vars")
	}

	// 2. Set Defaults (12-Factor App: Dev/Prod Parity)
	v.SetDefault("app.env", "local")

	v.SetDefault("synth.seed", 42)
	v.SetDefault("synth.companies", 5)
	v.SetDefault("synth.profiles", 10000)

	v.SetDefault("bench.profiles", 20000)

	// 3. Configure Viper to read Environment Variables
	// This maps dot-notation to underscores (e.g., "synth.seed" -> "SYNTH_SEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Explicitly Bind Env Vars to Keys
	// This is crucial for Viper to map flat Env Vars (SYNTH_SEED) to nested structs (Synth.Seed)
	bindEnv(v, "app.env")
	bindEnv(v, "synth.seed", "synth.companies", "synth.profiles")
	bindEnv(v, "bench.profiles")

	// 5. Unmarshal into Struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %v", err)
	}

	// 6. Basic Validation
	if cfg.Synth.Companies < 0 || cfg.Synth.Profiles < 0 || cfg.Bench.Profiles < 0 {
		return nil, fmt.Errorf("record counts cannot be negative")
	}

	return &cfg, nil
}

// bindEnv is a helper to bind multiple keys at once
func bindEnv(v *viper.Viper, keys ...string) {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			log.Printf("Could not bind env var for key %s: %v", key, err)
		}
	}
}
