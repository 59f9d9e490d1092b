package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the demo binary's settings, read from GAMETREE_* environment
// variables with defaults suitable for a full-depth tic-tac-toe run.
type Config struct {
	Depth        int    `mapstructure:"depth"`
	Algorithm    string `mapstructure:"algorithm"` // alphabeta, minimax or stepwise
	Games        int    `mapstructure:"games"`     // games against the random baseline
	StepsPerTick int    `mapstructure:"steps_per_tick"`
	LogLevel     string `mapstructure:"log_level"`
	ResultsDir   string `mapstructure:"results_dir"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("gametree")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("depth", 9)
	v.SetDefault("algorithm", "alphabeta")
	v.SetDefault("games", 3)
	v.SetDefault("steps_per_tick", 64)
	v.SetDefault("log_level", "info")
	v.SetDefault("results_dir", "results")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	switch cfg.Algorithm {
	case "alphabeta", "minimax", "stepwise":
	default:
		return nil, fmt.Errorf("unknown algorithm %q", cfg.Algorithm)
	}
	if cfg.Depth < 1 {
		return nil, fmt.Errorf("depth must be at least 1, got %d", cfg.Depth)
	}
	return &cfg, nil
}
