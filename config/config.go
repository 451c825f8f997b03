package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/meshmerizeme/meshmerize/spacing"
)

// Prefix is the prefix of all environment variables read by Load.
const Prefix = "MESHMERIZE"

type Config struct {
	Strategy      string     `envconfig:"STRATEGY" default:"heuristic"`
	Workers       int        `envconfig:"WORKERS" default:"10"`
	LearningRate  float64    `envconfig:"LEARNING_RATE" default:"5e-5"`
	MaxIter       int        `envconfig:"MAX_ITER" default:"50"`
	Threshold     float64    `envconfig:"THRESHOLD" default:"1e-6"`
	SubpathLength float64    `envconfig:"SUBPATH_LENGTH" default:"25"`
	Seed          uint64     `envconfig:"SEED" default:"0"`
	LogLevel      slog.Level `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.SpacingStrategy(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Spacing returns the spacing configuration for spacing ds.
func (cfg *Config) Spacing(ds float64) spacing.Config {
	sc := spacing.DefaultConfig(ds)
	sc.Workers = cfg.Workers
	sc.LearningRate = cfg.LearningRate
	sc.MaxIter = cfg.MaxIter
	sc.Threshold = cfg.Threshold
	sc.SubpathLength = cfg.SubpathLength
	sc.Seed = cfg.Seed
	return sc
}

// SpacingStrategy returns the strategy named by cfg.Strategy: heuristic, or
// gradient (alias parallel).
func (cfg *Config) SpacingStrategy() (spacing.Strategy, error) {
	switch strings.ToLower(cfg.Strategy) {
	case "heuristic":
		return spacing.Heuristic{}, nil
	case "gradient", "parallel":
		return spacing.Parallel{}, nil
	}
	return nil, fmt.Errorf("config: unknown strategy %q", cfg.Strategy)
}
