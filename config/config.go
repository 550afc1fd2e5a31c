// Package config loads settings for the rollout command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no file is given.
const DefaultPath = "rollout.yaml"

type Config struct {
	Goroutines int           `yaml:"goroutines" env:"ROLLOUT_GOROUTINES"`
	Episodes   int           `yaml:"episodes" env:"ROLLOUT_EPISODES"`
	Duration   time.Duration `yaml:"duration" env:"ROLLOUT_DURATION"`
	Seed       uint64        `yaml:"seed" env:"ROLLOUT_SEED"` // 0 seeds from entropy
	LogLevel   string        `yaml:"log_level" env:"ROLLOUT_LOG_LEVEL"`
	MetricsDir string        `yaml:"metrics_dir" env:"ROLLOUT_METRICS_DIR"`
}

func Default() Config {
	return Config{
		Goroutines: 4,
		Episodes:   200,
		LogLevel:   "info",
		MetricsDir: "experiments/results",
	}
}

// Load applies, in order: defaults, the YAML file at path (or DefaultPath if
// present), then ROLLOUT_* environment variables. A duration set without
// episodes switches the batch to the time budget. The result is not
// validated so that callers can still apply their own overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	episodesSet := false
	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		set, err := readFile(path, &cfg)
		if err != nil {
			return cfg, err
		}
		episodesSet = set
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	if _, ok := os.LookupEnv("ROLLOUT_EPISODES"); ok {
		episodesSet = true
	}

	if cfg.Duration > 0 && !episodesSet {
		cfg.Episodes = 0
	}
	return cfg, nil
}

// readFile decodes path into cfg and reports whether it sets episodes.
func readFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	var keys struct {
		Episodes *int `yaml:"episodes"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return keys.Episodes != nil, nil
}

func (c Config) Validate() error {
	if c.Goroutines <= 0 {
		return errors.New("goroutines must be positive")
	}
	if c.Episodes <= 0 && c.Duration <= 0 {
		return errors.New("episodes or duration must be positive")
	}
	if c.Episodes < 0 || c.Duration < 0 {
		return errors.New("episodes and duration cannot be negative")
	}
	return nil
}
