// Package config loads the optional YAML tuning file. A missing file is
// not an error; the defaults describe a playable shop.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the simulation.
type Config struct {
	Seed   int64  `yaml:"seed"`
	DBPath string `yaml:"db_path"`
	Port   int    `yaml:"port"`

	PopulationIntervalMillis int     `yaml:"population_interval_millis"`
	DayLengthSeconds         int     `yaml:"day_length_seconds"`
	DailyUpkeep              float64 `yaml:"daily_upkeep"`
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		Seed:                     42,
		DBPath:                   "data/minimercado.db",
		Port:                     8080,
		PopulationIntervalMillis: 1200,
		DayLengthSeconds:         180,
		DailyUpkeep:              10.0,
	}
}

// Load reads the config file at path. A missing file yields Default();
// a present but invalid file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.PopulationIntervalMillis <= 0 {
		return fmt.Errorf("population_interval_millis must be positive")
	}
	if cfg.DayLengthSeconds <= 0 {
		return fmt.Errorf("day_length_seconds must be positive")
	}
	if cfg.DailyUpkeep < 0 {
		return fmt.Errorf("daily_upkeep must not be negative")
	}
	return nil
}

// PopulationInterval is the population timer period.
func (c Config) PopulationInterval() time.Duration {
	return time.Duration(c.PopulationIntervalMillis) * time.Millisecond
}

// DayLength is the soft minimum wall-clock length of one shop day.
func (c Config) DayLength() time.Duration {
	return time.Duration(c.DayLengthSeconds) * time.Second
}
