// Package config loads and saves the spendlens.yaml configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Date order values accepted in spendlens.yaml.
const (
	DateOrderDayFirst   = "day-first"
	DateOrderMonthFirst = "month-first"
)

// Config represents the top-level spendlens.yaml configuration.
type Config struct {
	// DateOrder resolves ambiguous dates like 04/01/2025:
	// "day-first" (default) or "month-first".
	DateOrder string `yaml:"date_order"`
	// RulesFile points at a categorization rules YAML. Empty means the
	// built-in rule table.
	RulesFile string `yaml:"rules_file,omitempty"`
}

// Load reads a spendlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DateOrder == "" {
		cfg.DateOrder = DateOrderDayFirst
	}
	if cfg.DateOrder != DateOrderDayFirst && cfg.DateOrder != DateOrderMonthFirst {
		return nil, fmt.Errorf("invalid date_order %q", cfg.DateOrder)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DateOrder: DateOrderDayFirst,
	}
}
