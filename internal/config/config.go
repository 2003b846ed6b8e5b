// Package config provides Viper-based configuration loading for the game master.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RNGConfig selects the randomness source.
type RNGConfig struct {
	// Source is "crypto" or "seeded".
	Source string `mapstructure:"source"`
	// Seed is the seed for the "seeded" source.
	Seed uint64 `mapstructure:"seed"`
}

// CritConfig holds critical-hit check settings.
type CritConfig struct {
	// Percentage is the threshold the draw ratio is compared against.
	// It is deliberately not range-checked.
	Percentage float64 `mapstructure:"percentage"`
	// Denominator is "draw" (second draw) or "max" (element maximum).
	Denominator string `mapstructure:"denominator"`
}

// CoinConfig holds coin behaviour settings.
type CoinConfig struct {
	// CommitRule is "all_heads" or "last_flip".
	CommitRule string `mapstructure:"commit_rule"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	RNG     RNGConfig     `mapstructure:"rng"`
	Crit    CritConfig    `mapstructure:"crit"`
	Coin    CoinConfig    `mapstructure:"coin"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRNG(c.RNG); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCrit(c.Crit); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCoin(c.Coin); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateRNG(r RNGConfig) error {
	validSources := map[string]bool{"crypto": true, "seeded": true}
	if !validSources[r.Source] {
		return fmt.Errorf("rng.source must be one of [crypto, seeded], got %q", r.Source)
	}
	return nil
}

func validateCrit(c CritConfig) error {
	validDenominators := map[string]bool{"draw": true, "max": true}
	if !validDenominators[c.Denominator] {
		return fmt.Errorf("crit.denominator must be one of [draw, max], got %q", c.Denominator)
	}
	return nil
}

func validateCoin(c CoinConfig) error {
	if c.CommitRule == "" {
		return errors.New("coin.commit_rule must not be empty")
	}
	validRules := map[string]bool{"all_heads": true, "last_flip": true}
	if !validRules[c.CommitRule] {
		return fmt.Errorf("coin.commit_rule must be one of [all_heads, last_flip], got %q", c.CommitRule)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path loads defaults and
// environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with CRIT_ prefix
	v.SetEnvPrefix("CRIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("rng.source", "crypto")
	v.SetDefault("rng.seed", 0)

	v.SetDefault("crit.percentage", 75)
	v.SetDefault("crit.denominator", "draw")

	v.SetDefault("coin.commit_rule", "all_heads")
}
