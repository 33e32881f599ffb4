// Package config provides configuration loading for the phonxs CLI.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/phonxs/bkgd"
	"github.com/katalvlaran/phonxs/internal/logging"
)

// Config contains all phonxs configuration settings.
type Config struct {
	// Logging controls diagnostic output.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Curve holds the background cross-section construction parameters.
	Curve CurveConfig `json:"curve" yaml:"curve"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	// Level: "info" (default), "debug", "trace", "warn" or "error".
	// "debug" reports selected phonon orders and the extrapolation edge.
	Level string `json:"level" yaml:"level"`
}

// CurveConfig mirrors bkgd.Options.
type CurveConfig struct {
	// Phonons is the phonon order; 0 lets the engine choose.
	Phonons int `json:"phonons" yaml:"phonons"`

	// IncludeZeroIncoherent adds the zero-phonon incoherent term.
	IncludeZeroIncoherent bool `json:"include_zero_incoherent" yaml:"include_zero_incoherent"`

	// OnlyZeroIncoherent keeps only that term (requires IncludeZeroIncoherent).
	OnlyZeroIncoherent bool `json:"only_zero_incoherent" yaml:"only_zero_incoherent"`

	// ExtrapolateFromPeak crops the unreliable tail and extrapolates to the
	// free cross-section.
	ExtrapolateFromPeak bool `json:"extrapolate_from_peak" yaml:"extrapolate_from_peak"`
}

// Default returns a Config matching bkgd.DefaultOptions and info logging.
func Default() *Config {
	d := bkgd.DefaultOptions()
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Curve: CurveConfig{
			Phonons:               d.Phonons,
			IncludeZeroIncoherent: d.IncludeZeroIncoherent,
			OnlyZeroIncoherent:    d.OnlyZeroIncoherent,
			ExtrapolateFromPeak:   d.ExtrapolateFromPeak,
		},
	}
}

// Load loads configuration.
// Order: defaults -> path (when non-empty and present) -> environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			fileCfg, err := LoadFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
			cfg = fileCfg
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Curve.Phonons < 0 {
		return fmt.Errorf("phonons must be non-negative, got %d", c.Curve.Phonons)
	}
	if c.Curve.OnlyZeroIncoherent && !c.Curve.IncludeZeroIncoherent {
		return fmt.Errorf("only_zero_incoherent requires include_zero_incoherent")
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, warn, error, or empty for default)", c.Logging.Level)
	}

	return nil
}

// Options converts the curve section into bkgd.Options (without a logger).
func (c *Config) Options() bkgd.Options {
	return bkgd.Options{
		Phonons:               c.Curve.Phonons,
		IncludeZeroIncoherent: c.Curve.IncludeZeroIncoherent,
		OnlyZeroIncoherent:    c.Curve.OnlyZeroIncoherent,
		ExtrapolateFromPeak:   c.Curve.ExtrapolateFromPeak,
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PHONXS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	// debug-scatter switch raises verbosity to debug unless already finer
	if v := os.Getenv("PHONXS_DEBUG_SCATTER"); isTrue(v) && logging.ParseLevel(cfg.Logging.Level) > logging.ParseLevel("debug") {
		cfg.Logging.Level = "debug"
	}

	if v := os.Getenv("PHONXS_PHONONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Curve.Phonons = n
		}
	}

	if v := os.Getenv("PHONXS_INCLUDE_ZERO_INCOHERENT"); v != "" {
		cfg.Curve.IncludeZeroIncoherent = isTrue(v)
	}

	if v := os.Getenv("PHONXS_ONLY_ZERO_INCOHERENT"); v != "" {
		cfg.Curve.OnlyZeroIncoherent = isTrue(v)
	}

	if v := os.Getenv("PHONXS_EXTRAPOLATE_FROM_PEAK"); v != "" {
		cfg.Curve.ExtrapolateFromPeak = isTrue(v)
	}
}

func isTrue(v string) bool {
	return v == "true" || v == "1"
}
