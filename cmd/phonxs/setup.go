package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phonxs/bkgd"
	"github.com/katalvlaran/phonxs/curve"
	"github.com/katalvlaran/phonxs/internal/config"
	"github.com/katalvlaran/phonxs/internal/logging"
	"github.com/katalvlaran/phonxs/internal/matfile"
)

// loadConfig resolves defaults -> config file -> environment -> flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("phonons") {
		cfg.Curve.Phonons, _ = flags.GetInt("phonons")
	}
	if flags.Changed("include-zero-incoherent") {
		cfg.Curve.IncludeZeroIncoherent, _ = flags.GetBool("include-zero-incoherent")
	}
	if flags.Changed("only-zero-incoherent") {
		cfg.Curve.OnlyZeroIncoherent, _ = flags.GetBool("only-zero-incoherent")
	}
	if flags.Changed("extrapolate-from-peak") {
		cfg.Curve.ExtrapolateFromPeak, _ = flags.GetBool("extrapolate-from-peak")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}

// buildCurve loads the material document at path and builds its curve.
func buildCurve(path string, cfg *config.Config, logger *slog.Logger) (*curve.Curve, *matfile.Document, error) {
	doc, err := matfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	engine, err := doc.Engine()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	opts := cfg.Options()
	opts.Logger = logger
	c, err := bkgd.New(doc.Material, engine, nil, opts)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("curve built",
		"material", doc.Material.Name,
		"points", c.Len(),
		"edge_wavelength_aa", c.EdgeWavelength())

	return c, doc, nil
}
