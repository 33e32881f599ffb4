package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phonxs/grid"
	"github.com/katalvlaran/phonxs/internal/logging"
	"github.com/katalvlaran/phonxs/units"
)

// scanMargin widens the scanned range beyond the retained grid on both
// sides so both extrapolation regimes show up.
const scanMargin = 10.0

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan MATERIAL.yaml",
		Short: "Tabulate the background cross-section across and beyond its grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("points")
			if n < grid.MinBins {
				return fmt.Errorf("points must be at least %d, got %d", grid.MinBins, n)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)
			c, _, err := buildCurve(args[0], cfg, logger)
			if err != nil {
				return err
			}

			lo, hi := c.Domain()
			energies, err := grid.Logspace(lo/scanMargin, hi*scanMargin, n)
			if err != nil {
				return err
			}
			xs := c.XSMany(nil, energies)

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				pts := make([]evalPoint, len(energies))
				for i, e := range energies {
					pts[i] = evalPoint{Energy: e, Wavelength: units.EkinToWavelength(e), XS: xs[i]}
				}
				return json.NewEncoder(out).Encode(pts)
			}
			fmt.Fprintf(out, "%-14s %-14s %-12s\n", "WAVELENGTH_AA", "ENERGY_EV", "XS_BARN")
			for i, e := range energies {
				logger.Log(cmd.Context(), logging.LevelTrace, "scan point", "index", i, "energy_ev", e, "xs_barn", xs[i])
				fmt.Fprintf(out, "%-14.6e %-14.6e %-12.6f\n", units.EkinToWavelength(e), e, xs[i])
			}
			return nil
		},
	}

	cmd.Flags().Int("points", 50, "Number of scan points")

	return cmd
}
