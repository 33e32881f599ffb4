package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phonxs/grid"
	"github.com/katalvlaran/phonxs/units"
)

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the thermal tabulation grid for a temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			temperature, _ := cmd.Flags().GetFloat64("temperature")
			bins, _ := cmd.Flags().GetInt("bins")
			if bins < grid.MinBins {
				return fmt.Errorf("bins must be at least %d, got %d", grid.MinBins, bins)
			}

			energies, err := grid.Thermal(units.ThermalEnergy(temperature), grid.WithBins(bins))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"temperature": temperature,
					"energies":    energies,
				})
			}
			fmt.Fprintf(out, "%-6s %-14s %-14s\n", "INDEX", "ENERGY_EV", "WAVELENGTH_AA")
			for i, e := range energies {
				fmt.Fprintf(out, "%-6d %-14.6e %-14.6e\n", i, e, units.EkinToWavelength(e))
			}
			return nil
		},
	}

	cmd.Flags().Float64("temperature", 293.15, "Material temperature (K)")
	cmd.Flags().Int("bins", grid.DefaultBins, "Number of grid points")

	return cmd
}
