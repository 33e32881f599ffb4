package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phonxs/units"
)

type evalPoint struct {
	Energy     float64 `json:"energy_ev"`
	Wavelength float64 `json:"wavelength_aa"`
	XS         float64 `json:"xs_barn"`
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval MATERIAL.yaml VALUE [VALUE...]",
		Short: "Evaluate the background cross-section at energies (eV) or wavelengths (Å)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asWavelength, _ := cmd.Flags().GetBool("wavelength")

			points := make([]evalPoint, 0, len(args)-1)
			for _, a := range args[1:] {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil || v < 0 {
					return fmt.Errorf("invalid value %q: must be a non-negative number", a)
				}
				p := evalPoint{Energy: v, Wavelength: units.EkinToWavelength(v)}
				if asWavelength {
					p = evalPoint{Energy: units.WavelengthToEkin(v), Wavelength: v}
				}
				points = append(points, p)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c, doc, err := buildCurve(args[0], cfg, newLogger(cmd, cfg))
			if err != nil {
				return err
			}
			for i := range points {
				points[i].XS = c.XS(points[i].Energy)
			}

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"material":   doc.Material.Name,
					"saturation": c.Saturation(),
					"points":     points,
				})
			}
			for _, p := range points {
				fmt.Fprintf(out, "E=%.6e eV  lambda=%.6e Aa  xs=%.6f barn\n", p.Energy, p.Wavelength, p.XS)
			}
			return nil
		},
	}

	cmd.Flags().Bool("wavelength", false, "Interpret values as wavelengths in Å")

	return cmd
}
