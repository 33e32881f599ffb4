package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonxs",
		Short: "Multi-phonon background cross-sections",
		Long: `phonxs builds the inelastic (multi-phonon) background cross-section
curve of a crystalline material from tabulated phonon expansions and
queries it at arbitrary neutron energies or wavelengths.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "phonxs.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, trace, warn, error")
	rootCmd.PersistentFlags().Int("phonons", 0, "Phonon order (0 = auto)")
	rootCmd.PersistentFlags().Bool("include-zero-incoherent", true, "Include the zero-phonon incoherent term")
	rootCmd.PersistentFlags().Bool("only-zero-incoherent", false, "Use only the zero-phonon incoherent term")
	rootCmd.PersistentFlags().Bool("extrapolate-from-peak", true, "Crop the unreliable tail and extrapolate to the free cross-section")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGridCmd(),
		newEvalCmd(),
		newScanCmd(),
	)

	return rootCmd
}
