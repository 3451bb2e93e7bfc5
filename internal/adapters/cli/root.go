package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	verbose     bool
	metricsAddr string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "charterplan",
		Short: "Charter flight route planning and quotation engine",
		Long: `Charterplan computes feasible, cost- and time-optimized itineraries
for charter aircraft and derives the full price quotation from them.

Examples:
  charterplan plan --aircraft N728CP --leg KLAX:KJFK:2026-09-12T09:00 --mode balanced
  charterplan plan compare --aircraft N728CP --leg KLAX:KJFK:2026-09-12T09:00
  charterplan fleet select --leg KTEB:EGGW:2026-10-01T08:00 --margin 18
  charterplan airports import airports.csv
  charterplan aircraft import fleet.csv`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (defaults to ./config.yaml, ./configs, /etc/charterplan)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "",
		"Serve prometheus metrics on this address for the duration of the command (e.g. :9090)")

	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewFleetCommand())
	rootCmd.AddCommand(NewAirportsCommand())
	rootCmd.AddCommand(NewAircraftCommand())

	return rootCmd
}
