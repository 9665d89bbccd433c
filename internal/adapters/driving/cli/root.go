package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pizza-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services used by the commands. Set by main via SetServices.
var (
	calculatorService driving.CalculatorService
	profileService    driving.ProfileService
	settingsService   driving.SettingsService
)

var verbose bool

var errCalculatorNotConfigured = errors.New("calculator service not configured")

var rootCmd = &cobra.Command{
	Use:   "pizza",
	Short: "Pizza dough calculator",
	Long: `Pizza computes ingredient weights and a fermentation timeline for
pizza dough from ball count, hydration, flour strength, temperature and
the time you have, with or without a cold retard in the fridge.

Run without a subcommand to calculate with the given flags, the same as
"pizza calc".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
	RunE: runCalc,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print model factors and debug output")
	bindCalcFlags(rootCmd)
}

// SetServices injects the driving services used by the commands.
func SetServices(
	calculator driving.CalculatorService,
	profiles driving.ProfileService,
	settings driving.SettingsService,
) {
	calculatorService = calculator
	profileService = profiles
	settingsService = settings
}

// SetVersion sets the version reported by "pizza version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Cancelling ctx stops long-running
// commands such as watch and the TUI.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
