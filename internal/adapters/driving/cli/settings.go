package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/present"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage calculator settings",
	Long: `View and change the default dough parameters and the tunable model
heuristics. Defaults apply whenever neither a flag nor a profile sets a value.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting. Keys:

  defaults.w, defaults.temp_c, defaults.yeast, defaults.hydration,
  defaults.salt_per_kg, defaults.ball_weight_g, defaults.balls,
  defaults.total_hours, defaults.fridge_hours, defaults.warmup_hours,
  defaults.fridge_factor, model.strength_exponent,
  model.no_fridge_bulk_share, model.fridge_bulk_share`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in defaults",
	RunE:  runSettingsReset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Step through every setting. Press Enter to keep the current value.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	values := present.SettingValues(settings)
	section := ""
	cmd.Println("Current Settings")
	cmd.Println("================")
	for _, key := range settingsService.Keys() {
		group, name, _ := strings.Cut(key, ".")
		if group != section {
			section = group
			cmd.Println()
			cmd.Printf("[%s]\n", titleCase(group))
		}
		cmd.Printf("  %-22s %s\n", name, values[key])
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	values := present.SettingValues(settings)

	reader := bufio.NewReader(cmd.InOrStdin())
	cmd.Println("Pizza Settings Wizard")
	cmd.Println("=====================")
	cmd.Println()

	changed := 0
	for _, key := range settingsService.Keys() {
		for {
			cmd.Printf("%s [%s]: ", key, values[key])
			input := readLine(reader)
			if input == "" || input == values[key] {
				break
			}
			if err := settingsService.Set(key, input); err != nil {
				cmd.Printf("  %v\n", err)
				continue
			}
			changed++
			break
		}
	}

	cmd.Println()
	cmd.Printf("Updated %d setting(s).\n", changed)
	return nil
}

func formatFloat(f float64) string {
	return present.Number(f)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
