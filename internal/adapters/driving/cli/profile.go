package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

var errProfilesNotConfigured = errors.New("profile service not configured")

var (
	profileShowJSON   bool
	profileImportName string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved dough profiles",
	Long: `Save, list, show and delete named parameter sets.

Saved profiles are used with "pizza calc --use NAME". Profile files (JSON or
TOML) can be imported into and exported from the saved set.`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the given parameters under a name",
	Long: `Save the given parameters under a name. Parameters not given as flags
come from the settings defaults. Saving an existing name replaces it.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSave,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

var profileImportCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Save a profile file under a name",
	Long: `Read a JSON or TOML profile file and save it. The name comes from
--name, else from the "name" field of the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileImport,
}

var profileExportCmd = &cobra.Command{
	Use:   "export NAME PATH",
	Short: "Write a saved profile to a file",
	Long:  `Write a saved profile to a file. The extension selects JSON (.json) or TOML (.toml).`,
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileExport,
}

func init() {
	bindParamFlags(profileSaveCmd.Flags(), domain.DefaultCalculatorSettings().Defaults)
	profileShowCmd.Flags().BoolVar(&profileShowJSON, "json", false, "output as JSON")
	profileImportCmd.Flags().StringVar(&profileImportName, "name", "", "name to save the profile under")

	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileImportCmd)
	profileCmd.AddCommand(profileExportCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfilesNotConfigured
	}

	profile, err := resolveProfile(cmd)
	if err != nil {
		return err
	}
	profile.Name = args[0]

	saved, err := profileService.Save(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	cmd.Printf("Saved profile %q\n", saved.Name)
	return nil
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errProfilesNotConfigured
	}

	profiles, err := profileService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		cmd.Println("No profiles saved.")
		cmd.Println("Save one with: pizza profile save NAME [flags]")
		return nil
	}

	cmd.Println("Profiles:")
	cmd.Println()
	for i := range profiles {
		p := &profiles[i]
		cmd.Printf("  %-20s %d × %.0f g, W=%d, H=%.0f%%, %s\n",
			p.Name, p.Balls, p.BallWeightG, p.W, p.Hydration*100, hoursSummary(p))
	}
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfilesNotConfigured
	}

	p, err := getProfile(cmd, args[0])
	if err != nil {
		return err
	}

	if profileShowJSON {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Profile: %s\n", p.Name)
	cmd.Printf("  ID:            %s\n", p.ID)
	cmd.Printf("  Flour W:       %d\n", p.W)
	cmd.Printf("  Temperature:   %s °C\n", formatFloat(p.TempC))
	cmd.Printf("  Yeast:         %s\n", p.Yeast.Description())
	if p.YeastPercent != nil {
		cmd.Printf("  Yeast amount:  %s%% of flour (fixed)\n", formatFloat(*p.YeastPercent))
	}
	cmd.Printf("  Hydration:     %s\n", formatFloat(p.Hydration))
	cmd.Printf("  Salt:          %s g/kg\n", formatFloat(p.SaltPerKg))
	cmd.Printf("  Balls:         %d × %s g\n", p.Balls, formatFloat(p.BallWeightG))
	cmd.Printf("  Time:          %s\n", hoursSummary(p))
	cmd.Printf("  Fridge factor: %s\n", formatFloat(p.FridgeFactor))
	if p.Start != "" {
		cmd.Printf("  Start:         %s\n", p.Start)
	}
	cmd.Printf("  Updated:       %s\n", p.UpdatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfilesNotConfigured
	}

	if err := profileService.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("profile %q not found", args[0])
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	cmd.Printf("Deleted profile %q\n", args[0])
	return nil
}

func runProfileImport(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfilesNotConfigured
	}

	base := domain.DefaultCalculatorSettings().Defaults.Profile()
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		base = settings.Defaults.Profile()
	}

	p, err := profileService.Import(args[0], base)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	if profileImportName != "" {
		p.Name = profileImportName
	}

	saved, err := profileService.Save(cmd.Context(), *p)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	cmd.Printf("Imported profile %q from %s\n", saved.Name, args[0])
	return nil
}

func runProfileExport(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfilesNotConfigured
	}

	p, err := getProfile(cmd, args[0])
	if err != nil {
		return err
	}
	if err := profileService.Export(args[1], p); err != nil {
		return fmt.Errorf("failed to export profile: %w", err)
	}
	cmd.Printf("Exported profile %q to %s\n", p.Name, args[1])
	return nil
}

func getProfile(cmd *cobra.Command, name string) (*domain.Profile, error) {
	p, err := profileService.Get(cmd.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("profile %q not found", name)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func hoursSummary(p *domain.Profile) string {
	if p.FridgeHours > 0 {
		return fmt.Sprintf("%sh total, %sh fridge, %sh warmup",
			formatFloat(p.TotalHours), formatFloat(p.FridgeHours), formatFloat(p.WarmupHours))
	}
	return fmt.Sprintf("%sh total", formatFloat(p.TotalHours))
}
