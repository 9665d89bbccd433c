package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/present"
	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// Practical input ranges enforced by the command line. The engine itself
// accepts anything physically meaningful.
const (
	minStrength  = 200
	maxStrength  = 450
	minHydration = 0.55
	maxHydration = 0.85
	maxHours     = 24 * 14
)

// calcOptions holds the calculation flags. The same options back the root
// command, "calc" and "profile save".
type calcOptions struct {
	w            int
	temp         float64
	yeast        string
	hydration    float64
	saltPerKg    float64
	ballWeight   float64
	balls        int
	totalHours   float64
	fridgeHours  float64
	warmupHours  float64
	fridgeFactor float64
	yeastPct     float64
	start        string

	profilePath string
	savePath    string
	use         string
	json        bool
}

var calcOpts calcOptions

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate ingredients and timeline",
	Long: `Calculate ingredient weights and the fermentation timeline.

Values come from, in order of precedence: flags given on the command line,
the profile (--use NAME or --profile PATH), the saved settings and the
built-in defaults.

Examples:
  # Two 280 g balls, 75% hydration, ready in 11 hours at 25°C
  pizza calc

  # Overnight cold retard, start at 18:00
  pizza calc --total-hours 24 --fridge-hours 18 --warmup-hours 3 --start 18:00

  # Fresh yeast from a profile file, overriding the temperature
  pizza calc --profile neapolitan.json --yeast fresh --temp 22`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	bindCalcFlags(calcCmd)
	rootCmd.AddCommand(calcCmd)
}

// bindCalcFlags registers the calculation flags on cmd.
func bindCalcFlags(cmd *cobra.Command) {
	d := domain.DefaultCalculatorSettings().Defaults
	f := cmd.Flags()

	bindParamFlags(f, d)
	f.StringVar(&calcOpts.profilePath, "profile", "", "load parameters from a JSON or TOML profile file")
	f.StringVar(&calcOpts.savePath, "save-profile", "", "write the resolved parameters to a profile file")
	f.StringVar(&calcOpts.use, "use", "", "load parameters from a saved profile")
	f.BoolVar(&calcOpts.json, "json", false, "output the plan as JSON")
}

// bindParamFlags registers the dough parameter flags only.
func bindParamFlags(f *pflag.FlagSet, d domain.DefaultsSettings) {
	f.IntVar(&calcOpts.w, "w", d.W, "flour strength W")
	f.Float64Var(&calcOpts.temp, "temp", d.TempC, "room temperature in °C")
	f.StringVar(&calcOpts.yeast, "yeast", d.Yeast.String(), "yeast kind: dry or fresh")
	f.Float64Var(&calcOpts.hydration, "hydration", d.Hydration, "water as a fraction of flour (0.55-0.85)")
	f.Float64Var(&calcOpts.saltPerKg, "salt-per-kg", d.SaltPerKg, "salt in grams per kg of flour")
	f.Float64Var(&calcOpts.ballWeight, "ball-weight", d.BallWeightG, "weight of one ball in grams")
	f.IntVar(&calcOpts.balls, "balls", d.Balls, "number of dough balls")
	f.Float64Var(&calcOpts.totalHours, "total-hours", d.TotalHours, "hours from mixing to baking")
	f.Float64Var(&calcOpts.fridgeHours, "fridge-hours", d.FridgeHours, "hours in the fridge (0 = no fridge)")
	f.Float64Var(&calcOpts.warmupHours, "warmup-hours", d.WarmupHours, "bench rest after the fridge in hours")
	f.Float64Var(&calcOpts.fridgeFactor, "fridge-factor", d.FridgeFactor,
		"fermentation rate in the fridge relative to room temperature")
	f.Float64Var(&calcOpts.yeastPct, "yeast-pct", 0, "fixed yeast in percent of flour, skipping the yeast model")
	f.StringVar(&calcOpts.start, "start", "", "start time HH:MM (default now)")
}

func runCalc(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil {
		return errCalculatorNotConfigured
	}

	profile, err := resolveProfile(cmd)
	if err != nil {
		return err
	}
	if err := checkRanges(&profile); err != nil {
		return err
	}
	start, err := startTime(profile.Start, time.Now())
	if err != nil {
		return err
	}

	plan, err := calculatorService.Plan(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	if calcOpts.json {
		if err := present.WriteJSON(cmd.OutOrStdout(), plan, start); err != nil {
			return err
		}
	} else {
		opts := present.Options{Start: start, Width: terminalWidth()}
		if err := present.Render(cmd.OutOrStdout(), plan, opts); err != nil {
			return err
		}
	}

	if calcOpts.savePath != "" {
		if profileService == nil {
			return errProfilesNotConfigured
		}
		if err := profileService.Export(calcOpts.savePath, &profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		cmd.PrintErrf("Profile saved to %s\n", calcOpts.savePath)
	}
	return nil
}

// resolveProfile merges built-in defaults, settings, the selected profile
// and explicitly set flags, in increasing order of precedence.
func resolveProfile(cmd *cobra.Command) (domain.Profile, error) {
	profile := domain.DefaultCalculatorSettings().Defaults.Profile()
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return domain.Profile{}, fmt.Errorf("failed to get settings: %w", err)
		}
		profile = settings.Defaults.Profile()
	}

	flags := cmd.Flags()
	if flags.Lookup("use") != nil && calcOpts.use != "" {
		if profileService == nil {
			return domain.Profile{}, errProfilesNotConfigured
		}
		stored, err := profileService.Get(cmd.Context(), calcOpts.use)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Profile{}, fmt.Errorf("profile %q not found", calcOpts.use)
			}
			return domain.Profile{}, err
		}
		profile = *stored
	}
	if flags.Lookup("profile") != nil && calcOpts.profilePath != "" {
		if profileService == nil {
			return domain.Profile{}, errProfilesNotConfigured
		}
		loaded, err := profileService.Import(calcOpts.profilePath, profile)
		if err != nil {
			return domain.Profile{}, fmt.Errorf("failed to read profile: %w", err)
		}
		profile = *loaded
	}

	if err := applyChangedFlags(flags, &profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// applyChangedFlags copies every explicitly set parameter flag onto p.
func applyChangedFlags(f *pflag.FlagSet, p *domain.Profile) error {
	if f.Changed("w") {
		p.W = calcOpts.w
	}
	if f.Changed("temp") {
		p.TempC = calcOpts.temp
	}
	if f.Changed("yeast") {
		kind, err := domain.ParseYeastKind(calcOpts.yeast)
		if err != nil {
			return err
		}
		p.Yeast = kind
	}
	if f.Changed("hydration") {
		p.Hydration = calcOpts.hydration
	}
	if f.Changed("salt-per-kg") {
		p.SaltPerKg = calcOpts.saltPerKg
	}
	if f.Changed("ball-weight") {
		p.BallWeightG = calcOpts.ballWeight
	}
	if f.Changed("balls") {
		p.Balls = calcOpts.balls
	}
	if f.Changed("total-hours") {
		p.TotalHours = calcOpts.totalHours
	}
	if f.Changed("fridge-hours") {
		p.FridgeHours = calcOpts.fridgeHours
	}
	if f.Changed("warmup-hours") {
		p.WarmupHours = calcOpts.warmupHours
	}
	if f.Changed("fridge-factor") {
		p.FridgeFactor = calcOpts.fridgeFactor
	}
	if f.Changed("yeast-pct") {
		v := calcOpts.yeastPct
		p.YeastPercent = &v
	}
	if f.Changed("start") {
		p.Start = calcOpts.start
	}
	return nil
}

// checkRanges applies the command-line limits on top of the engine's
// own validation.
func checkRanges(p *domain.Profile) error {
	if p.W < minStrength || p.W > maxStrength {
		return domain.InvalidParameter("w", fmt.Sprintf("must be between %d and %d", minStrength, maxStrength))
	}
	if p.Hydration < minHydration || p.Hydration > maxHydration {
		return domain.InvalidParameter("hydration",
			fmt.Sprintf("must be between %.2f and %.2f", minHydration, maxHydration))
	}
	if p.TotalHours <= 0 {
		return domain.InvalidParameter("total_hours", "must be > 0")
	}
	if p.TotalHours > maxHours {
		return domain.InvalidParameter("total_hours", fmt.Sprintf("must be at most %d", maxHours))
	}
	if p.FridgeHours < 0 || p.WarmupHours < 0 {
		return domain.InvalidParameter("fridge_hours", "fridge and warmup hours must be >= 0")
	}
	if p.FridgeHours > 0 && p.FridgeHours+p.WarmupHours >= p.TotalHours {
		return domain.InvalidParameter("warmup_hours", "fridge + warmup hours must be < total hours")
	}
	return nil
}

// startTime resolves the schedule start from a "HH:MM" value.
func startTime(s string, now time.Time) (time.Time, error) {
	start, ok := present.ParseStart(s, now)
	if !ok {
		return time.Time{}, domain.InvalidParameter("start", fmt.Sprintf("%q is not a HH:MM time", s))
	}
	return start, nil
}

// terminalWidth returns the stdout width, or 0 when not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
