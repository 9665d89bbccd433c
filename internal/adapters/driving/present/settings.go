package present

import (
	"strconv"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// SettingValues formats every setting for display, keyed like the
// settings service keys.
func SettingValues(s *domain.CalculatorSettings) map[string]string {
	d := s.Defaults
	m := s.Model
	return map[string]string{
		"defaults.w":                 strconv.Itoa(d.W),
		"defaults.temp_c":            Number(d.TempC),
		"defaults.yeast":             d.Yeast.String(),
		"defaults.hydration":         Number(d.Hydration),
		"defaults.salt_per_kg":       Number(d.SaltPerKg),
		"defaults.ball_weight_g":     Number(d.BallWeightG),
		"defaults.balls":             strconv.Itoa(d.Balls),
		"defaults.total_hours":       Number(d.TotalHours),
		"defaults.fridge_hours":      Number(d.FridgeHours),
		"defaults.warmup_hours":      Number(d.WarmupHours),
		"defaults.fridge_factor":     Number(d.FridgeFactor),
		"model.strength_exponent":    Number(m.StrengthExponent),
		"model.no_fridge_bulk_share": Number(m.NoFridgeBulkShare),
		"model.fridge_bulk_share":    Number(m.FridgeBulkShare),
	}
}

// Number formats f with the fewest digits that read back exactly.
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
