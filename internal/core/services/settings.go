package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/dough"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyW                 = "defaults.w"
	keyTempC             = "defaults.temp_c"
	keyYeast             = "defaults.yeast"
	keyHydration         = "defaults.hydration"
	keySaltPerKg         = "defaults.salt_per_kg"
	keyBallWeightG       = "defaults.ball_weight_g"
	keyBalls             = "defaults.balls"
	keyTotalHours        = "defaults.total_hours"
	keyFridgeHours       = "defaults.fridge_hours"
	keyWarmupHours       = "defaults.warmup_hours"
	keyFridgeFactor      = "defaults.fridge_factor"
	keyStrengthExponent  = "model.strength_exponent"
	keyNoFridgeBulkShare = "model.no_fridge_bulk_share"
	keyFridgeBulkShare   = "model.fridge_bulk_share"
)

var settingKeys = []string{
	keyW, keyTempC, keyYeast, keyHydration, keySaltPerKg, keyBallWeightG, keyBalls,
	keyTotalHours, keyFridgeHours, keyWarmupHours, keyFridgeFactor,
	keyStrengthExponent, keyNoFridgeBulkShare, keyFridgeBulkShare,
}

// SettingsService manages calculator settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or malformed values fall back
// to the built-in defaults.
func (s *SettingsService) Get() (*domain.CalculatorSettings, error) {
	defaults := domain.DefaultCalculatorSettings()

	return &domain.CalculatorSettings{
		Defaults: domain.DefaultsSettings{
			W:            s.getInt(keyW, defaults.Defaults.W),
			TempC:        s.getFloat(keyTempC, defaults.Defaults.TempC),
			Yeast:        s.getYeast(defaults.Defaults.Yeast),
			Hydration:    s.getFloat(keyHydration, defaults.Defaults.Hydration),
			SaltPerKg:    s.getFloat(keySaltPerKg, defaults.Defaults.SaltPerKg),
			BallWeightG:  s.getFloat(keyBallWeightG, defaults.Defaults.BallWeightG),
			Balls:        s.getInt(keyBalls, defaults.Defaults.Balls),
			TotalHours:   s.getFloat(keyTotalHours, defaults.Defaults.TotalHours),
			FridgeHours:  s.getFloat(keyFridgeHours, defaults.Defaults.FridgeHours),
			WarmupHours:  s.getFloat(keyWarmupHours, defaults.Defaults.WarmupHours),
			FridgeFactor: s.getFloat(keyFridgeFactor, defaults.Defaults.FridgeFactor),
		},
		Model: domain.ModelSettings{
			StrengthExponent:  s.getFloat(keyStrengthExponent, defaults.Model.StrengthExponent),
			NoFridgeBulkShare: s.getFloat(keyNoFridgeBulkShare, defaults.Model.NoFridgeBulkShare),
			FridgeBulkShare:   s.getFloat(keyFridgeBulkShare, defaults.Model.FridgeBulkShare),
		},
	}, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.CalculatorSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if !settings.Model.IsValid() {
		return fmt.Errorf("model settings: %w", domain.ErrInvalidInput)
	}

	d := settings.Defaults
	values := map[string]any{
		keyW:                 d.W,
		keyTempC:             d.TempC,
		keyYeast:             d.Yeast.String(),
		keyHydration:         d.Hydration,
		keySaltPerKg:         d.SaltPerKg,
		keyBallWeightG:       d.BallWeightG,
		keyBalls:             d.Balls,
		keyTotalHours:        d.TotalHours,
		keyFridgeHours:       d.FridgeHours,
		keyWarmupHours:       d.WarmupHours,
		keyFridgeFactor:      d.FridgeFactor,
		keyStrengthExponent:  settings.Model.StrengthExponent,
		keyNoFridgeBulkShare: settings.Model.NoFridgeBulkShare,
		keyFridgeBulkShare:   settings.Model.FridgeBulkShare,
	}
	for _, key := range settingKeys {
		if err := s.configStore.Set(key, values[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// Set updates a single setting, parsing value according to the key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	d := &settings.Defaults
	m := &settings.Model
	switch key {
	case keyW:
		d.W, err = parsePositiveInt(key, value)
	case keyYeast:
		d.Yeast, err = domain.ParseYeastKind(value)
	case keyBalls:
		d.Balls, err = parsePositiveInt(key, value)
	case keyTempC:
		d.TempC, err = parseFloat(key, value)
	case keyHydration:
		d.Hydration, err = parsePositiveFloat(key, value)
	case keySaltPerKg:
		d.SaltPerKg, err = parseNonNegativeFloat(key, value)
	case keyBallWeightG:
		d.BallWeightG, err = parsePositiveFloat(key, value)
	case keyTotalHours:
		d.TotalHours, err = parsePositiveFloat(key, value)
	case keyFridgeHours:
		d.FridgeHours, err = parseNonNegativeFloat(key, value)
	case keyWarmupHours:
		d.WarmupHours, err = parseNonNegativeFloat(key, value)
	case keyFridgeFactor:
		d.FridgeFactor, err = parsePositiveFloat(key, value)
		if err == nil && d.FridgeFactor > 1 {
			err = domain.InvalidParameter(key, "must be in (0, 1]")
		}
	case keyStrengthExponent:
		m.StrengthExponent, err = parseNonNegativeFloat(key, value)
	case keyNoFridgeBulkShare:
		m.NoFridgeBulkShare, err = parseFloat(key, value)
	case keyFridgeBulkShare:
		m.FridgeBulkShare, err = parseFloat(key, value)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if err != nil {
		return err
	}
	if !m.IsValid() {
		return domain.InvalidParameter(key, "bulk shares must be between 0 and 1")
	}

	return s.Save(settings)
}

// Reset removes every stored value so the built-in defaults apply again.
func (s *SettingsService) Reset() error {
	for _, key := range settingKeys {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// Keys returns all settable keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Model returns the default model with the configured heuristics applied.
func (s *SettingsService) Model() (dough.Model, error) {
	settings, err := s.Get()
	if err != nil {
		return dough.Model{}, err
	}
	if !settings.Model.IsValid() {
		return dough.Model{}, fmt.Errorf("model settings: %w", domain.ErrInvalidInput)
	}
	return dough.DefaultModel().WithSettings(settings.Model), nil
}

// getFloat returns a numeric config value or the default.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if v, ok := s.configStore.GetFloat(key); ok {
		return v
	}
	return defaultVal
}

// getInt returns an integer config value or the default.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return defaultVal
}

// getYeast returns the configured yeast kind or the default if invalid.
func (s *SettingsService) getYeast(defaultVal domain.YeastKind) domain.YeastKind {
	k := domain.YeastKind(s.configStore.GetString(keyYeast))
	if k.IsValid() {
		return k
	}
	return defaultVal
}

func parseFloat(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.InvalidParameter(key, "must be a number")
	}
	return f, nil
}

func parsePositiveFloat(key, value string) (float64, error) {
	f, err := parseFloat(key, value)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, domain.InvalidParameter(key, "must be positive")
	}
	return f, nil
}

func parseNonNegativeFloat(key, value string) (float64, error) {
	f, err := parseFloat(key, value)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, domain.InvalidParameter(key, "must not be negative")
	}
	return f, nil
}

func parsePositiveInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, domain.InvalidParameter(key, "must be a positive integer")
	}
	return n, nil
}
