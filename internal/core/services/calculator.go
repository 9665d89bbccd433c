package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/dough"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pizza-cli/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// Practical dry-yeast range. Amounts outside it are reported, not clamped.
const (
	minPracticalDryYeast = 0.0005
	maxPracticalDryYeast = 0.015
)

// CalculatorService runs the dough engine for a set of parameters.
type CalculatorService struct {
	settings driving.SettingsService
}

// NewCalculatorService creates a calculator. If settings is nil the
// calibrated default model is used.
func NewCalculatorService(settings driving.SettingsService) *CalculatorService {
	return &CalculatorService{settings: settings}
}

// model returns the configured model, falling back to the default.
func (s *CalculatorService) model() dough.Model {
	if s.settings == nil {
		return dough.DefaultModel()
	}
	m, err := s.settings.Model()
	if err != nil {
		logger.Warn("using default model: %v", err)
		return dough.DefaultModel()
	}
	return m
}

// Plan resolves yeast, ingredients and timeline for the profile parameters.
// Fermentation time counted by the yeast model is the fridge-adjusted
// effective time.
func (s *CalculatorService) Plan(ctx context.Context, profile domain.Profile) (*domain.BakePlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := s.model()
	spec := profile.Dough()
	env := profile.Environment()
	strength := profile.Strength()
	plan := profile.Plan()

	result := &domain.BakePlan{
		Dough:       spec,
		Environment: env,
		Strength:    strength,
		Plan:        plan,
	}

	logger.Section("Fermentation")
	effective, err := m.EffectiveHours(plan)
	if err != nil {
		return nil, fmt.Errorf("effective hours: %w", err)
	}
	result.EffectiveHours = effective
	logger.Debug("total %.2fh, fridge %.2fh at factor %.2f -> effective %.2fh",
		plan.TotalHours, plan.FridgeHours, plan.FridgeFactor, effective)

	logger.Section("Yeast")
	if spec.YeastPercent != nil {
		if err := dough.CheckYeastPercent(*spec.YeastPercent); err != nil {
			return nil, fmt.Errorf("yeast: %w", err)
		}
		result.YeastPercent = *spec.YeastPercent
		logger.Debug("explicit yeast %.4f%% of flour, model bypassed", result.YeastPercent*100)
	} else {
		est, err := m.EstimateYeast(spec.Yeast, env, strength, effective)
		if err != nil {
			return nil, fmt.Errorf("yeast: %w", err)
		}
		result.Estimate = &est
		result.YeastPercent = est.Percent
		logger.DebugFields("yeast model", map[string]any{
			"temperature_factor": est.TemperatureFactor,
			"strength_factor":    est.StrengthFactor,
			"time_factor":        est.TimeFactor,
			"dry_percent":        est.DryPercent,
			"percent":            est.Percent,
		})
	}

	result.Ingredients, err = dough.ComputeIngredients(spec, result.YeastPercent)
	if err != nil {
		return nil, fmt.Errorf("ingredients: %w", err)
	}

	result.Timeline, err = m.ComputeTimeline(plan, env)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}

	result.Advisories = advisories(env, spec.Yeast, result.YeastPercent)
	for _, a := range result.Advisories {
		logger.Warn("%s", a)
	}

	return result, nil
}

// EstimateYeast runs only the yeast model.
func (s *CalculatorService) EstimateYeast(
	kind domain.YeastKind,
	env domain.Environment,
	w domain.FlourStrength,
	totalHours float64,
) (domain.YeastEstimate, error) {
	return s.model().EstimateYeast(kind, env, w, totalHours)
}

// advisories collects non-fatal warnings about the inputs and the result.
func advisories(env domain.Environment, kind domain.YeastKind, yeastPercent float64) []string {
	out := env.Advisories()

	potency := kind.Potency()
	if potency == 0 {
		return out
	}
	dry := yeastPercent / potency
	if dry < minPracticalDryYeast || dry > maxPracticalDryYeast {
		out = append(out, fmt.Sprintf(
			"yeast %.3f%% of flour is outside the practical range of %.2f–%.1f%% (dry equivalent)",
			yeastPercent*100, minPracticalDryYeast*100, maxPracticalDryYeast*100))
	}
	return out
}
