package dough

import (
	"math"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// TemperatureFactor is the Q10 scaling relative to the reference
// temperature: colder rooms need more yeast, warmer rooms less.
func (m Model) TemperatureFactor(tempC float64) float64 {
	return math.Pow(m.Q10, (m.ReferenceTempC-tempC)/10)
}

// StrengthFactor scales the yeast amount by flour strength.
func (m Model) StrengthFactor(w domain.FlourStrength) float64 {
	return math.Pow(m.ReferenceStrength/float64(w), m.StrengthExponent)
}

// TimeFactor makes the yeast amount inversely proportional to time.
func (m Model) TimeFactor(totalHours float64) float64 {
	return m.ReferenceHours / totalHours
}

// EstimateYeast runs the yeast model and returns every factor.
// totalHours is the fermentation time the yeast has to work with, usually
// the fridge-adjusted effective hours.
func (m Model) EstimateYeast(
	kind domain.YeastKind,
	env domain.Environment,
	w domain.FlourStrength,
	totalHours float64,
) (domain.YeastEstimate, error) {
	if !kind.IsValid() {
		return domain.YeastEstimate{}, domain.InvalidParameter("yeast", "must be one of dry, fresh")
	}
	if !isFinite(env.TemperatureC) {
		return domain.YeastEstimate{}, domain.InvalidParameter("temperature_c", "must be finite")
	}
	if !isFinite(float64(w)) || w <= 0 {
		return domain.YeastEstimate{}, domain.InvalidParameter("flour_strength", "must be positive")
	}
	if !isFinite(totalHours) || totalHours <= 0 {
		return domain.YeastEstimate{}, domain.InvalidParameter("total_hours", "must be positive")
	}

	est := domain.YeastEstimate{
		TemperatureFactor: m.TemperatureFactor(env.TemperatureC),
		StrengthFactor:    m.StrengthFactor(w),
		TimeFactor:        m.TimeFactor(totalHours),
	}
	if !isFinite(est.TemperatureFactor) {
		return domain.YeastEstimate{}, domain.InvalidParameter("temperature_c", "too extreme for the yeast model")
	}
	if !isFinite(est.StrengthFactor) {
		return domain.YeastEstimate{}, domain.InvalidParameter("flour_strength", "too small for the yeast model")
	}
	if !isFinite(est.TimeFactor) {
		return domain.YeastEstimate{}, domain.InvalidParameter("total_hours", "too small for the yeast model")
	}

	est.DryPercent = m.BaselinePercent * est.TemperatureFactor * est.StrengthFactor * est.TimeFactor
	est.Percent = est.DryPercent * kind.Potency()
	if !isFinite(est.Percent) {
		return domain.YeastEstimate{}, domain.InvalidParameter("yeast_percent", "model result is not finite")
	}
	return est, nil
}

// ResolveYeastPercent returns the yeast fraction of flour required for the
// given kind, temperature, flour strength and fermentation time.
func (m Model) ResolveYeastPercent(
	kind domain.YeastKind,
	env domain.Environment,
	w domain.FlourStrength,
	totalHours float64,
) (float64, error) {
	est, err := m.EstimateYeast(kind, env, w, totalHours)
	if err != nil {
		return 0, err
	}
	return est.Percent, nil
}

// CheckYeastPercent validates a caller-supplied yeast fraction, which
// bypasses the model entirely.
func CheckYeastPercent(p float64) error {
	if !isFinite(p) || p < 0 {
		return domain.InvalidParameter("yeast_percent", "must be a non-negative number")
	}
	return nil
}

// ResolveYeastPercent runs the default model.
func ResolveYeastPercent(
	kind domain.YeastKind,
	env domain.Environment,
	w domain.FlourStrength,
	totalHours float64,
) (float64, error) {
	return DefaultModel().ResolveYeastPercent(kind, env, w, totalHours)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
