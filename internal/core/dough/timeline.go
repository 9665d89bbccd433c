package dough

import "github.com/custodia-labs/pizza-cli/internal/core/domain"

// EffectiveHours converts a plan to room-temperature equivalent hours:
// fridge time counts at FridgeFactor of the room rate. Without fridge
// time the result is exactly TotalHours.
func (m Model) EffectiveHours(plan domain.FermentationPlan) (float64, error) {
	if err := validatePlan(plan); err != nil {
		return 0, err
	}
	if !plan.UsesFridge() {
		return plan.TotalHours, nil
	}
	return (plan.TotalHours - plan.FridgeHours) + plan.FridgeHours*plan.FridgeFactor, nil
}

// ComputeTimeline splits the plan into bulk and final proof, with the
// fridge and warmup phases passed through when the plan uses the fridge.
// The phases always add up to TotalHours.
func (m Model) ComputeTimeline(plan domain.FermentationPlan, env domain.Environment) (domain.TimelineResult, error) {
	if err := validatePlan(plan); err != nil {
		return domain.TimelineResult{}, err
	}
	if !isFinite(env.TemperatureC) {
		return domain.TimelineResult{}, domain.InvalidParameter("temperature_c", "must be finite")
	}

	if !plan.UsesFridge() {
		bulk, proof := m.splitNoFridge(plan.TotalHours, env.TemperatureC)
		return domain.TimelineResult{BulkHours: bulk, ProofHours: proof}, nil
	}

	remaining := plan.TotalHours - plan.FridgeHours - plan.WarmupHours
	if remaining < 0 {
		// Rounding residue only; validatePlan rejects real overruns.
		remaining = 0
	}
	bulk := remaining * m.fridgeBulkShare(env.TemperatureC)
	return domain.TimelineResult{
		BulkHours:   bulk,
		FridgeHours: plan.FridgeHours,
		WarmupHours: plan.WarmupHours,
		ProofHours:  remaining - bulk,
	}, nil
}

// splitNoFridge divides total by NoFridgeBulkShare, then moves time from
// bulk to proof in warm rooms and from proof to bulk in cold rooms.
func (m Model) splitNoFridge(total, tempC float64) (bulk, proof float64) {
	bulk = total * m.NoFridgeBulkShare
	proof = total - bulk

	switch delta := tempC - m.ReferenceTempC; {
	case delta > 0:
		shift := min(delta*m.ShiftHoursPerDegree, m.MaxShiftHours, bulk*m.MaxShiftFraction)
		bulk -= shift
		proof += shift
	case delta < 0:
		shift := min(-delta*m.ShiftHoursPerDegree, m.MaxShiftHours, proof*m.MaxShiftFraction)
		bulk += shift
		proof -= shift
	}
	return bulk, proof
}

// fridgeBulkShare returns the bulk fraction of the non-fridge time, lower
// in warm rooms and higher in cold ones. A configured share outside
// [MinFridgeBulkShare, MaxFridgeBulkShare] widens the bound on its side, so
// the adjustment never runs against the temperature.
func (m Model) fridgeBulkShare(tempC float64) float64 {
	base := m.FridgeBulkShare
	switch delta := tempC - m.ReferenceTempC; {
	case delta > 0:
		return max(base-delta*m.FridgeShareStep, min(m.MinFridgeBulkShare, base))
	case delta < 0:
		return min(base-delta*m.FridgeShareStep, max(m.MaxFridgeBulkShare, base))
	default:
		return base
	}
}

func validatePlan(plan domain.FermentationPlan) error {
	if !isFinite(plan.TotalHours) || plan.TotalHours <= 0 {
		return domain.InvalidParameter("total_hours", "must be positive")
	}
	if !isFinite(plan.FridgeHours) || plan.FridgeHours < 0 {
		return domain.InvalidParameter("fridge_hours", "must not be negative")
	}
	if !isFinite(plan.WarmupHours) || plan.WarmupHours < 0 {
		return domain.InvalidParameter("warmup_hours", "must not be negative")
	}
	if !isFinite(plan.FridgeFactor) || plan.FridgeFactor <= 0 || plan.FridgeFactor > 1 {
		return domain.InvalidParameter("fridge_factor", "must be in (0, 1]")
	}
	if plan.FridgeHours > plan.TotalHours {
		return domain.InvalidParameter("fridge_hours", "exceeds total_hours")
	}
	if plan.UsesFridge() && plan.FridgeHours+plan.WarmupHours > plan.TotalHours {
		return domain.InvalidParameter("warmup_hours", "fridge_hours + warmup_hours exceeds total_hours")
	}
	return nil
}

// EffectiveHours runs the default model.
func EffectiveHours(plan domain.FermentationPlan) (float64, error) {
	return DefaultModel().EffectiveHours(plan)
}

// ComputeTimeline runs the default model.
func ComputeTimeline(plan domain.FermentationPlan, env domain.Environment) (domain.TimelineResult, error) {
	return DefaultModel().ComputeTimeline(plan, env)
}
