package domain

import "fmt"

// Typical ambient range for the yeast model. Temperatures outside it are
// reported as advisories, never rejected.
const (
	TypicalMinTempC = 4.0
	TypicalMaxTempC = 35.0
)

// DoughSpec describes the dough to be mixed.
type DoughSpec struct {
	// BallCount is the number of dough balls.
	BallCount int

	// BallWeightG is the weight of a single ball in grams.
	BallWeightG float64

	// Hydration is water as a fraction of flour (0.75 = 75%).
	Hydration float64

	// SaltPerKg is salt in grams per kilogram of flour.
	SaltPerKg float64

	// Yeast is the yeast kind.
	Yeast YeastKind

	// YeastPercent is an explicit yeast fraction of flour (0.0035 = 0.35%).
	// Nil means the yeast model derives it.
	YeastPercent *float64
}

// TotalDoughG returns the combined weight of all balls.
func (d DoughSpec) TotalDoughG() float64 {
	return float64(d.BallCount) * d.BallWeightG
}

// Environment holds the ambient conditions of the bake.
type Environment struct {
	// TemperatureC is the room temperature in degrees Celsius.
	TemperatureC float64
}

// Advisories returns warnings for temperatures outside the typical range
// where the yeast model loses meaning.
func (e Environment) Advisories() []string {
	var out []string
	if e.TemperatureC < TypicalMinTempC || e.TemperatureC > TypicalMaxTempC {
		out = append(out, fmt.Sprintf(
			"temperature %.1f°C is outside the typical %.0f–%.0f°C range; yeast estimates are unreliable",
			e.TemperatureC, TypicalMinTempC, TypicalMaxTempC))
	}
	return out
}

// FlourStrength is the W index of the flour (typical bread flours 180–400).
type FlourStrength float64

// DefaultFridgeFactor is the fraction of room-temperature activity
// achieved while refrigerated.
const DefaultFridgeFactor = 0.25

// FermentationPlan is the time budget for the dough, mix to bake.
type FermentationPlan struct {
	// TotalHours is the whole process duration.
	TotalHours float64

	// FridgeHours is the cold-retard duration. Zero selects the no-fridge path.
	FridgeHours float64

	// WarmupHours is the bench rest after the fridge. Ignored without fridge time.
	WarmupHours float64

	// FridgeFactor is the relative fermentation rate in the fridge.
	FridgeFactor float64
}

// UsesFridge reports whether the plan includes a cold retard.
func (p FermentationPlan) UsesFridge() bool {
	return p.FridgeHours > 0
}

// IngredientResult holds the solved ingredient masses in grams.
type IngredientResult struct {
	FlourG float64 `json:"flour_g"`
	WaterG float64 `json:"water_g"`
	SaltG  float64 `json:"salt_g"`
	YeastG float64 `json:"yeast_g"`
}

// TotalG returns the sum of all ingredient masses.
func (r IngredientResult) TotalG() float64 {
	return r.FlourG + r.WaterG + r.SaltG + r.YeastG
}

// TimelineResult holds the phase durations in hours.
type TimelineResult struct {
	BulkHours   float64 `json:"bulk_hours"`
	FridgeHours float64 `json:"fridge_hours"`
	WarmupHours float64 `json:"warmup_hours"`
	ProofHours  float64 `json:"proof_hours"`
}

// TotalHours returns the sum of all phases.
func (t TimelineResult) TotalHours() float64 {
	return t.BulkHours + t.FridgeHours + t.WarmupHours + t.ProofHours
}

// BakePlan is the complete result of one calculation request.
type BakePlan struct {
	Dough       DoughSpec
	Environment Environment
	Strength    FlourStrength
	Plan        FermentationPlan

	// EffectiveHours is the fridge-adjusted fermentation time fed to the yeast model.
	EffectiveHours float64

	// YeastPercent is the yeast fraction of flour actually used.
	YeastPercent float64

	// Estimate holds the yeast model factors. Nil when the caller supplied
	// an explicit yeast percent.
	Estimate *YeastEstimate

	Ingredients IngredientResult
	Timeline    TimelineResult

	// Advisories are non-fatal warnings about the inputs.
	Advisories []string
}
