package present

import (
	"encoding/json"
	"io"
	"time"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// PlanDocument is the machine-readable form of a bake plan. Gram values
// are rounded like the table; hours are exact.
type PlanDocument struct {
	Inputs         PlanInputs            `json:"inputs"`
	EffectiveHours float64               `json:"effective_hours"`
	YeastPercent   float64               `json:"yeast_percent"`
	Estimate       *domain.YeastEstimate `json:"estimate,omitempty"`
	Ingredients    IngredientGrams       `json:"ingredients"`
	Timeline       domain.TimelineResult `json:"timeline"`
	Schedule       []ScheduleEntry       `json:"schedule"`
	Advisories     []string              `json:"advisories"`
}

// PlanInputs echoes the parameters the plan was computed from.
type PlanInputs struct {
	W            float64 `json:"w"`
	TempC        float64 `json:"temp"`
	Yeast        string  `json:"yeast"`
	Hydration    float64 `json:"hydration"`
	SaltPerKg    float64 `json:"salt_per_kg"`
	BallWeightG  float64 `json:"ball_weight"`
	Balls        int     `json:"balls"`
	TotalHours   float64 `json:"total_hours"`
	FridgeHours  float64 `json:"fridge_hours"`
	WarmupHours  float64 `json:"warmup_hours"`
	FridgeFactor float64 `json:"fridge_factor"`
}

// IngredientGrams holds ingredient weights rounded to 0.1 g.
type IngredientGrams struct {
	FlourG float64 `json:"flour_g"`
	WaterG float64 `json:"water_g"`
	SaltG  float64 `json:"salt_g"`
	YeastG float64 `json:"yeast_g"`
	TotalG float64 `json:"total_g"`
}

// ScheduleEntry is one timeline phase. End is "HH:MM" or empty.
type ScheduleEntry struct {
	Phase string  `json:"phase"`
	Hours float64 `json:"hours"`
	End   string  `json:"end,omitempty"`
}

func grams(g float64) float64 {
	f, _ := RoundGrams(g).Float64()
	return f
}

// Document builds the JSON view of plan.
func Document(plan *domain.BakePlan, start time.Time) PlanDocument {
	ing := plan.Ingredients
	doc := PlanDocument{
		Inputs: PlanInputs{
			W:            float64(plan.Strength),
			TempC:        plan.Environment.TemperatureC,
			Yeast:        plan.Dough.Yeast.String(),
			Hydration:    plan.Dough.Hydration,
			SaltPerKg:    plan.Dough.SaltPerKg,
			BallWeightG:  plan.Dough.BallWeightG,
			Balls:        plan.Dough.BallCount,
			TotalHours:   plan.Plan.TotalHours,
			FridgeHours:  plan.Plan.FridgeHours,
			WarmupHours:  plan.Plan.WarmupHours,
			FridgeFactor: plan.Plan.FridgeFactor,
		},
		EffectiveHours: plan.EffectiveHours,
		YeastPercent:   plan.YeastPercent,
		Estimate:       plan.Estimate,
		Ingredients: IngredientGrams{
			FlourG: grams(ing.FlourG),
			WaterG: grams(ing.WaterG),
			SaltG:  grams(ing.SaltG),
			YeastG: grams(ing.YeastG),
			TotalG: grams(ing.TotalG()),
		},
		Timeline:   plan.Timeline,
		Advisories: plan.Advisories,
	}
	if doc.Advisories == nil {
		doc.Advisories = []string{}
	}
	for _, p := range Schedule(plan.Timeline, start) {
		entry := ScheduleEntry{Phase: p.Label, Hours: p.Hours}
		if p.HasEnd() {
			entry.End = p.End.Format("15:04")
		}
		doc.Schedule = append(doc.Schedule, entry)
	}
	return doc
}

// WriteJSON writes the indented JSON document for plan.
func WriteJSON(w io.Writer, plan *domain.BakePlan, start time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document(plan, start))
}
