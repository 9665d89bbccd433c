package domain

import (
	"strings"
	"time"
)

// Profile is a persisted set of baking parameters.
// It carries the same field set as the calc command flags.
type Profile struct {
	// ID is the unique identifier for stored profiles. Empty for file profiles.
	ID string

	// Name is the human-readable profile name.
	Name string

	// W is the flour strength index.
	W int

	// TempC is the ambient temperature in degrees Celsius.
	TempC float64

	// Yeast is the yeast kind.
	Yeast YeastKind

	// Hydration is water as a fraction of flour.
	Hydration float64

	// SaltPerKg is salt in grams per kilogram of flour.
	SaltPerKg float64

	// BallWeightG is the weight of one ball in grams.
	BallWeightG float64

	// Balls is the number of dough balls.
	Balls int

	// TotalHours is the process duration, mix to bake.
	TotalHours float64

	// FridgeHours is the cold-retard duration (0 = no fridge).
	FridgeHours float64

	// WarmupHours is the bench rest after the fridge.
	WarmupHours float64

	// FridgeFactor is the fermentation rate in the fridge relative to room.
	FridgeFactor float64

	// YeastPercent is an explicit yeast amount in percent of flour (0.35 = 0.35%).
	// Nil lets the yeast model derive it.
	YeastPercent *float64

	// Start is an optional "HH:MM" start time.
	Start string

	// CreatedAt is when the profile was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the profile was last stored.
	UpdatedAt time.Time
}

// Validate checks the fields that identify a stored profile.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return InvalidParameter("name", "must not be empty")
	}
	if !p.Yeast.IsValid() {
		return InvalidParameter("yeast", "must be one of dry, fresh")
	}
	return nil
}

// Dough returns the DoughSpec described by the profile.
func (p *Profile) Dough() DoughSpec {
	spec := DoughSpec{
		BallCount:   p.Balls,
		BallWeightG: p.BallWeightG,
		Hydration:   p.Hydration,
		SaltPerKg:   p.SaltPerKg,
		Yeast:       p.Yeast,
	}
	if p.YeastPercent != nil {
		frac := *p.YeastPercent / 100
		spec.YeastPercent = &frac
	}
	return spec
}

// Environment returns the ambient conditions described by the profile.
func (p *Profile) Environment() Environment {
	return Environment{TemperatureC: p.TempC}
}

// Strength returns the flour strength described by the profile.
func (p *Profile) Strength() FlourStrength {
	return FlourStrength(p.W)
}

// Plan returns the fermentation plan described by the profile.
func (p *Profile) Plan() FermentationPlan {
	return FermentationPlan{
		TotalHours:   p.TotalHours,
		FridgeHours:  p.FridgeHours,
		WarmupHours:  p.WarmupHours,
		FridgeFactor: p.FridgeFactor,
	}
}
