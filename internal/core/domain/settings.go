package domain

// DefaultsSettings holds the parameter values used when neither a flag
// nor a profile provides one.
type DefaultsSettings struct {
	W            int
	TempC        float64
	Yeast        YeastKind
	Hydration    float64
	SaltPerKg    float64
	BallWeightG  float64
	Balls        int
	TotalHours   float64
	FridgeHours  float64
	WarmupHours  float64
	FridgeFactor float64
}

// ModelSettings overrides the heuristic constants of the calculation model.
// The calibrated baseline itself is not configurable.
type ModelSettings struct {
	// StrengthExponent controls how strongly flour W scales the yeast amount.
	StrengthExponent float64

	// NoFridgeBulkShare is the bulk fraction of a room-temperature schedule.
	NoFridgeBulkShare float64

	// FridgeBulkShare is the bulk fraction of the time left around a fridge retard.
	FridgeBulkShare float64
}

// IsValid returns true if every share lies strictly between 0 and 1 and
// the exponent is non-negative.
func (m ModelSettings) IsValid() bool {
	return m.StrengthExponent >= 0 &&
		m.NoFridgeBulkShare > 0 && m.NoFridgeBulkShare < 1 &&
		m.FridgeBulkShare > 0 && m.FridgeBulkShare < 1
}

// CalculatorSettings holds all application settings.
type CalculatorSettings struct {
	// Defaults holds fallback parameter values.
	Defaults DefaultsSettings

	// Model holds heuristic model overrides.
	Model ModelSettings
}

// DefaultCalculatorSettings returns the built-in defaults, a two-ball
// direct dough at room temperature.
func DefaultCalculatorSettings() CalculatorSettings {
	return CalculatorSettings{
		Defaults: DefaultsSettings{
			W:            260,
			TempC:        25,
			Yeast:        YeastDry,
			Hydration:    0.75,
			SaltPerKg:    20,
			BallWeightG:  280,
			Balls:        2,
			TotalHours:   11,
			FridgeHours:  0,
			WarmupHours:  3,
			FridgeFactor: DefaultFridgeFactor,
		},
		Model: ModelSettings{
			StrengthExponent:  0.2,
			NoFridgeBulkShare: 0.55,
			FridgeBulkShare:   0.35,
		},
	}
}

// Profile returns a profile populated from the defaults.
func (d DefaultsSettings) Profile() Profile {
	return Profile{
		W:            d.W,
		TempC:        d.TempC,
		Yeast:        d.Yeast,
		Hydration:    d.Hydration,
		SaltPerKg:    d.SaltPerKg,
		BallWeightG:  d.BallWeightG,
		Balls:        d.Balls,
		TotalHours:   d.TotalHours,
		FridgeHours:  d.FridgeHours,
		WarmupHours:  d.WarmupHours,
		FridgeFactor: d.FridgeFactor,
	}
}
