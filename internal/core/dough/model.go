package dough

import "github.com/custodia-labs/pizza-cli/internal/core/domain"

// Model bundles the constants of the yeast and timeline heuristics.
type Model struct {
	// BaselinePercent is the dry yeast fraction of flour at the reference point.
	BaselinePercent float64

	// ReferenceTempC is the calibration temperature.
	ReferenceTempC float64

	// ReferenceStrength is the calibration flour W.
	ReferenceStrength float64

	// ReferenceHours is the calibration fermentation time.
	ReferenceHours float64

	// Q10 is the rate multiplier per 10°C.
	Q10 float64

	// StrengthExponent damps the flour strength effect.
	StrengthExponent float64

	// NoFridgeBulkShare is the bulk fraction of a schedule without fridge.
	NoFridgeBulkShare float64

	// ShiftHoursPerDegree is how many hours move between bulk and proof
	// per degree away from the reference temperature (no-fridge path).
	ShiftHoursPerDegree float64

	// MaxShiftHours caps the no-fridge shift.
	MaxShiftHours float64

	// MaxShiftFraction caps the shift as a fraction of the donor phase.
	MaxShiftFraction float64

	// FridgeBulkShare is the bulk fraction of the time outside fridge and warmup.
	FridgeBulkShare float64

	// FridgeShareStep is the change of FridgeBulkShare per degree.
	FridgeShareStep float64

	// MinFridgeBulkShare bounds the bulk fraction in warm rooms.
	MinFridgeBulkShare float64

	// MaxFridgeBulkShare bounds the bulk fraction in cold rooms.
	MaxFridgeBulkShare float64
}

// DefaultModel returns the calibrated model: 0.35% dry yeast at 25°C,
// W 260 and 12 hours.
func DefaultModel() Model {
	return Model{
		BaselinePercent:     0.0035,
		ReferenceTempC:      25,
		ReferenceStrength:   260,
		ReferenceHours:      12,
		Q10:                 2,
		StrengthExponent:    0.2,
		NoFridgeBulkShare:   0.55,
		ShiftHoursPerDegree: 0.05,
		MaxShiftHours:       1,
		MaxShiftFraction:    0.2,
		FridgeBulkShare:     0.35,
		FridgeShareStep:     0.01,
		MinFridgeBulkShare:  0.20,
		MaxFridgeBulkShare:  0.60,
	}
}

// WithSettings returns a copy of m with the configurable heuristics replaced.
// Invalid settings leave m unchanged.
func (m Model) WithSettings(s domain.ModelSettings) Model {
	if !s.IsValid() {
		return m
	}
	m.StrengthExponent = s.StrengthExponent
	m.NoFridgeBulkShare = s.NoFridgeBulkShare
	m.FridgeBulkShare = s.FridgeBulkShare
	return m
}
