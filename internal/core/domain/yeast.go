package domain

const unknownDescription = "Unknown"

// YeastKind identifies the leavening used in the dough.
type YeastKind string

// Available yeast kinds.
const (
	// YeastDry is instant or active dry yeast.
	YeastDry YeastKind = "dry"

	// YeastFresh is compressed fresh yeast.
	YeastFresh YeastKind = "fresh"
)

// IsValid returns true if the yeast kind is recognised.
func (k YeastKind) IsValid() bool {
	switch k {
	case YeastDry, YeastFresh:
		return true
	default:
		return false
	}
}

// Potency returns the mass multiplier relative to dry yeast needed for
// equivalent activity. Unknown kinds return 0.
func (k YeastKind) Potency() float64 {
	switch k {
	case YeastDry:
		return 1
	case YeastFresh:
		return 3
	default:
		return 0
	}
}

// String returns the string representation.
func (k YeastKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the yeast kind.
func (k YeastKind) Description() string {
	switch k {
	case YeastDry:
		return "Dry yeast"
	case YeastFresh:
		return "Fresh yeast"
	default:
		return unknownDescription
	}
}

// ParseYeastKind converts user input to a YeastKind.
func ParseYeastKind(s string) (YeastKind, error) {
	k := YeastKind(s)
	if !k.IsValid() {
		return "", InvalidParameter("yeast", "must be one of dry, fresh")
	}
	return k, nil
}

// AllYeastKinds returns all supported yeast kinds.
func AllYeastKinds() []YeastKind {
	return []YeastKind{YeastDry, YeastFresh}
}

// YeastEstimate is the yeast model output with its individual factors.
type YeastEstimate struct {
	TemperatureFactor float64 `json:"temperature_factor"`
	StrengthFactor    float64 `json:"strength_factor"`
	TimeFactor        float64 `json:"time_factor"`

	// DryPercent is the dry-yeast-equivalent fraction of flour.
	DryPercent float64 `json:"dry_percent"`

	// Percent is DryPercent scaled by the potency of the yeast kind.
	Percent float64 `json:"percent"`
}
