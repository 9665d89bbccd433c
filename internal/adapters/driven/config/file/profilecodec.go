package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driven"
)

// Ensure ProfileCodec implements the interface.
var _ driven.ProfileCodec = (*ProfileCodec)(nil)

// Format is a profile file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from the file extension. Paths without an
// extension are JSON.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", filepath.Ext(path), domain.ErrUnsupportedFormat)
	}
}

// profileRecord is the on-disk shape of a profile. Field names match the
// calc flags.
type profileRecord struct {
	Name         string   `json:"name,omitempty" toml:"name,omitempty"`
	W            int      `json:"w" toml:"w"`
	Temp         float64  `json:"temp" toml:"temp"`
	Yeast        string   `json:"yeast" toml:"yeast"`
	Hydration    float64  `json:"hydration" toml:"hydration"`
	SaltPerKg    float64  `json:"salt_per_kg" toml:"salt_per_kg"`
	BallWeight   float64  `json:"ball_weight" toml:"ball_weight"`
	Balls        int      `json:"balls" toml:"balls"`
	TotalHours   float64  `json:"total_hours" toml:"total_hours"`
	FridgeHours  float64  `json:"fridge_hours" toml:"fridge_hours"`
	WarmupHours  float64  `json:"warmup_hours" toml:"warmup_hours"`
	FridgeFactor float64  `json:"fridge_factor" toml:"fridge_factor"`
	YeastPct     *float64 `json:"yeast_pct,omitempty" toml:"yeast_pct,omitempty"`
	Start        string   `json:"start,omitempty" toml:"start,omitempty"`
}

func toRecord(p *domain.Profile) profileRecord {
	rec := profileRecord{
		Name:         p.Name,
		W:            p.W,
		Temp:         p.TempC,
		Yeast:        p.Yeast.String(),
		Hydration:    p.Hydration,
		SaltPerKg:    p.SaltPerKg,
		BallWeight:   p.BallWeightG,
		Balls:        p.Balls,
		TotalHours:   p.TotalHours,
		FridgeHours:  p.FridgeHours,
		WarmupHours:  p.WarmupHours,
		FridgeFactor: p.FridgeFactor,
		Start:        p.Start,
	}
	if p.YeastPercent != nil {
		v := *p.YeastPercent
		rec.YeastPct = &v
	}
	return rec
}

func (r profileRecord) profile() *domain.Profile {
	return &domain.Profile{
		Name:         r.Name,
		W:            r.W,
		TempC:        r.Temp,
		Yeast:        domain.YeastKind(strings.ToLower(strings.TrimSpace(r.Yeast))),
		Hydration:    r.Hydration,
		SaltPerKg:    r.SaltPerKg,
		BallWeightG:  r.BallWeight,
		Balls:        r.Balls,
		TotalHours:   r.TotalHours,
		FridgeHours:  r.FridgeHours,
		WarmupHours:  r.WarmupHours,
		FridgeFactor: r.FridgeFactor,
		YeastPercent: r.YeastPct,
		Start:        r.Start,
	}
}

// ProfileCodec reads and writes profile files as JSON or TOML.
type ProfileCodec struct{}

// NewProfileCodec creates a profile codec.
func NewProfileCodec() *ProfileCodec {
	return &ProfileCodec{}
}

// Read decodes the profile at path over base.
func (c *ProfileCodec) Read(path string, base domain.Profile) (*domain.Profile, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rec := toRecord(&base)
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &rec)
	default:
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	p := rec.profile()
	if !p.Yeast.IsValid() {
		return nil, domain.InvalidParameter("yeast", fmt.Sprintf("unknown yeast kind %q", rec.Yeast))
	}
	p.ID = base.ID
	p.CreatedAt = base.CreatedAt
	p.UpdatedAt = base.UpdatedAt
	return p, nil
}

// Write encodes profile to path, creating parent directories as needed.
func (c *ProfileCodec) Write(path string, profile *domain.Profile) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	rec := toRecord(profile)
	var data []byte
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(rec)
	default:
		data, err = json.MarshalIndent(rec, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
