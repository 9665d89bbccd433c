package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

func baseProfile() domain.Profile {
	return domain.DefaultCalculatorSettings().Defaults.Profile()
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"dough.json", FormatJSON, false},
		{"DOUGH.JSON", FormatJSON, false},
		{"dough", FormatJSON, false},
		{"dough.toml", FormatTOML, false},
		{"dough.yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileCodec_ReadJSON_OverlaysBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neapolitan.json")
	content := `{"w": 300, "temp": 22, "yeast": "fresh", "fridge_hours": 18, "start": "09:30"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := NewProfileCodec().Read(path, baseProfile())

	require.NoError(t, err)
	assert.Equal(t, 300, p.W)
	assert.Equal(t, 22.0, p.TempC)
	assert.Equal(t, domain.YeastFresh, p.Yeast)
	assert.Equal(t, 18.0, p.FridgeHours)
	assert.Equal(t, "09:30", p.Start)
	// Absent fields keep base values.
	assert.Equal(t, 0.75, p.Hydration)
	assert.Equal(t, 280.0, p.BallWeightG)
	assert.Equal(t, 2, p.Balls)
	assert.Nil(t, p.YeastPercent)
}

func TestProfileCodec_ReadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roman.toml")
	content := "name = \"roman\"\nhydration = 0.8\nballs = 6\nyeast_pct = 0.2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := NewProfileCodec().Read(path, baseProfile())

	require.NoError(t, err)
	assert.Equal(t, "roman", p.Name)
	assert.Equal(t, 0.8, p.Hydration)
	assert.Equal(t, 6, p.Balls)
	require.NotNil(t, p.YeastPercent)
	assert.Equal(t, 0.2, *p.YeastPercent)
	assert.Equal(t, 260, p.W)
}

func TestProfileCodec_Read_InvalidYeast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"yeast": "instant"}`), 0644))

	_, err := NewProfileCodec().Read(path, baseProfile())

	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestProfileCodec_Read_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"w": "strong"`), 0644))

	_, err := NewProfileCodec().Read(path, baseProfile())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json")
}

func TestProfileCodec_Read_Missing(t *testing.T) {
	_, err := NewProfileCodec().Read(filepath.Join(t.TempDir(), "none.json"), baseProfile())

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProfileCodec_Read_Unsupported(t *testing.T) {
	_, err := NewProfileCodec().Read("dough.yaml", baseProfile())

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestProfileCodec_WriteRead_RoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "profile"+ext)
			pct := 0.15
			want := baseProfile()
			want.Name = "overnight"
			want.FridgeHours = 20
			want.TotalHours = 26
			want.YeastPercent = &pct
			want.Start = "18:00"

			codec := NewProfileCodec()
			require.NoError(t, codec.Write(path, &want))

			got, err := codec.Read(path, domain.Profile{})
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		})
	}
}

func TestProfileCodec_Write_JSONFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	p := baseProfile()

	require.NoError(t, NewProfileCodec().Write(path, &p))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{`"w"`, `"temp"`, `"salt_per_kg"`, `"ball_weight"`, `"fridge_factor"`} {
		assert.Contains(t, string(data), key)
	}
	assert.NotContains(t, string(data), `"yeast_pct"`)
}
