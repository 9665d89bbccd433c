package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

func TestSettingsCmd_NoService(t *testing.T) {
	restore := withServices(nil, nil, nil)
	defer restore()

	_, err := execute(t, "settings", "show")
	assert.ErrorIs(t, err, errSettingsNotConfigured)

	_, err = execute(t, "settings", "reset")
	assert.ErrorIs(t, err, errSettingsNotConfigured)
}

func TestSettingsCmd_Show(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "[Defaults]")
	assert.Contains(t, out, "[Model]")
	assert.Contains(t, out, "hydration")
	assert.Contains(t, out, "0.75")
	assert.Less(t, strings.Index(out, "[Defaults]"), strings.Index(out, "[Model]"))
}

func TestSettingsCmd_SetAndReset(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "settings", "set", "defaults.temp_c", "21.5")
	require.NoError(t, err)
	assert.Contains(t, out, "defaults.temp_c = 21.5")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.InDelta(t, 21.5, settings.Defaults.TempC, 1e-9)

	out, err = execute(t, "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings restored to defaults.")

	settings, err = settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCalculatorSettings(), *settings)
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "defaults.colour", "red"},
		{"not a number", "defaults.w", "strong"},
		{"bad yeast", "defaults.yeast", "sourdough"},
		{"share out of range", "model.fridge_bulk_share", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices(t)
			defer cleanup()

			_, err := execute(t, "settings", "set", tt.key, tt.value)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to set "+tt.key)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsCmd_Wizard(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	// Change W, retry an invalid yeast, keep everything else.
	input := "300\n\nbanana\nfresh\n" + strings.Repeat("\n", 12)
	rootCmd.SetIn(strings.NewReader(input))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "settings", "wizard")
	require.NoError(t, err)

	assert.Contains(t, out, "Pizza Settings Wizard")
	assert.Contains(t, out, "defaults.w [260]: ")
	assert.Contains(t, out, "defaults.yeast [dry]: ")
	assert.Contains(t, out, "Updated 2 setting(s).")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, 300, settings.Defaults.W)
	assert.Equal(t, domain.YeastFresh, settings.Defaults.Yeast)
}

func TestSettingsCmd_WizardEOFKeepsValues(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	rootCmd.SetIn(strings.NewReader(""))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated 0 setting(s).")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Model", titleCase("model"))
	assert.Equal(t, "", titleCase(""))
}
