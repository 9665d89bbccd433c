package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Validate(t *testing.T) {
	p := DefaultCalculatorSettings().Defaults.Profile()
	assert.ErrorIs(t, p.Validate(), ErrInvalidParameter, "name is required")

	p.Name = "neapolitan"
	assert.NoError(t, p.Validate())

	p.Yeast = "levain"
	assert.ErrorIs(t, p.Validate(), ErrInvalidParameter)
}

func TestProfile_ConvertsToCoreInputs(t *testing.T) {
	pct := 0.2
	p := Profile{
		W: 300, TempC: 21, Yeast: YeastFresh, Hydration: 0.68, SaltPerKg: 28,
		BallWeightG: 250, Balls: 6, TotalHours: 48, FridgeHours: 40, WarmupHours: 4,
		FridgeFactor: 0.2, YeastPercent: &pct,
	}

	dough := p.Dough()
	assert.Equal(t, 6, dough.BallCount)
	assert.Equal(t, 250.0, dough.BallWeightG)
	assert.Equal(t, YeastFresh, dough.Yeast)
	require.NotNil(t, dough.YeastPercent)
	assert.InDelta(t, 0.002, *dough.YeastPercent, 1e-12)

	assert.Equal(t, Environment{TemperatureC: 21}, p.Environment())
	assert.Equal(t, FlourStrength(300), p.Strength())
	assert.Equal(t, FermentationPlan{TotalHours: 48, FridgeHours: 40, WarmupHours: 4, FridgeFactor: 0.2}, p.Plan())
}

func TestProfile_DoughWithoutExplicitYeast(t *testing.T) {
	p := DefaultCalculatorSettings().Defaults.Profile()

	assert.Nil(t, p.Dough().YeastPercent)
}
