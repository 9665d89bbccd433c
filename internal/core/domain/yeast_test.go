package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYeastKind_IsValid(t *testing.T) {
	assert.True(t, YeastDry.IsValid())
	assert.True(t, YeastFresh.IsValid())
	assert.False(t, YeastKind("").IsValid())
	assert.False(t, YeastKind("sourdough").IsValid())
}

func TestYeastKind_Potency(t *testing.T) {
	assert.Equal(t, 1.0, YeastDry.Potency())
	assert.Equal(t, 3.0, YeastFresh.Potency())
	assert.Zero(t, YeastKind("levain").Potency())
}

func TestYeastKind_Description(t *testing.T) {
	assert.Equal(t, "Dry yeast", YeastDry.Description())
	assert.Equal(t, "Fresh yeast", YeastFresh.Description())
	assert.Equal(t, "Unknown", YeastKind("x").Description())
}

func TestParseYeastKind(t *testing.T) {
	k, err := ParseYeastKind("fresh")
	require.NoError(t, err)
	assert.Equal(t, YeastFresh, k)

	_, err = ParseYeastKind("Fresh")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestAllYeastKinds(t *testing.T) {
	kinds := AllYeastKinds()

	assert.Len(t, kinds, 2)
	for _, k := range kinds {
		assert.True(t, k.IsValid())
	}
}
