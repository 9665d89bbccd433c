package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoughSpec_TotalDoughG(t *testing.T) {
	spec := DoughSpec{BallCount: 4, BallWeightG: 265.5}

	assert.Equal(t, 1062.0, spec.TotalDoughG())
}

func TestEnvironment_Advisories(t *testing.T) {
	tests := []struct {
		temp float64
		want int
	}{
		{3.9, 1},
		{4, 0},
		{22, 0},
		{35, 0},
		{38, 1},
	}

	for _, tt := range tests {
		assert.Len(t, Environment{TemperatureC: tt.temp}.Advisories(), tt.want, "temp %.1f", tt.temp)
	}
}

func TestFermentationPlan_UsesFridge(t *testing.T) {
	assert.False(t, FermentationPlan{TotalHours: 8}.UsesFridge())
	assert.True(t, FermentationPlan{TotalHours: 24, FridgeHours: 0.5}.UsesFridge())
}

func TestTimelineResult_TotalHours(t *testing.T) {
	tl := TimelineResult{BulkHours: 1.75, FridgeHours: 16, WarmupHours: 3, ProofHours: 3.25}

	assert.Equal(t, 24.0, tl.TotalHours())
}
