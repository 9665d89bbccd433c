package dough

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

func roomPlan(total float64) domain.FermentationPlan {
	return domain.FermentationPlan{TotalHours: total, WarmupHours: 3, FridgeFactor: domain.DefaultFridgeFactor}
}

func TestEffectiveHours_NoFridgeIsExact(t *testing.T) {
	for _, total := range []float64{0.1, 7.3, 11, 48.25} {
		got, err := EffectiveHours(roomPlan(total))
		require.NoError(t, err)
		assert.Equal(t, total, got)
	}
}

func TestEffectiveHours_WithFridge(t *testing.T) {
	got, err := EffectiveHours(domain.FermentationPlan{
		TotalHours: 24, FridgeHours: 16, WarmupHours: 3, FridgeFactor: 0.25,
	})

	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, 1e-12)
}

func TestEffectiveHours_SlowerFridgeCountsLess(t *testing.T) {
	base := domain.FermentationPlan{TotalHours: 12, FridgeHours: 4, WarmupHours: 1, FridgeFactor: 0.25}
	slow := base
	slow.FridgeFactor = 0.05

	e1, err := EffectiveHours(base)
	require.NoError(t, err)
	e2, err := EffectiveHours(slow)
	require.NoError(t, err)

	assert.InDelta(t, 9.0, e1, 1e-12)
	assert.Less(t, e2, e1)
}

func TestComputeTimeline_WithFridgeExample(t *testing.T) {
	plan := domain.FermentationPlan{TotalHours: 24, FridgeHours: 16, WarmupHours: 3, FridgeFactor: 0.25}

	got, err := ComputeTimeline(plan, domain.Environment{TemperatureC: 25})

	require.NoError(t, err)
	assert.InDelta(t, 1.75, got.BulkHours, 1e-9)
	assert.InDelta(t, 3.25, got.ProofHours, 1e-9)
	assert.Equal(t, 16.0, got.FridgeHours)
	assert.Equal(t, 3.0, got.WarmupHours)
}

func TestComputeTimeline_NoFridgeAtReference(t *testing.T) {
	got, err := ComputeTimeline(roomPlan(10), domain.Environment{TemperatureC: 25})

	require.NoError(t, err)
	assert.InDelta(t, 5.5, got.BulkHours, 1e-9)
	assert.InDelta(t, 4.5, got.ProofHours, 1e-9)
	assert.Zero(t, got.FridgeHours)
	assert.Zero(t, got.WarmupHours, "warmup is ignored without fridge time")
}

func TestComputeTimeline_NoFridgeTemperatureShift(t *testing.T) {
	ref, err := ComputeTimeline(roomPlan(11), domain.Environment{TemperatureC: 25})
	require.NoError(t, err)

	warm, err := ComputeTimeline(roomPlan(11), domain.Environment{TemperatureC: 29})
	require.NoError(t, err)
	assert.InDelta(t, ref.BulkHours-0.2, warm.BulkHours, 1e-9)

	cold, err := ComputeTimeline(roomPlan(11), domain.Environment{TemperatureC: 5})
	require.NoError(t, err)
	assert.InDelta(t, ref.BulkHours+0.99, cold.BulkHours, 1e-9, "shift capped at a fifth of the proof")

	hot, err := ComputeTimeline(roomPlan(20), domain.Environment{TemperatureC: 60})
	require.NoError(t, err)
	assert.InDelta(t, 11.0-1.0, hot.BulkHours, 1e-9, "shift capped at one hour")
}

func TestComputeTimeline_FridgeBulkShareBounds(t *testing.T) {
	plan := domain.FermentationPlan{TotalHours: 30, FridgeHours: 18, WarmupHours: 2, FridgeFactor: 0.25}

	hot, err := ComputeTimeline(plan, domain.Environment{TemperatureC: 45})
	require.NoError(t, err)
	assert.InDelta(t, 10*0.20, hot.BulkHours, 1e-9)

	cold, err := ComputeTimeline(plan, domain.Environment{TemperatureC: -10})
	require.NoError(t, err)
	assert.InDelta(t, 10*0.60, cold.BulkHours, 1e-9)

	mild, err := ComputeTimeline(plan, domain.Environment{TemperatureC: 20})
	require.NoError(t, err)
	assert.InDelta(t, 10*0.40, mild.BulkHours, 1e-9)
}

func TestComputeTimeline_ConfiguredFridgeShareFollowsTemperature(t *testing.T) {
	plan := domain.FermentationPlan{TotalHours: 24, FridgeHours: 16, WarmupHours: 3, FridgeFactor: 0.25}
	temps := []float64{5, 20, 24, 25, 26, 30, 40}

	for _, share := range []float64{0.05, 0.1, 0.35, 0.9, 0.95} {
		m := DefaultModel().WithSettings(domain.ModelSettings{
			StrengthExponent:  0.2,
			NoFridgeBulkShare: 0.55,
			FridgeBulkShare:   share,
		})
		require.InDelta(t, share, m.FridgeBulkShare, 1e-12)

		prev := -1.0
		for i := len(temps) - 1; i >= 0; i-- {
			tl, err := m.ComputeTimeline(plan, domain.Environment{TemperatureC: temps[i]})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, tl.BulkHours, prev-1e-12,
				"share %.2f: %.0f°C must not get less bulk than a warmer room", share, temps[i])
			prev = tl.BulkHours
		}
	}
}

func TestComputeTimeline_ConfiguredFridgeShareOutsideBounds(t *testing.T) {
	plan := domain.FermentationPlan{TotalHours: 24, FridgeHours: 16, WarmupHours: 3, FridgeFactor: 0.25}
	bulkAt := func(m Model, tempC float64) float64 {
		tl, err := m.ComputeTimeline(plan, domain.Environment{TemperatureC: tempC})
		require.NoError(t, err)
		return tl.BulkHours
	}

	high := DefaultModel()
	high.FridgeBulkShare = 0.9
	assert.InDelta(t, 4.5, bulkAt(high, 20), 1e-9)
	assert.InDelta(t, 4.5, bulkAt(high, 25), 1e-9)
	assert.InDelta(t, 4.45, bulkAt(high, 26), 1e-9)

	low := DefaultModel()
	low.FridgeBulkShare = 0.1
	assert.InDelta(t, 0.75, bulkAt(low, 20), 1e-9)
	assert.InDelta(t, 0.5, bulkAt(low, 25), 1e-9)
	assert.InDelta(t, 0.5, bulkAt(low, 30), 1e-9)
}

func TestComputeTimeline_Conservation(t *testing.T) {
	for _, temp := range []float64{4, 12.5, 25, 31, 35} {
		for _, total := range []float64{4, 11, 24, 72} {
			for _, fridge := range []float64{0, 1, total / 2} {
				plan := domain.FermentationPlan{TotalHours: total, FridgeHours: fridge, WarmupHours: 1, FridgeFactor: 0.3}
				got, err := ComputeTimeline(plan, domain.Environment{TemperatureC: temp})
				require.NoError(t, err)
				assert.InDelta(t, total, got.TotalHours(), 1e-9)
				assert.GreaterOrEqual(t, got.BulkHours, 0.0)
				assert.GreaterOrEqual(t, got.ProofHours, 0.0)
			}
		}
	}
}

func TestComputeTimeline_FridgeFillsWholeBudget(t *testing.T) {
	plan := domain.FermentationPlan{TotalHours: 20, FridgeHours: 17, WarmupHours: 3, FridgeFactor: 0.25}

	got, err := ComputeTimeline(plan, domain.Environment{TemperatureC: 25})

	require.NoError(t, err)
	assert.Zero(t, got.BulkHours)
	assert.Zero(t, got.ProofHours)
}

func TestComputeTimeline_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		plan  domain.FermentationPlan
		field string
	}{
		{"zero total", domain.FermentationPlan{TotalHours: 0, FridgeFactor: 0.25}, "total_hours"},
		{"negative fridge", domain.FermentationPlan{TotalHours: 10, FridgeHours: -1, FridgeFactor: 0.25}, "fridge_hours"},
		{"negative warmup", domain.FermentationPlan{TotalHours: 10, WarmupHours: -1, FridgeFactor: 0.25}, "warmup_hours"},
		{"fridge over total", domain.FermentationPlan{TotalHours: 10, FridgeHours: 11, FridgeFactor: 0.25}, "fridge_hours"},
		{"budget overrun", domain.FermentationPlan{TotalHours: 10, FridgeHours: 8, WarmupHours: 3, FridgeFactor: 0.25}, "warmup_hours"},
		{"zero factor", domain.FermentationPlan{TotalHours: 10, FridgeFactor: 0}, "fridge_factor"},
		{"factor above one", domain.FermentationPlan{TotalHours: 10, FridgeHours: 2, FridgeFactor: 1.5}, "fridge_factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTimeline(tt.plan, domain.Environment{TemperatureC: 25})
			require.ErrorIs(t, err, domain.ErrInvalidParameter)
			field, _ := domain.InvalidField(err)
			assert.Equal(t, tt.field, field)

			_, err = EffectiveHours(tt.plan)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		})
	}
}

func TestZeroTotalHours_RejectedByYeastAndTimeline(t *testing.T) {
	_, err := ResolveYeastPercent(domain.YeastDry, domain.Environment{TemperatureC: 25}, 260, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = ComputeTimeline(domain.FermentationPlan{TotalHours: 0, FridgeFactor: 0.25}, domain.Environment{TemperatureC: 25})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
