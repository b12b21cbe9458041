package forest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceCaptureKg is the annual capture for a 40 cm, 15 m, 10 year old
// tree across 10 forests of 600 trees, worked by hand through the method:
//
//	height 49.2126 ft, diameter 15.7480 in, coefficient 0.15
//	green above ground 1830.71 lb = 830.397 kg
//	lifetime CO2 1324.48 kg, annual 132.448 kg per tree
//	79,469.0 kg per forest, 794,690 kg for ten forests
const referenceCaptureKg = 794690.064

func TestEstimateCapture_Reference(t *testing.T) {
	tree := TreeParameters{DiameterCm: 40, HeightM: 15, AgeYears: 10}
	forest := ForestParameters{TreesPerForest: DefaultTreesPerForest, ForestCount: 10}

	b, err := EstimateCapture(tree, forest)
	require.NoError(t, err)

	assert.InDelta(t, 49.2126, b.HeightFt, 0.0001)
	assert.InDelta(t, 15.7480, b.DiameterIn, 0.0001)
	assert.Equal(t, LargeTreeCoefficient, b.Coefficient)
	assert.InDelta(t, 830.397, b.GreenWeightAboveKg, 0.001)
	assert.InDelta(t, 996.477, b.GreenWeightTotalKg, 0.001)
	assert.InDelta(t, 722.445, b.DryWeightKg, 0.001)
	assert.InDelta(t, 361.223, b.CarbonKg, 0.001)
	assert.InDelta(t, 1324.483, b.LifetimeCO2Kg, 0.001)
	assert.InDelta(t, 132.448, b.AnnualCO2PerTreeKg, 0.001)
	assert.InDelta(t, 79469.006, b.AnnualCO2PerForestKg, 0.001)
	assert.InDelta(t, referenceCaptureKg, b.TotalAnnualCO2Kg, 0.01)
	assert.Equal(t, "795", FormatKilotons(b.TotalAnnualCO2Kg))
}

func TestEstimateCO2Captured_MatchesBreakdown(t *testing.T) {
	tree := TreeParameters{DiameterCm: 40, HeightM: 15, AgeYears: 10}
	forest := ForestParameters{ForestCount: 10}

	total, err := EstimateCO2Captured(tree, forest)
	require.NoError(t, err)
	assert.InDelta(t, referenceCaptureKg, total, 0.01)
}

func TestEstimateCapture_CoefficientBoundary(t *testing.T) {
	tests := []struct {
		name            string
		diameterCm      float64
		wantCoefficient float64
	}{
		{name: "exactly 11 inches uses large-tree coefficient", diameterCm: 27.94, wantCoefficient: LargeTreeCoefficient},
		{name: "just under 11 inches uses small-tree coefficient", diameterCm: 27.9399, wantCoefficient: SmallTreeCoefficient},
		{name: "zero diameter", diameterCm: 0, wantCoefficient: SmallTreeCoefficient},
		{name: "maximum slider diameter", diameterCm: 100, wantCoefficient: LargeTreeCoefficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := EstimateCapture(
				TreeParameters{DiameterCm: tt.diameterCm, HeightM: 10, AgeYears: 1},
				ForestParameters{ForestCount: 1},
			)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCoefficient, b.Coefficient)
		})
	}
}

func TestCoefficientFor(t *testing.T) {
	assert.Equal(t, LargeTreeCoefficient, coefficientFor(11))
	assert.Equal(t, SmallTreeCoefficient, coefficientFor(math.Nextafter(11, 0)))
	assert.Equal(t, SmallTreeCoefficient, coefficientFor(10.999))
	assert.Equal(t, LargeTreeCoefficient, coefficientFor(11.001))
}

func TestEstimateCapture_InvalidAge(t *testing.T) {
	tests := []struct {
		name string
		age  float64
	}{
		{name: "zero", age: 0},
		{name: "negative", age: -5},
		{name: "NaN", age: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateCO2Captured(
				TreeParameters{DiameterCm: 40, HeightM: 15, AgeYears: tt.age},
				ForestParameters{ForestCount: 10},
			)
			require.ErrorIs(t, err, ErrInvalidAge)
			assert.Zero(t, got)
			assert.False(t, math.IsInf(got, 0))
		})
	}
}

func TestEstimateCapture_DefaultsTreesPerForest(t *testing.T) {
	b, err := EstimateCapture(
		TreeParameters{DiameterCm: 40, HeightM: 15, AgeYears: 10},
		ForestParameters{TreesPerForest: 0, ForestCount: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, DefaultTreesPerForest, b.TreesPerForest)
	assert.InDelta(t, b.AnnualCO2PerTreeKg*DefaultTreesPerForest, b.AnnualCO2PerForestKg, 1e-9)
}

func TestEstimateCapture_FiniteAndNonNegative(t *testing.T) {
	for _, d := range []float64{0, 1, 27.94, 50, 100} {
		for _, h := range []float64{0, 0.1, 15, 50} {
			for _, age := range []float64{0.5, 1, 10, 100} {
				for _, n := range []int{0, 1, 10, 1000} {
					got, err := EstimateCO2Captured(
						TreeParameters{DiameterCm: d, HeightM: h, AgeYears: age},
						ForestParameters{ForestCount: n},
					)
					require.NoError(t, err)
					assert.False(t, math.IsInf(got, 0) || math.IsNaN(got), "d=%v h=%v age=%v n=%v", d, h, age, n)
					assert.GreaterOrEqual(t, got, 0.0)
				}
			}
		}
	}
}

func TestEstimateCapture_MonotonicInForestCountAndHeight(t *testing.T) {
	tree := TreeParameters{DiameterCm: 40, HeightM: 15, AgeYears: 10}

	prev := -1.0
	for n := 0; n <= 1000; n += 50 {
		got, err := EstimateCO2Captured(tree, ForestParameters{ForestCount: n})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "forest count %d", n)
		prev = got
	}

	prev = -1.0
	for h := 0.0; h <= 50; h += 2.5 {
		tree.HeightM = h
		got, err := EstimateCO2Captured(tree, ForestParameters{ForestCount: 10})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "height %v", h)
		prev = got
	}
}
