package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	t.Run("default dashboard inputs", func(t *testing.T) {
		got, err := Estimate(Inputs{
			DiameterCm:    40,
			HeightM:       15,
			AgeYears:      10,
			ForestCount:   10,
			EmployeeCount: 100,
		}, DefaultAssumptions())
		require.NoError(t, err)

		assert.InDelta(t, referenceCaptureKg, got.CapturedKgPerYear, 0.01)
		assert.Equal(t, 470000.0, got.EmissionsKgPerYear)
		assert.True(t, got.Ratio.Defined)
		assert.Equal(t, "169.08%", got.Ratio.String())
		assert.Equal(t, got.CapturedKgPerYear, got.Capture.TotalAnnualCO2Kg)
	})

	t.Run("zero age is rejected", func(t *testing.T) {
		_, err := Estimate(Inputs{DiameterCm: 40, HeightM: 15, ForestCount: 10, EmployeeCount: 100}, DefaultAssumptions())
		require.ErrorIs(t, err, ErrInvalidAge)
	})

	t.Run("no employees gives undefined ratio without error", func(t *testing.T) {
		got, err := Estimate(Inputs{DiameterCm: 40, HeightM: 15, AgeYears: 10, ForestCount: 10}, DefaultAssumptions())
		require.NoError(t, err)
		assert.False(t, got.Ratio.Defined)
		assert.Equal(t, "N/A", got.Ratio.String())
		assert.Zero(t, got.EmissionsKgPerYear)
	})

	t.Run("custom assumptions", func(t *testing.T) {
		in := Inputs{DiameterCm: 40, HeightM: 15, AgeYears: 10, ForestCount: 10, EmployeeCount: 100}
		got, err := Estimate(in, Assumptions{TreesPerForest: 300, EmissionsPerCapitaKg: 2350})
		require.NoError(t, err)

		assert.InDelta(t, referenceCaptureKg/2, got.CapturedKgPerYear, 0.01)
		assert.Equal(t, 235000.0, got.EmissionsKgPerYear)
		assert.Equal(t, "169.08%", got.Ratio.String())
	})
}

func TestDefaultAssumptions(t *testing.T) {
	a := DefaultAssumptions()
	assert.Equal(t, 600, a.TreesPerForest)
	assert.Equal(t, 4700.0, a.EmissionsPerCapitaKg)
}
