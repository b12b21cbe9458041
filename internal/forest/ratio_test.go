package forest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCaptureRatio(t *testing.T) {
	tests := []struct {
		name        string
		captured    float64
		emitted     float64
		wantValue   float64
		wantPercent string
		wantErr     error
	}{
		{name: "equal quantities", captured: 470000, emitted: 470000, wantValue: 1, wantPercent: "100.00%"},
		{name: "reference scenario", captured: referenceCaptureKg, emitted: 470000, wantValue: 1.690830, wantPercent: "169.08%"},
		{name: "nothing captured", captured: 0, emitted: 470000, wantValue: 0, wantPercent: "0.00%"},
		{name: "zero emissions", captured: 470000, emitted: 0, wantPercent: "N/A", wantErr: ErrUndefinedRatio},
		{name: "zero over zero", captured: 0, emitted: 0, wantPercent: "N/A", wantErr: ErrUndefinedRatio},
		{name: "infinite capture", captured: math.Inf(1), emitted: 10, wantPercent: "N/A", wantErr: ErrUndefinedRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeCaptureRatio(tt.captured, tt.emitted)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got.Defined)
				assert.False(t, math.IsInf(got.Value, 0) || math.IsNaN(got.Value))
			} else {
				require.NoError(t, err)
				assert.True(t, got.Defined)
				assert.InDelta(t, tt.wantValue, got.Value, 1e-6)
				assert.InDelta(t, tt.wantValue*100, got.Percentage, 1e-4)
			}
			assert.Equal(t, tt.wantPercent, FormatPercent(got))
		})
	}
}

func TestComputeCaptureRatio_SelfIsOne(t *testing.T) {
	for _, x := range []float64{0.001, 1, 4700, 1e9} {
		got, err := ComputeCaptureRatio(x, x)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got.Value, 1e-12)
		assert.InDelta(t, 100.0, got.Percentage, 1e-10)
	}
}
