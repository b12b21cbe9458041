package forest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0"},
		{n: 123, want: "123"},
		{n: 1234, want: "1,234"},
		{n: 1234567, want: "1,234,567"},
		{n: -1234, want: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatKilotons(t *testing.T) {
	tests := []struct {
		name string
		kg   float64
		want string
	}{
		{name: "one million kg", kg: 1_000_000, want: "1,000"},
		{name: "zero", kg: 0, want: "0"},
		{name: "below half a ton rounds down", kg: 499, want: "0"},
		{name: "half a ton rounds away from zero", kg: 500, want: "1"},
		{name: "reference employee emissions", kg: 470_000, want: "470"},
		{name: "large", kg: 1_234_567_890, want: "1,234,568"},
		{name: "negative passes through", kg: -2_500_000, want: "-2,500"},
		{name: "NaN", kg: math.NaN(), want: "N/A"},
		{name: "infinity", kg: math.Inf(1), want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatKilotons(tt.kg))
		})
	}
}
