package config

import (
	"fmt"
	"math"
	"strconv"
)

// InputKey identifies one of the five estimator inputs.
type InputKey int

// Input keys in display order.
const (
	InputDiameter InputKey = iota
	InputHeight
	InputAge
	InputForests
	InputEmployees
)

// InputBound describes the range and granularity of one input, mirroring the
// paired number field and slider of the dashboard.
type InputBound struct {
	Key     InputKey
	Name    string
	Label   string
	Default float64
	Min     float64
	Max     float64
	Step    float64
	// Integer inputs are rounded to whole numbers.
	Integer bool
}

// inputBounds is indexed by InputKey.
//
//nolint:gochecknoglobals // Fixed lookup table.
var inputBounds = [...]InputBound{
	InputDiameter: {
		Key: InputDiameter, Name: "diameter", Label: "Tree diameter (cm)",
		Default: 40, Min: 0, Max: 100, Step: 1, Integer: true,
	},
	InputHeight: {
		Key: InputHeight, Name: "height", Label: "Tree height (m)",
		Default: 15, Min: 0, Max: 50, Step: 0.1,
	},
	InputAge: {
		Key: InputAge, Name: "age", Label: "Tree age (years)",
		Default: 10, Min: 0, Max: 100, Step: 1, Integer: true,
	},
	InputForests: {
		Key: InputForests, Name: "forests", Label: "Tiny forests (600 trees each)",
		Default: 10, Min: 0, Max: 1000, Step: 1, Integer: true,
	},
	InputEmployees: {
		Key: InputEmployees, Name: "employees", Label: "Employees",
		Default: 100, Min: 0, Max: 1000, Step: 1, Integer: true,
	},
}

// InputBounds returns the bounds of every input in display order.
func InputBounds() []InputBound {
	out := make([]InputBound, len(inputBounds))
	copy(out, inputBounds[:])
	return out
}

// BoundFor returns the bound of a single input.
func BoundFor(key InputKey) InputBound {
	return inputBounds[key]
}

// Clamp limits v to [Min, Max], rounding integer inputs and snapping
// fractional ones to one decimal place.
func (b InputBound) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return b.Default
	}
	if b.Integer {
		v = math.Round(v)
	} else {
		v = math.Round(v*10) / 10
	}
	return math.Max(b.Min, math.Min(b.Max, v))
}

// Increment moves v by n steps and clamps the result.
func (b InputBound) Increment(v float64, n int) float64 {
	return b.Clamp(v + float64(n)*b.Step)
}

// Contains reports whether v lies within the bound.
func (b InputBound) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Format renders v the way the number field shows it.
func (b InputBound) Format(v float64) string {
	if b.Integer {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Parse reads a number typed into the number field. It rejects text that is
// not a finite number but does not clamp.
func (b InputBound) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %q is not a number", b.Name, s)
	}
	return v, nil
}

// Value returns the configured value of one input.
func (ic InputsConfig) Value(key InputKey) float64 {
	switch key {
	case InputDiameter:
		return ic.DiameterCm
	case InputHeight:
		return ic.HeightM
	case InputAge:
		return ic.AgeYears
	case InputForests:
		return float64(ic.ForestCount)
	case InputEmployees:
		return float64(ic.EmployeeCount)
	default:
		return 0
	}
}

// With returns a copy of ic with one input replaced by the clamped value v.
func (ic InputsConfig) With(key InputKey, v float64) InputsConfig {
	v = BoundFor(key).Clamp(v)
	switch key {
	case InputDiameter:
		ic.DiameterCm = v
	case InputHeight:
		ic.HeightM = v
	case InputAge:
		ic.AgeYears = v
	case InputForests:
		ic.ForestCount = int(v)
	case InputEmployees:
		ic.EmployeeCount = int(v)
	}
	return ic
}
