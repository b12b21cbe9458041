package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	"github.com/rshade/tinyforest/internal/greenops"
)

// SupportedSchema is the range of schema versions this build reads.
const SupportedSchema = "^1"

// ErrIncompatibleSchema is returned for a schema_version outside
// SupportedSchema.
var ErrIncompatibleSchema = errors.New("incompatible config schema version")

//nolint:gochecknoglobals // validator caches struct metadata; build it once.
var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with tinyforest rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterStructValidation(quantityValidation, greenops.Quantity{})
	})
	return validate
}

// quantityValidation requires a positive value in a recognized carbon unit.
func quantityValidation(sl validator.StructLevel) {
	q, ok := sl.Current().Interface().(greenops.Quantity)
	if !ok {
		return
	}
	if !(q.Value > 0) {
		sl.ReportError(q.Value, "Value", "value", "gt", "0")
	}
	if !greenops.IsRecognizedUnit(q.Unit) {
		sl.ReportError(q.Unit, "Unit", "unit", "carbon_unit", "")
	}
}

// Validate checks the schema version, the struct rules and the input
// bounds.
func (c *Config) Validate() error {
	if err := CheckSchemaVersion(c.SchemaVersion); err != nil {
		return &ConfigError{Type: ErrValidation, Message: "schema_version", Err: err}
	}
	if err := Validator().Struct(c); err != nil {
		return &ConfigError{Type: ErrValidation, Message: "configuration validation failed", Err: err}
	}
	if err := ValidateInputs(c.Inputs); err != nil {
		return &ConfigError{Type: ErrValidation, Message: "inputs", Err: err}
	}
	return nil
}

// CheckSchemaVersion reports whether version satisfies SupportedSchema.
func CheckSchemaVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrIncompatibleSchema, version, SupportedSchema)
	}
	return nil
}

// ValidateInputs checks every input against its bound.
func ValidateInputs(ic InputsConfig) error {
	var errs []error
	for _, b := range inputBounds {
		if err := ValidateInput(b.Key, ic.Value(b.Key)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ValidateInput checks a single value against its bound.
func ValidateInput(key InputKey, v float64) error {
	b := BoundFor(key)
	tag := fmt.Sprintf("gte=%g,lte=%g", b.Min, b.Max)
	if err := Validator().Var(v, tag); err != nil {
		return fmt.Errorf("%s must be between %g and %g, got %g", b.Name, b.Min, b.Max, v)
	}
	return nil
}
