package config

import "fmt"

// ConfigErrorType classifies configuration failures.
type ConfigErrorType string

// Configuration error types.
const (
	ErrIO         ConfigErrorType = "io"
	ErrParsing    ConfigErrorType = "parsing"
	ErrValidation ConfigErrorType = "validation"
)

// ConfigError wraps a configuration failure with its type.
//
//nolint:revive // ConfigError reads better than Error at call sites.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
