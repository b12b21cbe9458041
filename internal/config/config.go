// Package config loads, validates and exposes the tinyforest configuration.
//
// Configuration is resolved in this order, later sources winning:
//  1. Built-in defaults (the original dashboard's initial slider values)
//  2. ~/.tinyforest/config.yaml (directory overridable with TINYFOREST_HOME)
//  3. An overlay file passed with --config, merged section by section
//  4. A .env file in the working directory and TINYFOREST_* variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rshade/tinyforest/internal/forest"
	"github.com/rshade/tinyforest/internal/greenops"
)

// SchemaVersion is the configuration schema written by this build.
const SchemaVersion = "1.0.0"

// Config file locations.
const (
	dirName        = ".tinyforest"
	fileName       = "config.yaml"
	logDirName     = "logs"
	logFileName    = "tinyforest.log"
	homeEnvVar     = "TINYFOREST_HOME"
	configFileMode = 0o600
	configDirMode  = 0o700
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config is the complete tinyforest configuration.
type Config struct {
	SchemaVersion string            `yaml:"schema_version" validate:"required"`
	Inputs        InputsConfig      `yaml:"inputs"`
	Assumptions   AssumptionsConfig `yaml:"assumptions"`
	Output        OutputConfig      `yaml:"output"`
	Logging       LoggingConfig     `yaml:"logging"`
}

// InputsConfig holds the initial values of the five dashboard inputs.
// Bounds are checked against InputBounds by Validate.
type InputsConfig struct {
	DiameterCm    float64 `yaml:"diameter_cm"`
	HeightM       float64 `yaml:"height_m"`
	AgeYears      float64 `yaml:"age_years"`
	ForestCount   int     `yaml:"forest_count"`
	EmployeeCount int     `yaml:"employee_count"`
}

// AssumptionsConfig holds the constants of the estimate.
type AssumptionsConfig struct {
	TreesPerForest     int               `yaml:"trees_per_forest" validate:"gt=0,lte=100000"`
	EmissionsPerCapita greenops.Quantity `yaml:"emissions_per_capita"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat     string `yaml:"default_format" validate:"oneof=table json yaml"`
	ShowEquivalencies bool   `yaml:"show_equivalencies"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		Inputs:        defaultInputs(),
		Assumptions:   defaultAssumptions(),
		Output:        defaultOutput(),
		Logging:       defaultLogging(),
	}
}

func defaultInputs() InputsConfig {
	return InputsConfig{
		DiameterCm:    40,
		HeightM:       15,
		AgeYears:      10,
		ForestCount:   10,
		EmployeeCount: 100,
	}
}

func defaultAssumptions() AssumptionsConfig {
	return AssumptionsConfig{
		TreesPerForest:     forest.DefaultTreesPerForest,
		EmissionsPerCapita: greenops.Quantity{Value: 4.7, Unit: "tCO2e"},
	}
}

func defaultOutput() OutputConfig {
	return OutputConfig{DefaultFormat: OutputTable, ShowEquivalencies: true}
}

// ToInputs converts the configured inputs into estimator inputs.
func (ic InputsConfig) ToInputs() forest.Inputs {
	return forest.Inputs{
		DiameterCm:    ic.DiameterCm,
		HeightM:       ic.HeightM,
		AgeYears:      ic.AgeYears,
		ForestCount:   ic.ForestCount,
		EmployeeCount: ic.EmployeeCount,
	}
}

// ToAssumptions normalizes the per-capita emissions to kilograms.
func (ac AssumptionsConfig) ToAssumptions() (forest.Assumptions, error) {
	kg, err := ac.EmissionsPerCapita.Kg()
	if err != nil {
		return forest.Assumptions{}, fmt.Errorf("emissions_per_capita: %w", err)
	}
	return forest.Assumptions{
		TreesPerForest:       ac.TreesPerForest,
		EmissionsPerCapitaKg: kg,
	}, nil
}

// Dir returns the tinyforest configuration directory.
func Dir() (string, error) {
	if dir, ok := os.LookupEnv(homeEnvVar); ok && dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// DefaultLogFile returns the log file used when logging.file is "default".
func DefaultLogFile() string {
	dir, err := Dir()
	if err != nil {
		return filepath.Join(os.TempDir(), logFileName)
	}
	return filepath.Join(dir, logDirName, logFileName)
}

// Load reads the configuration file at path on top of the defaults,
// applies environment overrides and validates the result. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

// LoadWithOverlay loads the default configuration file and then merges the
// overlay file on top, section by section. Validation runs once, after the
// overlay and environment overrides, so an overlay may replace an invalid
// section of the base file. An empty overlayPath behaves like Load on the
// default path.
func LoadWithOverlay(overlayPath string) (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, &ConfigError{Type: ErrIO, Message: "resolving config path", Err: err}
	}

	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if overlayPath != "" {
		if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, &ConfigError{Type: ErrParsing, Message: "merging overlay", Err: err}
		}
	}
	return finish(cfg)
}

// readFile decodes path over the defaults without validating.
func readFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, &ConfigError{Type: ErrIO, Message: "reading " + path, Err: err}
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ConfigError{Type: ErrParsing, Message: "parsing " + path, Err: err}
		}
	}
	return cfg, nil
}

// finish applies environment overrides, which win over every file, and
// validates the result.
func finish(cfg *Config) (*Config, error) {
	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the parent directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return &ConfigError{Type: ErrIO, Message: "creating config directory", Err: err}
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, configFileMode); err != nil {
		return &ConfigError{Type: ErrIO, Message: "writing " + path, Err: err}
	}
	return nil
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, &ConfigError{Type: ErrParsing, Message: "encoding config", Err: err}
	}
	return data, nil
}

// globalConfig is the configuration for the running command.
//
//nolint:gochecknoglobals // Set once per command by the CLI, read by renderers.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// GetGlobalConfig returns the configuration set by SetGlobalConfig, or the
// defaults when none has been set.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return Default()
	}
	return globalConfig
}

// SetGlobalConfig installs cfg as the configuration for the running command.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}
