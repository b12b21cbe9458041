package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every tinyforest environment variable.
const EnvPrefix = "TINYFOREST"

// envOverrides are the settings that may be supplied through the
// environment. Unset pointer fields leave the file value alone.
type envOverrides struct {
	LogLevel             string   `envconfig:"LOG_LEVEL"`
	LogFormat            string   `envconfig:"LOG_FORMAT"`
	LogFile              string   `envconfig:"LOG_FILE"`
	OutputFormat         string   `envconfig:"OUTPUT_FORMAT"`
	TreesPerForest       *int     `envconfig:"TREES_PER_FOREST"`
	EmissionsPerCapitaKg *float64 `envconfig:"EMISSIONS_PER_CAPITA_KG"`
}

// ApplyEnvOverrides loads a .env file from the working directory, if any,
// and applies TINYFOREST_* variables on top of cfg. Variables already set in
// the process environment take precedence over the .env file.
func ApplyEnvOverrides(cfg *Config) error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return &ConfigError{Type: ErrParsing, Message: "processing environment", Err: err}
	}

	if env.LogLevel != "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Logging.Format = env.LogFormat
	}
	if env.LogFile != "" {
		cfg.Logging.File = env.LogFile
		cfg.Logging.Output = OutputFile
	}
	if env.OutputFormat != "" {
		cfg.Output.DefaultFormat = env.OutputFormat
	}
	if env.TreesPerForest != nil {
		cfg.Assumptions.TreesPerForest = *env.TreesPerForest
	}
	if env.EmissionsPerCapitaKg != nil {
		cfg.Assumptions.EmissionsPerCapita.Value = *env.EmissionsPerCapitaKg
		cfg.Assumptions.EmissionsPerCapita.Unit = "kg"
	}
	return nil
}
