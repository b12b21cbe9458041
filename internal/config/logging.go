package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/tinyforest/internal/logging"
)

// OutputFile sends logs to a file instead of stderr.
const OutputFile = logging.OutputFile

// LoggingConfig is the logging section of the configuration file.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
	Output string `yaml:"output" validate:"oneof=stderr stdout file"`
	File   string `yaml:"file,omitempty"`
	Caller bool   `yaml:"caller,omitempty"`
}

func defaultLogging() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Format: logging.FormatConsole,
		Output: logging.OutputStderr,
	}
}

// ToLoggingConfig converts the section to the logger builder's config. A file
// output without a path uses DefaultLogFile.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	file := lc.File
	if lc.Output == OutputFile && file == "" {
		file = DefaultLogFile()
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: lc.Output,
		File:   file,
		Caller: lc.Caller,
	}
}

// EnsureLogDir creates the directory of the configured log file.
func (lc LoggingConfig) EnsureLogDir() error {
	if lc.Output != OutputFile {
		return nil
	}
	dir := filepath.Dir(lc.ToLoggingConfig().File)
	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	return nil
}
