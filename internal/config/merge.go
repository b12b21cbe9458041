package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySchemaVersion = "schema_version"
	keyInputs        = "inputs"
	keyAssumptions   = "assumptions"
	keyOutput        = "output"
	keyLogging       = "logging"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target; fields the overlay section omits take their built-in
// default rather than the target's value. Keys absent in the overlay are
// left unchanged, and unknown keys are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = mergeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// mergeSection decodes one overlay section into a fresh default value and
// installs it on target.
func mergeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keySchemaVersion:
		return node.Decode(&target.SchemaVersion)
	case keyInputs:
		v := defaultInputs()
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Inputs = v
	case keyAssumptions:
		v := defaultAssumptions()
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Assumptions = v
	case keyOutput:
		v := defaultOutput()
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := defaultLogging()
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
