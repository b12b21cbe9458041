package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tinyforest/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupHome(t)
	path := filepath.Join(home, "config.yaml")

	out, _, err := executeRoot(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Inputs, cfg.Inputs)

	_, _, err = executeRoot(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeRoot(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_ReplacesBrokenFile(t *testing.T) {
	home := setupHome(t)
	writeHomeConfig(t, home, "inputs: [broken\n")

	_, errOut, err := executeRoot(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, errOut, "using defaults")

	_, err = config.Load(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	home := setupHome(t)
	writeHomeConfig(t, home, "assumptions:\n  trees_per_forest: 450\n  emissions_per_capita: {value: 4.7, unit: tCO2e}\n")

	out, _, err := executeRoot(t, "config", "show")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, config.SchemaVersion, shown.SchemaVersion)
	assert.Equal(t, 450, shown.Assumptions.TreesPerForest)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		setupHome(t)
		out, _, err := executeRoot(t, "config", "validate", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
		assert.Contains(t, out, "Trees per forest: 600")
		assert.Contains(t, out, "Emissions per employee: 4700 kg CO2e/year (≈ ")
		assert.Contains(t, out, "home-days)")
	})

	t.Run("invalid", func(t *testing.T) {
		home := setupHome(t)
		writeHomeConfig(t, home, "schema_version: \"2.0.0\"\n")

		_, _, err := executeRoot(t, "config", "validate")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrIncompatibleSchema)
	})

	t.Run("invalid overlay", func(t *testing.T) {
		setupHome(t)
		overlay := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(overlay, []byte("output:\n  default_format: xml\n"), 0o600))

		_, _, err := executeRoot(t, "--config", overlay, "config", "validate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration validation failed")
	})
}
