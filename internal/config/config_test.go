package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "# demo\niterations: 40\nseed: 7\noutput: \"weights.png\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Iterations)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "weights.png", cfg.Output)
	assert.Equal(t, 200, cfg.DatasetSize)
	assert.Equal(t, 20, cfg.ValidationDatasetSize)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "iterations: 3\nlearning_rate: 0.1\n"))
	assert.Error(t, err)
}

func TestLoadRejectsNegative(t *testing.T) {
	_, err := Load(writeConfig(t, "dataset_size: -1\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyOverridesHonoursZero(t *testing.T) {
	cfg := Default()
	zero := 0
	out := "w.bmp"
	cfg.ApplyOverrides(Overrides{Iterations: &zero, Output: &out})
	assert.Equal(t, 0, cfg.Iterations)
	assert.Equal(t, "w.bmp", cfg.Output)
	assert.Equal(t, 200, cfg.DatasetSize)
	require.NoError(t, cfg.Validate())
}

func TestValidateDefaultsLogEvery(t *testing.T) {
	cfg := Default()
	cfg.LogEvery = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.LogEvery)
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	assert.Error(t, cfg.Validate())
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidateErrorsCarryStack(t *testing.T) {
	cfg := Default()
	cfg.Workers = -2
	err := cfg.Validate()
	require.EqualError(t, err, "workers must be >= 0 (got -2)")
	_, ok := err.(interface{ StackTrace() errors.StackTrace })
	assert.True(t, ok, "validation error has no stack trace")
}
