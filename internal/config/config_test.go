package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treinos_config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/treinos
defaultSessionCost: 30
closureRules:
  - "FREQ=YEARLY;DTSTART=20240101T000000Z;BYMONTH=12;BYMONTHDAY=25"
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/treinos", cfg.DatabaseURL)
	assert.Equal(t, 30.0, cfg.DefaultSessionCost)
	assert.Len(t, cfg.ClosureRules, 1)
}

func TestLoadFromPath_DefaultSessionCostApplied(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost:5432/treinos`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultSessionCost), cfg.DefaultSessionCost)
}

func TestLoadFromPath_EmptyDatabaseURLAllowed(t *testing.T) {
	// The URL may come from the environment instead.
	path := writeConfig(t, `defaultSessionCost: 25`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromPath_NegativeSessionCostRejected(t *testing.T) {
	path := writeConfig(t, `defaultSessionCost: -5`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidClosureRuleRejected(t *testing.T) {
	path := writeConfig(t, `
closureRules:
  - "FREQ=NEVER"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closureRules")
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "closureRules: [unclosed")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
