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
	path := filepath.Join(t.TempDir(), "pulseboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 40.0, cfg.HealthWeights.Completion)
	assert.Equal(t, 35.0, cfg.RiskWeights.Status)
	assert.Equal(t, 14, cfg.Thresholds.StaleDays)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
thresholds:
  stale_days: 21
health_weights:
  completion: 50
  progress: 30
  status: 10
  recency: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.Thresholds.StaleDays)
	// unset thresholds keep their defaults
	assert.Equal(t, 30, cfg.Thresholds.CriticalStaleDays)
	assert.Equal(t, 50.0, cfg.HealthWeights.Completion)
	// untouched sections keep defaults entirely
	assert.Equal(t, 35.0, cfg.RiskWeights.Status)
}

func TestLoad_EnvVar(t *testing.T) {
	path := writeConfig(t, "thresholds:\n  stale_days: 7\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Thresholds.StaleDays)
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "thresholds: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsNegativeWeights(t *testing.T) {
	path := writeConfig(t, "health_weights:\n  completion: -5\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "non-negative")
}

func TestConversions(t *testing.T) {
	cfg := Default()

	th := cfg.InsightThresholds()
	assert.Equal(t, 50.0, th.CriticalHealth)
	assert.Equal(t, 0.3, th.AtRiskRatio)

	h, r := cfg.ScoringWeights()
	assert.Equal(t, 40.0, h.Completion)
	assert.Equal(t, 15.0, r.Recency)
}
