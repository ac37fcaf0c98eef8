package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesKeepUnsetDefaults(t *testing.T) {
	path := writeConfig(t, "seed: 7\nport: 9999\nday_length_seconds: 60\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 60, cfg.DayLengthSeconds)
	assert.Equal(t, Default().DBPath, cfg.DBPath)
	assert.Equal(t, Default().PopulationIntervalMillis, cfg.PopulationIntervalMillis)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "port: [not a port\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "loading config")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad port":      "port: -1\n",
		"empty db path": "db_path: \"\"\n",
		"zero interval": "population_interval_millis: 0\n",
		"zero day":      "day_length_seconds: 0\n",
		"upkeep sign":   "daily_upkeep: -3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1200*time.Millisecond, cfg.PopulationInterval())
	assert.Equal(t, 3*time.Minute, cfg.DayLength())
}
