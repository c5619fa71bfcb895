package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DISCIPLINA_DB", "/tmp/test.db")
	t.Setenv("DISCIPLINA_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("DISCIPLINA_DEBUG", "true")
	t.Setenv("DISCIPLINA_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("GEMINI_API_KEY", "")

	// Explicit but missing config file is an error.
	_, err := Load()
	require.Error(t, err)

	t.Setenv("DISCIPLINA_CONFIG", writeConfig(t, ""))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.True(t, cfg.Debug)
}

func TestGeminiKeyFallsBackToUnprefixedVar(t *testing.T) {
	t.Setenv("DISCIPLINA_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "fallback-key")
	t.Setenv("DISCIPLINA_CONFIG", writeConfig(t, ""))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fallback-key", cfg.GeminiAPIKey)
}

func TestLoadParsesYAMLOverlay(t *testing.T) {
	body := `
missions:
  - label: "Corrida (5km)"
    points: 80
pomodoro:
  focus_minutes: 50
  short_minutes: 10
`
	t.Setenv("DISCIPLINA_CONFIG", writeConfig(t, body))

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.File.Missions, 1)
	assert.Equal(t, "Corrida (5km)", cfg.File.Missions[0].Label)
	assert.Equal(t, 80, cfg.File.Missions[0].Points)

	d := cfg.PomodoroDurations()
	assert.Equal(t, 50*time.Minute, d.Focus)
	assert.Equal(t, 10*time.Minute, d.Short)
	assert.Equal(t, 15*time.Minute, d.Long) // unset, keeps default
}

func TestLoadMalformedYAMLIsAnError(t *testing.T) {
	t.Setenv("DISCIPLINA_CONFIG", writeConfig(t, "missions: [broken"))

	_, err := Load()
	require.Error(t, err)
}

func TestPomodoroDurationsDefault(t *testing.T) {
	var cfg Config
	d := cfg.PomodoroDurations()
	assert.Equal(t, 25*time.Minute, d.Focus)
	assert.Equal(t, 5*time.Minute, d.Short)
	assert.Equal(t, 15*time.Minute, d.Long)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disciplina.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
