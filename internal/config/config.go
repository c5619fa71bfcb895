// Package config resolves settings from the environment (DISCIPLINA_*
// variables) and an optional YAML file for user-tuned seed missions and
// timer presets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/LuizDelio/Projeto-Disciplina/internal/timer"
)

const envPrefix = "disciplina"

// Config is the resolved application configuration.
type Config struct {
	DBPath       string `envconfig:"DB"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL"`
	Debug        bool   `envconfig:"DEBUG"`
	ConfigFile   string `envconfig:"CONFIG"`

	File FileConfig `envconfig:"-"`
}

// FileConfig is the optional ~/.disciplina.yaml overlay.
type FileConfig struct {
	Missions []SeedMission  `yaml:"missions"`
	Pomodoro PomodoroConfig `yaml:"pomodoro"`
}

// SeedMission is an extra mission merged into the ledger at startup.
type SeedMission struct {
	Label  string `yaml:"label"`
	Points int    `yaml:"points"`
}

// PomodoroConfig overrides the countdown presets, in minutes.
type PomodoroConfig struct {
	FocusMinutes int `yaml:"focus_minutes"`
	ShortMinutes int `yaml:"short_minutes"`
	LongMinutes  int `yaml:"long_minutes"`
}

// Load reads the environment and, when present, the YAML config file.
// A missing file is fine; an unreadable or malformed one is an error, since
// the user wrote it on purpose.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	// The unprefixed form is the one the Gemini tooling ecosystem uses.
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	path := c.ConfigFile
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".disciplina.yaml")
		}
	}
	if path != "" {
		if err := c.loadFile(path, explicit); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (c *Config) loadFile(path string, explicit bool) error {
	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(body, &c.File); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// PomodoroDurations returns the configured presets, falling back to the
// classic 25/5/15 for any unset value.
func (c *Config) PomodoroDurations() timer.Durations {
	d := timer.DefaultDurations()
	if c.File.Pomodoro.FocusMinutes > 0 {
		d.Focus = time.Duration(c.File.Pomodoro.FocusMinutes) * time.Minute
	}
	if c.File.Pomodoro.ShortMinutes > 0 {
		d.Short = time.Duration(c.File.Pomodoro.ShortMinutes) * time.Minute
	}
	if c.File.Pomodoro.LongMinutes > 0 {
		d.Long = time.Duration(c.File.Pomodoro.LongMinutes) * time.Minute
	}
	return d
}
