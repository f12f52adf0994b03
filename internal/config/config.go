// Package config holds timer defaults and the user-adjustable session
// configuration, persisted as a small YAML file in the user config dir.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/util"
	"gopkg.in/yaml.v3"
)

// Config carries the session durations. It is fixed once the timer
// loop starts.
type Config struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
}

// Default returns the stock 25/5 configuration.
func Default() Config {
	return Config{
		WorkDuration:  DefaultWorkDuration,
		BreakDuration: DefaultBreakDuration,
	}
}

type yamlSettings struct {
	WorkMinutes  int `yaml:"work_minutes"`
	BreakMinutes int `yaml:"break_minutes"`
}

// Load reads the saved settings for app, returning defaults when no
// settings file exists yet.
func Load(app string) (Config, error) {
	cfg := Default()
	path := settingsPath(app)

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return cfg, fmt.Errorf("parse settings yaml: %w", err)
	}

	if fileData.WorkMinutes > 0 {
		cfg.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		cfg.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	return cfg, nil
}

// Save writes cfg to the settings file for app.
func Save(app string, cfg Config) error {
	path := settingsPath(app)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:  int(cfg.WorkDuration / time.Minute),
		BreakMinutes: int(cfg.BreakDuration / time.Minute),
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func settingsPath(app string) string {
	return filepath.Join(util.ConfigDir(app), SettingsFileName)
}

// ParseMinutes interprets one line of prompt input as a duration in
// minutes. Blank, unparsable, or non-positive input yields fallback.
func ParseMinutes(line string, fallback time.Duration) time.Duration {
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || value <= 0 {
		return fallback
	}
	return time.Duration(value) * time.Minute
}
