package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir resolves the per-user configuration directory for app,
// honoring XDG_CONFIG_HOME and falling back to ~/.config.
func ConfigDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".config", app)
}
