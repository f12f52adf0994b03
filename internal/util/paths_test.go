package util

import (
	"path/filepath"
	"testing"
)

func TestConfigDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got := ConfigDir("pomo")
	want := filepath.Join(dir, "pomo")
	if got != want {
		t.Fatalf("ConfigDir = %q, want %q", got, want)
	}
}

func TestConfigDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	got := ConfigDir("pomo")
	want := filepath.Join(home, ".config", "pomo")
	if got != want {
		t.Fatalf("ConfigDir = %q, want %q", got, want)
	}
}
