package configs

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.AllowCommands {
		t.Error("AllowCommands should default to true")
	}
	if s.CommandTimeout() != 5*time.Second {
		t.Errorf("CommandTimeout = %v, want 5s", s.CommandTimeout())
	}
}

func TestCommandTimeoutGuardsZero(t *testing.T) {
	s := Settings{CommandTimeoutSeconds: 0}
	if s.CommandTimeout() != 5*time.Second {
		t.Errorf("zero timeout must fall back to default, got %v", s.CommandTimeout())
	}
	s.CommandTimeoutSeconds = 30
	if s.CommandTimeout() != 30*time.Second {
		t.Errorf("CommandTimeout = %v, want 30s", s.CommandTimeout())
	}
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := Settings{AllowCommands: false, CommandTimeoutSeconds: 10}
	if err := SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	path, _ := SettingsPath()
	if filepath.Dir(path) != filepath.Join(dir, "manuka") {
		t.Errorf("settings written to unexpected location: %s", path)
	}

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("roundtrip: got %+v, want %+v", got, want)
	}
}
