package configs

import (
	"os"
	"path/filepath"
	"time"
)

// Settings are user-level defaults read from the settings file. CLI flags
// override them per invocation.
type Settings struct {
	// AllowCommands enables $(...) substitution during loads.
	AllowCommands bool `toml:"allow_commands"`
	// CommandTimeoutSeconds bounds each substituted command.
	CommandTimeoutSeconds int `toml:"command_timeout_seconds"`
}

// DefaultSettings matches dotenvx behaviour: substitution on, 5 seconds.
func DefaultSettings() Settings {
	return Settings{
		AllowCommands:         true,
		CommandTimeoutSeconds: 5,
	}
}

// CommandTimeout returns the configured timeout as a duration.
func (s Settings) CommandTimeout() time.Duration {
	if s.CommandTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.CommandTimeoutSeconds) * time.Second
}

// SettingsPath locates the user settings file, honouring XDG_CONFIG_HOME.
func SettingsPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "manuka", "settings.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "manuka", "settings.toml"), nil
}

// LoadSettings reads the user settings file, returning defaults when it
// does not exist.
func LoadSettings() (Settings, error) {
	settings := DefaultSettings()

	path, err := SettingsPath()
	if err != nil {
		return settings, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}
	if err := LoadTOML(path, &settings); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings writes the settings file, creating its directory.
func SaveSettings(settings Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	return SaveTOML(path, settings)
}
