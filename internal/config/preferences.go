package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const preferencesFile = "preferences.json"

// Preferences holds user preferences that persist across sessions
type Preferences struct {
	LastSupportMode string `json:"last_support_mode"`
	ShowTimestamps  bool   `json:"show_timestamps"`

	dir string
}

// DefaultPreferences returns the default preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		LastSupportMode: "general_chat",
		ShowTimestamps:  true,
	}
}

// LoadPreferences loads user preferences from the default config directory.
// A missing or unreadable file yields the defaults.
func LoadPreferences() *Preferences {
	dir, err := getConfigDir()
	if err != nil {
		return DefaultPreferences()
	}
	return LoadPreferencesFrom(dir)
}

// LoadPreferencesFrom loads preferences stored in dir
func LoadPreferencesFrom(dir string) *Preferences {
	prefs := DefaultPreferences()
	prefs.dir = dir

	data, err := os.ReadFile(filepath.Join(dir, preferencesFile))
	if err != nil {
		return prefs
	}

	var stored Preferences
	if err := json.Unmarshal(data, &stored); err != nil {
		return prefs
	}
	stored.dir = dir
	if stored.LastSupportMode == "" {
		stored.LastSupportMode = prefs.LastSupportMode
	}
	return &stored
}

// Save saves user preferences to the config file
func (p *Preferences) Save() error {
	dir := p.dir
	if dir == "" {
		var err error
		dir, err = getConfigDir()
		if err != nil {
			return errors.Wrap(err, "failed to get config directory")
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal preferences")
	}

	if err := os.WriteFile(filepath.Join(dir, preferencesFile), data, 0644); err != nil {
		return errors.Wrap(err, "failed to write preferences file")
	}

	return nil
}

// UpdateSupportMode records the last selected support mode and saves preferences
func (p *Preferences) UpdateSupportMode(modeID string) error {
	p.LastSupportMode = modeID
	return p.Save()
}

// getConfigDir returns the application config directory
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "halalfull-support"), nil
}
