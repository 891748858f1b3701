package systems

import (
	"encoding/json"
	"log"

	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the preferences stored on disk. Theme is the
// only datum the original page persisted; the toggles ride along so the
// shell comes back the way it was left. Balloon state itself is never
// persisted.
type SavedSettings struct {
	Theme           string `json:"theme"`
	Muted           bool   `json:"muted"`
	BalloonsEnabled bool   `json:"balloonsEnabled"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "balloonfield",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error means
// no preferences were saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings persists the shell's current configuration.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Theme:           s.Theme.Name(),
		Muted:           s.Muted,
		BalloonsEnabled: s.BalloonsEnabled,
	}
	_ = SaveSettings(saved)
}

// DefaultSettings returns the shell configuration for a first run or an
// unreadable save.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		BalloonsEnabled: true,
		Muted:           false,
		Theme:           cfg.ThemeLight,
	}
}

// SettingsFromSaved maps a saved preference blob onto shell configuration.
func SettingsFromSaved(saved *SavedSettings) components.SettingsData {
	if saved == nil {
		return DefaultSettings()
	}
	return components.SettingsData{
		BalloonsEnabled: saved.BalloonsEnabled,
		Muted:           saved.Muted,
		Theme:           cfg.ThemeByName(saved.Theme),
	}
}
