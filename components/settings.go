package components

import (
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/yohamta/donburi"
)

// SettingsData is the page shell's configuration, read-only for the balloon
// systems. The shell bar mutates it and persists it.
type SettingsData struct {
	BalloonsEnabled bool
	Muted           bool
	Theme           cfg.ThemeID
}

// Palette returns the active theme palette.
func (s *SettingsData) Palette() cfg.Palette {
	return cfg.Themes[s.Theme]
}

var Settings = donburi.NewComponentType[SettingsData]()
