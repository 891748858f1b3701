package config

import "image/color"

// ThemeID selects the page palette
type ThemeID int

const (
	ThemeLight ThemeID = iota
	ThemeDark
)

// Palette holds the colors of the mock page behind the balloons
type Palette struct {
	Background color.RGBA
	Bar        color.RGBA
	Surface    color.RGBA
	Heading    color.RGBA
	Text       color.RGBA
	Accent     color.RGBA
	String     color.RGBA // Balloon string tint
}

// Themes maps theme ids to palettes
var Themes map[ThemeID]Palette

func (t ThemeID) Name() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ThemeByName resolves a persisted preference string; unknown names fall
// back to light.
func ThemeByName(name string) ThemeID {
	if name == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

func init() {
	Themes = map[ThemeID]Palette{
		ThemeLight: {
			Background: color.RGBA{R: 246, G: 244, B: 239, A: 255},
			Bar:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Surface:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Heading:    color.RGBA{R: 34, G: 38, B: 46, A: 255},
			Text:       color.RGBA{R: 90, G: 96, B: 108, A: 255},
			Accent:     color.RGBA{R: 215, G: 80, B: 90, A: 255},
			String:     color.RGBA{R: 70, G: 70, B: 80, A: 90},
		},
		ThemeDark: {
			Background: color.RGBA{R: 24, G: 26, B: 32, A: 255},
			Bar:        color.RGBA{R: 34, G: 37, B: 46, A: 255},
			Surface:    color.RGBA{R: 38, G: 42, B: 52, A: 255},
			Heading:    color.RGBA{R: 235, G: 237, B: 242, A: 255},
			Text:       color.RGBA{R: 160, G: 166, B: 180, A: 255},
			Accent:     color.RGBA{R: 235, G: 110, B: 120, A: 255},
			String:     color.RGBA{R: 220, G: 220, B: 230, A: 80},
		},
	}
}
