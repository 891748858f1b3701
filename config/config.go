package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Default is the ECS layer every renderer draws on.
const Default ecs.LayerID = 0

// Global configuration instances
var C *Config
var Balloon BalloonConfig
var Audio AudioConfig
var Shell ShellConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowStats bool // Overlay live-set counters in the corner
}

// ShellConfig contains the mock page layout values
type ShellConfig struct {
	BarHeight    float64 // Top chrome bar; clicks here never reach balloons
	HeaderHeight float64
	BlockMargin  float64
	BlockSpacing float64
	FooterHeight float64
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 600,
		TPS:    60,
	}

	Shell = ShellConfig{
		BarHeight:    36,
		HeaderHeight: 120,
		BlockMargin:  48,
		BlockSpacing: 16,
		FooterHeight: 28,
	}

	Debug = DebugConfig{
		ShowStats: false,
	}
}
