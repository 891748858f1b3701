package components

import (
	"github.com/yohamta/donburi"
)

// BalloonData holds the randomized parameters drawn once at spawn.
// None of these fields change over the balloon's life; all visible motion
// comes from the Ascent animation state.
type BalloonData struct {
	ID             int64   // Unique per session, never reused
	HomeX          float64 // Fraction of screen width, fixed at spawn
	Size           float64 // Body width in pixels
	Hue            float64 // Degrees, 0-359
	AscentDuration float64 // Seconds from below the bottom edge to above the top
	SwayAmplitude  float64 // Max horizontal displacement in pixels
}

// BodyHeight returns the rendered body height (the body is taller than wide).
func (b *BalloonData) BodyHeight(ratio float64) float64 {
	return b.Size * ratio
}

var Balloon = donburi.NewComponentType[BalloonData]()
