package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AscentData is the per-balloon animation state: one independent timeline
// per entity, advanced by the balloon system each tick.
type AscentData struct {
	Elapsed float64         // Seconds since spawn
	Sway    *gween.Sequence // Horizontal waypoint drift across the whole ascent
	Opacity *gween.Tween    // 0.95 -> 1.0 ramp over the first part of the ascent

	// Current rendered frame, filled in by the update pass
	X     float64 // Body center, pixels
	TopY  float64 // Body top edge, pixels
	Alpha float64
}

var Ascent = donburi.NewComponentType[AscentData]()

// PoppingData marks a balloon whose pop transition is playing. The balloon
// left the live set the moment it was popped; the entity only lingers for
// the shrink/fade.
type PoppingData struct {
	Shrink *gween.Tween
	Scale  float64
}

var Popping = donburi.NewComponentType[PoppingData]()
