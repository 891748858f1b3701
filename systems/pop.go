package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdatePopInput hit-tests pointer activations against the balloon stack.
// The topmost balloon under the point wins and consumes the activation;
// points over the shell bar belong to the page chrome and never reach the
// balloons. Where no balloon body is, the click falls through to the page.
// Popping stays valid while spawning is disabled.
func UpdatePopInput(e *ecs.ECS) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		popAt(e, float64(x), float64(y))
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		popAt(e, float64(x), float64(y))
	}
}

func popAt(e *ecs.ECS, x, y float64) {
	if y < cfg.Shell.BarHeight {
		return
	}
	if hit := BalloonAt(e, x, y); hit != nil {
		PopBalloon(e, hit)
	}
}

// BalloonAt returns the topmost live balloon whose hit region contains the
// point, or nil. The hit region is the body's full rectangle, not just the
// opaque pixels. Later spawns draw above earlier ones, so the highest id
// wins.
func BalloonAt(e *ecs.ECS, x, y float64) *donburi.Entry {
	var hit *donburi.Entry
	var hitID int64
	components.Balloon.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Popping) {
			return
		}
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		o := obj.Object
		if x < o.X || x > o.X+o.W || y < o.Y || y > o.Y+o.H {
			return
		}
		id := components.Balloon.Get(entry).ID
		if hit == nil || id > hitID {
			hit = entry
			hitID = id
		}
	})
	return hit
}
