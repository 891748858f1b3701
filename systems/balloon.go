package systems

import (
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBalloons advances every balloon's independent timeline by one tick:
// linear ascent, waypoint sway, the opacity ramp, and the shrink transition
// of popped balloons. Balloons whose timeline finishes are removed silently
// (natural completion is the only removal path without a pop sound).
func UpdateBalloons(e *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)

	var finished []*donburi.Entry
	components.Balloon.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Popping) {
			popping := components.Popping.Get(entry)
			scale, done := popping.Shrink.Update(float32(dt))
			popping.Scale = float64(scale)
			if done {
				finished = append(finished, entry)
			}
			return
		}

		balloon := components.Balloon.Get(entry)
		ascent := components.Ascent.Get(entry)

		ascent.Elapsed += dt
		offset, _, _ := ascent.Sway.Update(float32(dt))
		alpha, _ := ascent.Opacity.Update(float32(dt))

		progress := ascent.Elapsed / balloon.AscentDuration
		if progress >= 1 {
			finished = append(finished, entry)
			return
		}

		bodyH := balloon.BodyHeight(cfg.Balloon.BodyHeightRatio)
		total := bodyH + cfg.Balloon.KnotHeight + balloon.Size*cfg.Balloon.StringRatio
		screenH := float64(cfg.C.Height)

		ascent.X = balloon.HomeX*float64(cfg.C.Width) + float64(offset)
		ascent.TopY = screenH - (screenH+total)*progress
		ascent.Alpha = float64(alpha)

		// Keep the hit region under the body.
		obj := components.Object.Get(entry)
		obj.X = ascent.X - balloon.Size/2
		obj.Y = ascent.TopY
		obj.Update()
	})

	for _, entry := range finished {
		RemoveBalloon(e, entry)
	}
}

// RemoveBalloon drops a balloon from the world and its hit region from the
// collision space. Removal is idempotent: whichever of natural completion
// and pop arrives first wins, and a second request for the same entity is
// a no-op.
func RemoveBalloon(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	detachHitRegion(e, entry)
	entry.Remove()
}

// PopBalloon handles user activation: the balloon leaves the live set
// immediately, the synthesizer is invoked exactly once, and a short
// shrink/fade plays before the entity is dropped. Popping an already
// popped or removed balloon has no effect.
func PopBalloon(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() || entry.HasComponent(components.Popping) {
		return
	}

	PlayPop(e)

	// Ineligible for a second pop from this moment on.
	detachHitRegion(e, entry)
	entry.AddComponent(components.Popping)
	components.Popping.Set(entry, &components.PoppingData{
		Shrink: gween.New(1, 0, float32(cfg.Balloon.PopShrinkTime), ease.InQuad),
		Scale:  1,
	})
}

func detachHitRegion(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	obj.Object = nil
}
