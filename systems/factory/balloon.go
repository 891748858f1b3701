package factory

import (
	"math/rand"

	"github.com/pmattheis/balloonfield/archetypes"
	"github.com/pmattheis/balloonfield/components"
	"github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RandomParams draws the five balloon parameters, each uniform within its
// configured range. Pure apart from the rand source; pass a seeded one for
// deterministic tests.
func RandomParams(rng *rand.Rand) components.BalloonData {
	c := config.Balloon
	return components.BalloonData{
		HomeX:          uniform(rng, c.XMin, c.XMax),
		Size:           uniform(rng, c.SizeMin, c.SizeMax),
		Hue:            uniform(rng, 0, c.HueMax),
		AscentDuration: uniform(rng, c.AscentMin, c.AscentMax),
		SwayAmplitude:  uniform(rng, c.SwayMin, c.SwayMax),
	}
}

// CreateBalloon spawns a balloon with freshly drawn random parameters and
// the next monotonic id from the spawner.
func CreateBalloon(ecs *ecs.ECS, spawner *components.SpawnerData) *donburi.Entry {
	params := RandomParams(spawner.Rand)
	params.ID = spawner.NextID
	spawner.NextID++
	return CreateBalloonFrom(ecs, params)
}

// CreateBalloonFrom spawns a balloon from explicit parameters. The entity
// starts just below the bottom edge with its sway and opacity tweens armed
// and a hit-region object registered in the collision space.
func CreateBalloonFrom(ecs *ecs.ECS, params components.BalloonData) *donburi.Entry {
	b := archetypes.Balloon.Spawn(ecs)
	components.Balloon.SetValue(b, params)

	c := config.Balloon
	dur := float32(params.AscentDuration)
	amp := float32(params.SwayAmplitude)

	// Horizontal drift through fixed waypoints relative to the home
	// position: out, past center the other way, partway back, home.
	sway := gween.NewSequence()
	sway.Add(
		gween.New(0, amp, dur*0.25, ease.InOutQuad),
		gween.New(amp, -0.6*amp, dur*0.25, ease.InOutQuad),
		gween.New(-0.6*amp, 0.4*amp, dur*0.25, ease.InOutQuad),
		gween.New(0.4*amp, 0, dur*0.25, ease.InOutQuad),
	)

	bodyH := params.BodyHeight(c.BodyHeightRatio)
	components.Ascent.Set(b, &components.AscentData{
		Sway:    sway,
		Opacity: gween.New(float32(c.OpacityStart), 1.0, dur*float32(c.OpacityRampFrac), ease.Linear),
		X:       params.HomeX * float64(config.C.Width),
		TopY:    float64(config.C.Height),
		Alpha:   c.OpacityStart,
	})

	obj := resolv.NewObject(
		params.HomeX*float64(config.C.Width)-params.Size/2,
		float64(config.C.Height),
		params.Size, bodyH+c.KnotHeight,
		tags.ResolvBalloon,
	)
	obj.Data = b
	components.Object.Set(b, &components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return b
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
