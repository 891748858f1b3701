package factory

import (
	"math/rand"
	"testing"

	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestRandomParamsRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := cfg.Balloon

	for i := 0; i < 500; i++ {
		p := RandomParams(rng)

		if p.Size < c.SizeMin || p.Size > c.SizeMax {
			t.Fatalf("Size %f outside [%f, %f]", p.Size, c.SizeMin, c.SizeMax)
		}
		if p.HomeX < c.XMin || p.HomeX > c.XMax {
			t.Fatalf("HomeX %f outside [%f, %f]", p.HomeX, c.XMin, c.XMax)
		}
		if p.Hue < 0 || p.Hue >= c.HueMax {
			t.Fatalf("Hue %f outside [0, %f)", p.Hue, c.HueMax)
		}
		if p.AscentDuration < c.AscentMin || p.AscentDuration > c.AscentMax {
			t.Fatalf("AscentDuration %f outside [%f, %f]", p.AscentDuration, c.AscentMin, c.AscentMax)
		}
		if p.SwayAmplitude < c.SwayMin || p.SwayAmplitude > c.SwayMax {
			t.Fatalf("SwayAmplitude %f outside [%f, %f]", p.SwayAmplitude, c.SwayMin, c.SwayMax)
		}
	}
}

func TestRandomParamsDeterministic(t *testing.T) {
	a := RandomParams(rand.New(rand.NewSource(9)))
	b := RandomParams(rand.New(rand.NewSource(9)))

	if a != b {
		t.Errorf("Same seed should produce identical params: %+v vs %+v", a, b)
	}
}

func TestCreateBalloonAssignsUniqueIDs(t *testing.T) {
	world := ecs.NewECS(donburi.NewWorld())
	CreateSpace(world, cfg.C.Width, cfg.C.Height*2, 16, 16)
	spawnerEntry := CreateSpawner(world, rand.New(rand.NewSource(2)))
	spawner := components.Spawner.Get(spawnerEntry)

	seen := map[int64]bool{}
	for i := 0; i < 50; i++ {
		entry := CreateBalloon(world, spawner)
		id := components.Balloon.Get(entry).ID
		if id == 0 {
			t.Fatal("Expected ids to start at 1")
		}
		if seen[id] {
			t.Fatalf("Duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestCreateBalloonFromWiresEntity(t *testing.T) {
	world := ecs.NewECS(donburi.NewWorld())
	spaceEntry := CreateSpace(world, cfg.C.Width, cfg.C.Height*2, 16, 16)

	params := components.BalloonData{
		ID:             7,
		HomeX:          0.5,
		Size:           48,
		Hue:            120,
		AscentDuration: 12,
		SwayAmplitude:  40,
	}
	entry := CreateBalloonFrom(world, params)

	got := components.Balloon.Get(entry)
	if *got != params {
		t.Errorf("Stored params %+v, want %+v", *got, params)
	}

	ascent := components.Ascent.Get(entry)
	if ascent.Sway == nil || ascent.Opacity == nil {
		t.Fatal("Expected sway and opacity tweens to be armed")
	}

	obj := components.Object.Get(entry)
	if obj.Object == nil {
		t.Fatal("Expected a hit-region object")
	}
	wantX := params.HomeX*float64(cfg.C.Width) - params.Size/2
	if obj.X != wantX {
		t.Errorf("Hit region X = %f, want %f", obj.X, wantX)
	}

	// The region must be registered in the collision space.
	space := components.Space.Get(spaceEntry)
	found := false
	for _, o := range space.Objects() {
		if o == obj.Object {
			found = true
		}
	}
	if !found {
		t.Error("Hit region not registered in the space")
	}
}
