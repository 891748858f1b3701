package systems

import (
	"math/rand"
	"testing"

	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/systems/factory"
	"github.com/pmattheis/balloonfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a headless ECS with space, settings and a seeded
// spawner, mirroring what the page scene wires up.
func newTestWorld(t *testing.T, enabled bool) (*ecs.ECS, *components.SettingsData, *components.SpawnerData) {
	t.Helper()
	world := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(world, cfg.C.Width, cfg.C.Height*2, 16, 16)
	settingsEntry := factory.CreateSettings(world, enabled, false, cfg.ThemeLight)
	spawnerEntry := factory.CreateSpawner(world, rand.New(rand.NewSource(1)))
	return world, components.Settings.Get(settingsEntry), components.Spawner.Get(spawnerEntry)
}

func ticksPerSpawn() int {
	return int(cfg.Balloon.SpawnEvery * float64(cfg.C.TPS))
}

func TestEnableSpawnsInitialBurst(t *testing.T) {
	world, _, _ := newTestWorld(t, true)

	UpdateSpawner(world)

	if got := LiveBalloonCount(world); got != cfg.Balloon.BurstCount {
		t.Fatalf("Expected burst of %d, got %d", cfg.Balloon.BurstCount, got)
	}
}

func TestPeriodicSpawnCadence(t *testing.T) {
	world, _, _ := newTestWorld(t, true)

	UpdateSpawner(world) // burst

	period := ticksPerSpawn()
	for i := 0; i < period-1; i++ {
		UpdateSpawner(world)
	}
	if got := LiveBalloonCount(world); got != cfg.Balloon.BurstCount {
		t.Fatalf("Expected no spawn before the period elapses, got %d", got)
	}

	UpdateSpawner(world)
	if got := LiveBalloonCount(world); got != cfg.Balloon.BurstCount+1 {
		t.Fatalf("Expected exactly one spawn per period, got %d", got)
	}

	// Next period adds exactly one more.
	for i := 0; i < period; i++ {
		UpdateSpawner(world)
	}
	if got := LiveBalloonCount(world); got != cfg.Balloon.BurstCount+2 {
		t.Fatalf("Expected one more after a second period, got %d", got)
	}
}

func TestSpawnRefusedAtCap(t *testing.T) {
	world, _, spawner := newTestWorld(t, true)

	for i := 0; i < cfg.Balloon.MaxLive; i++ {
		factory.CreateBalloon(world, spawner)
	}
	idsBefore := collectIDs(world)

	// Run well past several periods; the timer keeps firing but every
	// tick at the cap is a no-op.
	UpdateSpawner(world) // consumes the enable transition; cap blocks the burst
	for i := 0; i < 3*ticksPerSpawn(); i++ {
		UpdateSpawner(world)
	}

	if got := LiveBalloonCount(world); got != cfg.Balloon.MaxLive {
		t.Fatalf("Cap violated: %d live, cap %d", got, cfg.Balloon.MaxLive)
	}

	// No eviction: the same balloons are still there.
	idsAfter := collectIDs(world)
	if len(idsBefore) != len(idsAfter) {
		t.Fatalf("Live set changed size from %d to %d", len(idsBefore), len(idsAfter))
	}
	for id := range idsBefore {
		if !idsAfter[id] {
			t.Errorf("Balloon %d was evicted", id)
		}
	}
}

func TestCapResumesAfterRemoval(t *testing.T) {
	world, _, spawner := newTestWorld(t, true)

	UpdateSpawner(world)
	for LiveBalloonCount(world) < cfg.Balloon.MaxLive {
		factory.CreateBalloon(world, spawner)
	}

	// Free one slot, then let a full period elapse.
	var victim *donburi.Entry
	tags.Balloon.Each(world.World, func(entry *donburi.Entry) {
		if victim == nil {
			victim = entry
		}
	})
	RemoveBalloon(world, victim)

	for i := 0; i < ticksPerSpawn(); i++ {
		UpdateSpawner(world)
	}
	if got := LiveBalloonCount(world); got != cfg.Balloon.MaxLive {
		t.Fatalf("Expected the freed slot to refill to %d, got %d", cfg.Balloon.MaxLive, got)
	}
}

func TestDisableStopsSpawnsButKeepsBalloons(t *testing.T) {
	world, settings, _ := newTestWorld(t, true)

	UpdateSpawner(world)
	before := LiveBalloonCount(world)

	settings.BalloonsEnabled = false
	for i := 0; i < 4*ticksPerSpawn(); i++ {
		UpdateSpawner(world)
	}

	if got := LiveBalloonCount(world); got != before {
		t.Fatalf("Disable must not add or clear balloons: had %d, got %d", before, got)
	}
}

func TestReenableBurstsAgain(t *testing.T) {
	world, settings, _ := newTestWorld(t, true)

	UpdateSpawner(world)
	settings.BalloonsEnabled = false
	UpdateSpawner(world)

	settings.BalloonsEnabled = true
	UpdateSpawner(world)

	want := 2 * cfg.Balloon.BurstCount
	if got := LiveBalloonCount(world); got != want {
		t.Fatalf("Expected a second burst on top of the survivors: want %d, got %d", want, got)
	}
}

func TestIDsUniqueAcrossSession(t *testing.T) {
	world, settings, _ := newTestWorld(t, true)

	UpdateSpawner(world)
	settings.BalloonsEnabled = false
	UpdateSpawner(world)
	settings.BalloonsEnabled = true
	UpdateSpawner(world)

	ids := map[int64]int{}
	tags.Balloon.Each(world.World, func(entry *donburi.Entry) {
		ids[components.Balloon.Get(entry).ID]++
	})
	for id, n := range ids {
		if n > 1 {
			t.Errorf("Id %d assigned %d times", id, n)
		}
	}
}

func collectIDs(world *ecs.ECS) map[int64]bool {
	ids := map[int64]bool{}
	tags.Balloon.Each(world.World, func(entry *donburi.Entry) {
		ids[components.Balloon.Get(entry).ID] = true
	})
	return ids
}
