package systems

import (
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/systems/factory"
	"github.com/pmattheis/balloonfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner owns the population policy: a burst of balloons when the
// shell flips from disabled to enabled, then one per spawn period while
// enabled, refusing (never evicting) once the live set is at the cap.
// Disabling only stops the timer; airborne balloons keep flying.
func UpdateSpawner(e *ecs.ECS) {
	settingsEntry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(settingsEntry)

	spawnerEntry, ok := components.Spawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)

	enabled := settings.BalloonsEnabled
	justEnabled := enabled && !spawner.WasEnabled
	spawner.WasEnabled = enabled

	if !enabled {
		return
	}

	if justEnabled {
		spawner.Ticks = 0
		for i := 0; i < cfg.Balloon.BurstCount; i++ {
			if LiveBalloonCount(e) >= cfg.Balloon.MaxLive {
				break
			}
			factory.CreateBalloon(e, spawner)
		}
		return
	}

	spawner.Ticks++
	if spawner.Ticks < spawnPeriodTicks() {
		return
	}
	// The timer keeps its cadence regardless of whether this tick spawned.
	spawner.Ticks = 0
	if LiveBalloonCount(e) >= cfg.Balloon.MaxLive {
		return
	}
	factory.CreateBalloon(e, spawner)
}

// LiveBalloonCount counts balloons still in the live set. Popped balloons
// whose shrink transition is playing are already gone for every purpose
// except drawing.
func LiveBalloonCount(e *ecs.ECS) int {
	count := 0
	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Popping) {
			count++
		}
	})
	return count
}

func spawnPeriodTicks() int {
	return int(cfg.Balloon.SpawnEvery * float64(cfg.C.TPS))
}
