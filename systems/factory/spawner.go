package factory

import (
	"math/rand"
	"time"

	"github.com/pmattheis/balloonfield/archetypes"
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner creates the spawn scheduler entity. Balloons get a
// time-seeded source by default; tests pass their own.
func CreateSpawner(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Rand:   rng,
		NextID: 1,
	})
	return spawner
}

// CreateSettings creates the shell configuration entity.
func CreateSettings(ecs *ecs.ECS, enabled, muted bool, theme cfg.ThemeID) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		BalloonsEnabled: enabled,
		Muted:           muted,
		Theme:           theme,
	})
	return settings
}
