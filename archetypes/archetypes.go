package archetypes

import (
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Balloon = newArchetype(
		tags.Balloon,
		components.Balloon,
		components.Ascent,
		components.Object,
		components.Sprite,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
