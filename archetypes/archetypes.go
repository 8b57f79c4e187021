package archetypes

import (
	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Avatar = newArchetype(
		tags.Avatar,
		components.Movement,
		components.Transform,
		components.State,
		components.Object,
		components.Footprint,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Attachment,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Box,
		components.Transform,
		components.Object,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Transform,
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
