package factory

import (
	"github.com/automoto/catsan64/archetypes"
	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the top-down footprint space covering the scene.
func CreateSpace(ecs *ecs.ECS, scene *leveldata.SceneData) *donburi.Entry {
	width := int(scene.Width * cfg.Footprint.Scale)
	height := int(scene.Depth * cfg.Footprint.Scale)
	cell := cfg.Footprint.CellSize

	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cell, cell)
	components.Space.Set(space, spaceData)
	return space
}

// CreateLevel stores the loaded scene as a singleton.
func CreateLevel(ecs *ecs.ECS, scene *leveldata.SceneData) *donburi.Entry {
	level := ecs.World.Entry(ecs.World.Create(components.Level))
	components.Level.SetValue(level, components.LevelData{Scene: scene})
	return level
}
