package factory

import (
	"github.com/automoto/catsan64/archetypes"
	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/leveldata"
	"github.com/automoto/catsan64/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a static box and registers its footprint. The
// scene-wide ground slab is tagged separately so footprint queries skip it.
func CreatePlatform(ecs *ecs.ECS, space *resolv.Space, scene *leveldata.SceneData, p leveldata.Platform, isGround bool) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	components.Box.SetValue(platform, components.BoxData{
		Name:  p.Name,
		Size:  p.Size,
		Color: p.Color,
	})
	components.Transform.SetValue(platform, components.TransformData{Position: p.Center})

	tag := tags.ResolvPlatform
	if isGround {
		tag = tags.ResolvGround
	}
	w := p.Size.X() * cfg.Footprint.Scale
	h := p.Size.Z() * cfg.Footprint.Scale
	x, y := scene.Footprint(p.Center, w, h, cfg.Footprint.Scale)
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	space.Add(obj)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	return platform
}
