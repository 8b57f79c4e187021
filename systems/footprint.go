package systems

import (
	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/automoto/catsan64/tags"
	"github.com/rs/zerolog/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFootprints moves each avatar's footprint to its position and records
// the platform it overlaps. Platforms have no collision response; the ground
// plane is the only support, so an overlap here means the avatar is floating
// over or clipping through the platform.
func UpdateFootprints(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	scene := components.Level.Get(levelEntry).Scene

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		transform := components.Transform.Get(entry)
		footprint := components.Footprint.Get(entry)

		obj.X, obj.Y = scene.Footprint(transform.Position, obj.W, obj.H, cfg.Footprint.Scale)
		obj.Update()

		next := findFootprint(obj.Object, transform.Position)
		if next != *footprint {
			log.Debug().
				Str("platform", next.Over).
				Bool("clipping", next.Clipping).
				Msg("footprint")
		}
		*footprint = next
	})
}

// findFootprint returns the highest platform whose footprint overlaps obj.
func findFootprint(obj *resolv.Object, pos gamemath.Vec3) components.FootprintData {
	var best components.FootprintData
	found := false

	check := obj.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return best
	}
	for _, other := range check.ObjectsByTags(tags.ResolvPlatform) {
		if !overlaps(obj, other) {
			continue
		}
		platform, ok := other.Data.(*donburi.Entry)
		if !ok || !platform.Valid() {
			continue
		}
		box := components.Box.Get(platform)
		center := components.Transform.Get(platform).Position
		top := center.Y() + box.Size.Y()/2
		if found && top <= best.TopY {
			continue
		}
		found = true

		half := cfg.Render.AvatarBody.Size[1] / 2
		best = components.FootprintData{
			Over:     box.Name,
			TopY:     top,
			Clipping: pos.Y()-half < top && pos.Y()+half > center.Y()-box.Size.Y()/2,
		}
	}
	return best
}

// overlaps is a strict AABB test; resolv's cell check only says the two
// objects share a cell.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
