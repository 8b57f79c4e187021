package factory

import (
	"github.com/automoto/catsan64/archetypes"
	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/leveldata"
	"github.com/automoto/catsan64/shared/motion"
	"github.com/automoto/catsan64/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAvatar spawns the player avatar at the scene spawn point.
func CreateAvatar(ecs *ecs.ECS, space *resolv.Space, scene *leveldata.SceneData, tuning motion.Tuning) *donburi.Entry {
	avatar := archetypes.Avatar.Spawn(ecs)

	state := motion.NewKinematicState(scene.Spawn)
	components.Movement.SetValue(avatar, components.MovementData{
		State:      state,
		Controller: motion.NewController(tuning),
		Last: motion.Result{
			Position: state.Position,
			Facing:   state.Facing,
			Phase:    state.Phase(),
		},
	})
	components.Transform.SetValue(avatar, components.TransformData{
		Position: state.Position,
		Yaw:      state.Facing,
	})
	components.State.SetValue(avatar, components.StateData{
		CurrentState:  state.Phase(),
		PreviousState: state.Phase(),
	})

	w := cfg.Render.AvatarBody.Size[0] * cfg.Footprint.Scale
	h := cfg.Render.AvatarBody.Size[2] * cfg.Footprint.Scale
	x, y := scene.Footprint(state.Position, w, h, cfg.Footprint.Scale)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvAvatar)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = avatar
	space.Add(obj)
	components.Object.SetValue(avatar, components.ObjectData{Object: obj})

	return avatar
}
