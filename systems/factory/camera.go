package factory

import (
	"github.com/automoto/catsan64/archetypes"
	"github.com/automoto/catsan64/components"
	"github.com/automoto/catsan64/shared/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns an orbit camera attached to target.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry, rig motion.CameraTuning) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	orbit := motion.NewOrbitCamera(rig)
	pose := orbit.Pose(components.Transform.Get(target).Position)
	components.Camera.SetValue(camera, components.CameraData{
		Orbit: orbit,
		Pose:  pose,
	})
	components.Attachment.SetValue(camera, components.AttachmentData{Target: target.Entity()})

	return camera
}
