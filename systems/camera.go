package systems

import (
	"github.com/automoto/catsan64/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbitCamera applies the rotate input to every orbit camera.
func UpdateOrbitCamera(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	left, right := CameraInput(getOrCreateInput(e))

	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		camera := components.Camera.Get(entry)
		if _, err := camera.Orbit.Step(left, right, clock.Delta); err != nil {
			log.Debug().Err(err).Uint64("frame", clock.Frame).Msg("camera step skipped")
		}
	})
}

// UpdateAttachments resolves each camera's attachment to its target and
// places the camera around the target's current position. A camera whose
// target is gone keeps its last pose.
func UpdateAttachments(e *ecs.ECS) {
	components.Attachment.Each(e.World, func(entry *donburi.Entry) {
		target, ok := resolveAttachment(e.World, entry)
		if !ok || !entry.HasComponent(components.Camera) {
			return
		}
		camera := components.Camera.Get(entry)
		camera.Pose = camera.Orbit.Pose(components.Transform.Get(target).Position)
	})
}

// resolveAttachment looks up the live target of an attachment.
func resolveAttachment(w donburi.World, entry *donburi.Entry) (*donburi.Entry, bool) {
	att := components.Attachment.Get(entry)
	if !w.Valid(att.Target) {
		return nil, false
	}
	target := w.Entry(att.Target)
	if !target.HasComponent(components.Transform) {
		return nil, false
	}
	return target, true
}

// ActiveCamera returns the first camera's pose.
func ActiveCamera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}
