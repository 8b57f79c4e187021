package components

import (
	"github.com/automoto/catsan64/shared/motion"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Orbit *motion.OrbitCamera
	Pose  motion.CameraPose
}

var Camera = donburi.NewComponentType[CameraData]()

// AttachmentData is a weak reference from an entity to the one it follows.
// The target is looked up every frame and never owned.
type AttachmentData struct {
	Target donburi.Entity
}

var Attachment = donburi.NewComponentType[AttachmentData]()
