package components

import (
	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the render pose of an entity.
type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64 // degrees
}

var Transform = donburi.NewComponentType[TransformData]()
