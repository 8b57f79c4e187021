package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's top-down footprint in the resolv space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// FootprintData records which platform footprint the avatar is over this frame.
// Movement ignores platforms; this only makes the overlap visible.
type FootprintData struct {
	Over     string  // platform name, empty when only over the ground
	TopY     float64 // top surface of that platform
	Clipping bool    // avatar is inside the platform volume
}

var Footprint = donburi.NewComponentType[FootprintData]()
