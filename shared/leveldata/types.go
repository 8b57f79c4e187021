// Package leveldata parses the Tiled scene maps. It has no dependencies on
// ebitengine, donburi or resolv; pure data only.
package leveldata

import (
	"image/color"

	"github.com/automoto/catsan64/shared/gamemath"
)

// Object group names read from a scene map.
const (
	GroupPlatforms = "Platforms"
	GroupCoins     = "Coins"
	GroupSpawn     = "Spawn"
)

// SceneData holds everything the scene factory needs from a TMX map.
// The map is laid out top-down: TMX x runs along world +X and TMX y runs along
// world -Z, one tile per world unit, centred on the origin.
type SceneData struct {
	Name      string
	Platforms []Platform
	Coins     []Coin
	Spawn     gamemath.Vec3
	Width     float64 // world units along X
	Depth     float64 // world units along Z
}

// Footprint returns the top-left corner of a w×h rectangle centred on world
// position p, in top-down map coordinates multiplied by scale.
func (s *SceneData) Footprint(p gamemath.Vec3, w, h, scale float64) (float64, float64) {
	return (p.X()+s.Width/2)*scale - w/2, (s.Depth/2-p.Z())*scale - h/2
}

// Platform is a static axis-aligned box.
type Platform struct {
	Name   string
	Center gamemath.Vec3
	Size   gamemath.Vec3
	Color  color.RGBA
}

// Coin is a decorative pickup placement.
type Coin struct {
	Position gamemath.Vec3
}
