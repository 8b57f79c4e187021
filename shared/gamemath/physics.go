package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// InputDirection turns opposing digital axes into a unit XZ direction.
// ok is false when the axes cancel out.
func InputDirection(dx, dz float64) (x, z float64, ok bool) {
	dir := mgl64.Vec2{dx, dz}
	if dir.Len() == 0 {
		return 0, 0, false
	}
	dir = dir.Normalize()
	return dir.X(), dir.Y(), true
}

// HeadingDegrees returns the yaw in degrees of the XZ direction (dx, dz).
// 0 faces +Z and 90 faces +X.
func HeadingDegrees(dx, dz float64) float64 {
	return mgl64.RadToDeg(math.Atan2(dx, dz))
}

// ApplyDecay removes fraction of the horizontal velocity. It approaches zero
// geometrically and never snaps.
func ApplyDecay(v Vec3, fraction float64) Vec3 {
	v[0] -= fraction * v[0]
	v[2] -= fraction * v[2]
	return v
}

// ClampHorizontal caps the XZ speed at max while keeping its direction.
// Y is left untouched.
func ClampHorizontal(v Vec3, max float64) Vec3 {
	speed := HorizontalLen(v)
	if speed > max {
		factor := max / speed
		v[0] *= factor
		v[2] *= factor
	}
	return v
}

// ClampMin returns value, raised to floor if below it.
func ClampMin(value, floor float64) float64 {
	return math.Max(value, floor)
}
