package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a world-space vector: X, Y (up), Z ("forward" at yaw 0).
type Vec3 = mgl64.Vec3

// Up is the world vertical.
var Up = Vec3{0, 1, 0}

// RotateY rotates v around the vertical axis by deg degrees. Positive angles
// turn +Z toward +X, matching HeadingDegrees.
func RotateY(v Vec3, deg float64) Vec3 {
	return mgl64.Rotate3DY(mgl64.DegToRad(deg)).Mul3x1(v)
}

// HorizontalLen returns the length of the XZ projection.
func HorizontalLen(v Vec3) float64 {
	return mgl64.Vec2{v.X(), v.Z()}.Len()
}
