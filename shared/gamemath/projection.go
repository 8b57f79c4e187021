package gamemath

import "github.com/go-gl/mathgl/mgl64"

const farPlane = 1000

// View is a pinhole camera used to project world points onto the screen.
//
// Camera space has +X to the right, +Y up and +Z as depth. The world has +X
// to the right of +Z, the mirror of mgl64's right-handed eye space, so X is
// flipped on the way in.
type View struct {
	Eye    Vec3
	Yaw    float64 // degrees, same convention as RotateY
	Pitch  float64 // degrees, positive looks down
	FOV    float64 // vertical field of view in degrees
	Width  float64
	Height float64
	Near   float64
}

func flipX(v Vec3) Vec3 {
	return Vec3{-v.X(), v.Y(), v.Z()}
}

// Forward is the unit view direction.
func (v View) Forward() Vec3 {
	pitched := mgl64.Rotate3DX(mgl64.DegToRad(v.Pitch)).Mul3x1(Vec3{0, 0, 1})
	return RotateY(pitched, v.Yaw)
}

// ModelView maps world points into mgl64 eye space (-Z forward).
func (v View) ModelView() mgl64.Mat4 {
	eye := flipX(v.Eye)
	center := flipX(v.Eye.Add(v.Forward()))
	return mgl64.LookAtV(eye, center, Up).Mul4(mgl64.Scale3D(-1, 1, 1))
}

// Projection is the perspective matrix for the view's frustum.
func (v View) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(v.FOV), v.Width/v.Height, v.Near, farPlane)
}

// ToCamera transforms a world point into camera space.
func (v View) ToCamera(p Vec3) Vec3 {
	return toCamera(v.ModelView(), p)
}

// ToCameraAll transforms a batch of world points with one model-view matrix.
func (v View) ToCameraAll(points []Vec3) []Vec3 {
	mv := v.ModelView()
	out := make([]Vec3, len(points))
	for i, p := range points {
		out[i] = toCamera(mv, p)
	}
	return out
}

func toCamera(mv mgl64.Mat4, p Vec3) Vec3 {
	eye := mv.Mul4x1(p.Vec4(1))
	return Vec3{eye.X(), eye.Y(), -eye.Z()}
}

// ScreenPoint maps a camera-space point in front of the near plane to
// pixels, origin top-left.
func (v View) ScreenPoint(c Vec3) (sx, sy float64) {
	win := mgl64.Project(Vec3{c.X(), c.Y(), -c.Z()}, mgl64.Ident4(), v.Projection(),
		0, 0, int(v.Width), int(v.Height))
	return win.X(), v.Height - win.Y()
}

// ClipNear clips a convex camera-space polygon to the part at or beyond the
// near plane. The result is empty when the polygon is entirely behind it.
func ClipNear(poly []Vec3, near float64) []Vec3 {
	out := make([]Vec3, 0, len(poly)+2)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn, prevIn := cur.Z() >= near, prev.Z() >= near
		if curIn != prevIn {
			t := (near - prev.Z()) / (cur.Z() - prev.Z())
			out = append(out, prev.Add(cur.Sub(prev).Mul(t)))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}
