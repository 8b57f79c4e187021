package systems

import (
	"image"
	"image/color"
	"sort"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/automoto/catsan64/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// boxFace is one side of a unit box: its outward normal, the four corner
// signs and the light factor applied to the base colour.
type boxFace struct {
	normal  gamemath.Vec3
	corners [4]gamemath.Vec3
	shade   float64
}

var boxFaces = [6]boxFace{
	{gamemath.Vec3{0, 1, 0}, [4]gamemath.Vec3{{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1}}, 1.0},
	{gamemath.Vec3{0, -1, 0}, [4]gamemath.Vec3{{-1, -1, -1}, {-1, -1, 1}, {1, -1, 1}, {1, -1, -1}}, 0.45},
	{gamemath.Vec3{1, 0, 0}, [4]gamemath.Vec3{{1, -1, -1}, {1, -1, 1}, {1, 1, 1}, {1, 1, -1}}, 0.8},
	{gamemath.Vec3{-1, 0, 0}, [4]gamemath.Vec3{{-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1}}, 0.7},
	{gamemath.Vec3{0, 0, 1}, [4]gamemath.Vec3{{-1, -1, 1}, {-1, 1, 1}, {1, 1, 1}, {1, -1, 1}}, 0.85},
	{gamemath.Vec3{0, 0, -1}, [4]gamemath.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}}, 0.6},
}

// polygon is a clipped, camera-space face ready to be painted.
type polygon struct {
	points []gamemath.Vec3
	depth  float64
	color  color.RGBA
}

// boxPolygons returns the camera-facing sides of a box rotated by yaw
// degrees around its centre.
func boxPolygons(view gamemath.View, center, size gamemath.Vec3, yaw float64, clr color.RGBA) []polygon {
	rot := mgl64.Rotate3DY(mgl64.DegToRad(yaw))
	// unit-box signs to world offsets from center
	local := rot.Mul3(mgl64.Diag3(size.Mul(0.5)))
	out := make([]polygon, 0, 3)
	for _, f := range boxFaces {
		normal := rot.Mul3x1(f.normal)
		faceCenter := center.Add(local.Mul3x1(f.normal))
		if normal.Dot(view.Eye.Sub(faceCenter)) <= 0 {
			continue
		}

		corners := make([]gamemath.Vec3, 0, 4)
		for _, c := range f.corners {
			corners = append(corners, center.Add(local.Mul3x1(c)))
		}
		pts := gamemath.ClipNear(view.ToCameraAll(corners), view.Near)
		if len(pts) < 3 {
			continue
		}

		out = append(out, polygon{
			points: pts,
			depth:  view.ToCamera(faceCenter).Z(),
			color:  shade(clr, f.shade),
		})
	}
	return out
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// sceneView builds the projection for the active camera.
func sceneView(camera *components.CameraData, width, height int) gamemath.View {
	return gamemath.View{
		Eye:    camera.Pose.Eye,
		Yaw:    camera.Pose.Yaw,
		Pitch:  camera.Pose.Pitch,
		FOV:    camera.Orbit.Tuning().FOV,
		Width:  float64(width),
		Height: float64(height),
		Near:   cfg.Render.Near,
	}
}

// collectPolygons gathers every visible face in the world, farthest first.
func collectPolygons(w donburi.World, view gamemath.View) []polygon {
	var polys []polygon

	tags.Platform.Each(w, func(entry *donburi.Entry) {
		box := components.Box.Get(entry)
		transform := components.Transform.Get(entry)
		polys = append(polys, boxPolygons(view, transform.Position, box.Size, transform.Yaw, box.Color)...)
	})

	tags.Coin.Each(w, func(entry *donburi.Entry) {
		transform := components.Transform.Get(entry)
		d := cfg.Render.CoinRadius * 2
		size := gamemath.Vec3{d, d, d / 4}
		polys = append(polys, boxPolygons(view, transform.Position, size, transform.Yaw, cfg.Render.CoinColor)...)
	})

	tags.Avatar.Each(w, func(entry *donburi.Entry) {
		transform := components.Transform.Get(entry)
		for _, part := range []cfg.AvatarPart{cfg.Render.AvatarBody, cfg.Render.AvatarPants} {
			offset := gamemath.RotateY(gamemath.Vec3(part.Offset), transform.Yaw)
			polys = append(polys, boxPolygons(view, transform.Position.Add(offset), gamemath.Vec3(part.Size), transform.Yaw, part.Color)...)
		}
	})

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].depth > polys[j].depth
	})
	return polys
}

// DrawScene paints the static scene, coins and avatar from the orbit camera.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := ActiveCamera(e)
	if !ok {
		return
	}
	view := sceneView(camera, screen.Bounds().Dx(), screen.Bounds().Dy())

	for _, p := range collectPolygons(e.World, view) {
		drawPolygon(screen, view, p)
	}
}

func drawPolygon(screen *ebiten.Image, view gamemath.View, p polygon) {
	var path vector.Path
	xs := make([]float32, len(p.points))
	ys := make([]float32, len(p.points))
	for i, pt := range p.points {
		sx, sy := view.ScreenPoint(pt)
		xs[i], ys[i] = float32(sx), float32(sy)
		if i == 0 {
			path.MoveTo(xs[i], ys[i])
		} else {
			path.LineTo(xs[i], ys[i])
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(p.color.R)/255, float32(p.color.G)/255, float32(p.color.B)/255, float32(p.color.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	edge := cfg.Render.EdgeColor
	for i := range xs {
		j := (i + 1) % len(xs)
		vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], cfg.Render.EdgeWidth, edge, true)
	}
}
