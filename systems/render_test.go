package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/catsan64/components"
	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frontView(eye gamemath.Vec3) gamemath.View {
	return gamemath.View{Eye: eye, FOV: 40, Width: 1280, Height: 720, Near: 0.1}
}

func TestBoxPolygonsCulling(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	size := gamemath.Vec3{2, 2, 2}

	tests := []struct {
		name   string
		eye    gamemath.Vec3
		center gamemath.Vec3
		yaw    float64
		want   int
	}{
		{"straight on", gamemath.Vec3{0, 0, -10}, gamemath.Vec3{}, 0, 1},
		{"from above", gamemath.Vec3{0, 5, -10}, gamemath.Vec3{}, 0, 2},
		{"turned 45", gamemath.Vec3{0, 0, -10}, gamemath.Vec3{}, 45, 2},
		{"behind the eye", gamemath.Vec3{0, 0, -10}, gamemath.Vec3{0, 0, -20}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			polys := boxPolygons(frontView(tc.eye), tc.center, size, tc.yaw, base)
			assert.Len(t, polys, tc.want)
			for _, p := range polys {
				assert.GreaterOrEqual(t, len(p.points), 3)
				assert.Greater(t, p.depth, 0.0)
			}
		})
	}
}

func TestBoxPolygonsShading(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	polys := boxPolygons(frontView(gamemath.Vec3{0, 0, -10}), gamemath.Vec3{}, gamemath.Vec3{2, 2, 2}, 0, base)
	require.Len(t, polys, 1)

	assert.Equal(t, color.RGBA{R: 120, G: 60, B: 30, A: 255}, polys[0].color)
}

func TestCollectPolygonsFarthestFirst(t *testing.T) {
	tw := newTestWorld(t)
	tw.step(frame)

	camera := components.Camera.Get(tw.camera)
	polys := collectPolygons(tw.ecs.World, sceneView(camera, 1280, 720))
	require.NotEmpty(t, polys)

	for i := 1; i < len(polys); i++ {
		assert.GreaterOrEqual(t, polys[i-1].depth, polys[i].depth)
	}
}

func TestShade(t *testing.T) {
	c := color.RGBA{R: 255, G: 128, B: 0, A: 200}
	assert.Equal(t, c, shade(c, 1))
	assert.Equal(t, color.RGBA{A: 200}, shade(c, 0))
}
