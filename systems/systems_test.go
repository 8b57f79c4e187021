package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/automoto/catsan64/shared/leveldata"
	"github.com/automoto/catsan64/systems/factory"
	"github.com/automoto/catsan64/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = 1.0 / 60

// testScene is a small floor with one raised block north-east of the spawn.
func testScene() *leveldata.SceneData {
	return &leveldata.SceneData{
		Name:  "test",
		Width: 18,
		Depth: 18,
		Spawn: gamemath.Vec3{0, 1, 0},
		Platforms: []leveldata.Platform{
			{
				Name:   "ground",
				Center: gamemath.Vec3{},
				Size:   gamemath.Vec3{18, 1, 18},
				Color:  color.RGBA{G: 200, A: 255},
			},
			{
				Name:   "block",
				Center: gamemath.Vec3{3, 1, 3},
				Size:   gamemath.Vec3{2, 2, 2},
				Color:  color.RGBA{B: 200, A: 255},
			},
		},
		Coins: []leveldata.Coin{{Position: gamemath.Vec3{-2, 1.5, 4}}},
	}
}

type testWorld struct {
	ecs    *ecs.ECS
	avatar *donburi.Entry
	camera *donburi.Entry
}

func newTestWorld(t *testing.T) testWorld {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	scene := testScene()
	factory.CreateLevel(e, scene)
	space := components.Space.Get(factory.CreateSpace(e, scene))
	for i, p := range scene.Platforms {
		factory.CreatePlatform(e, space, scene, p, i == 0)
	}
	for _, c := range scene.Coins {
		factory.CreateCoin(e, c, 0)
	}

	avatar := factory.CreateAvatar(e, space, scene, cfg.Movement)
	camera := factory.CreateCamera(e, avatar, cfg.Camera)
	require.True(t, avatar.Valid())

	return testWorld{ecs: e, avatar: avatar, camera: camera}
}

// platform returns the platform entry with the given box name.
func (tw testWorld) platform(name string) *donburi.Entry {
	var found *donburi.Entry
	tags.Platform.Each(tw.ecs.World, func(entry *donburi.Entry) {
		if components.Box.Get(entry).Name == name {
			found = entry
		}
	})
	return found
}

// step runs the gameplay systems for one frame with a fixed delta and the
// given actions held.
func (tw testWorld) step(dt float64, held ...cfg.ActionID) {
	input := getOrCreateInput(tw.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}

	setDelta(GetOrCreateClock(tw.ecs), dt)

	UpdateMovement(tw.ecs)
	UpdateStates(tw.ecs)
	UpdateOrbitCamera(tw.ecs)
	UpdateAttachments(tw.ecs)
	UpdateFootprints(tw.ecs)
	UpdateCoins(tw.ecs)
}
