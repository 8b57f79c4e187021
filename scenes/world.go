package scenes

import (
	"sync"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/leveldata"
	"github.com/automoto/catsan64/systems"
	"github.com/automoto/catsan64/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundName is the platform that doubles as the scene floor.
const groundName = "ground"

// WorldScene runs the avatar, its orbit camera and the static scene.
type WorldScene struct {
	ecs   *ecs.ECS
	scene *leveldata.SceneData
	saved *systems.SavedSettings
	once  sync.Once
}

// NewWorldScene prepares a scene for the loaded level. saved may be nil.
func NewWorldScene(scene *leveldata.SceneData, saved *systems.SavedSettings) *WorldScene {
	return &WorldScene{scene: scene, saved: saved}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

// Quitting reports whether the player asked to leave.
func (ws *WorldScene) Quitting() bool {
	if ws.ecs == nil {
		return false
	}
	return systems.GetOrCreateSettings(ws.ecs).Quit
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateOrbitCamera)
	ecs.AddSystem(systems.UpdateAttachments)
	ecs.AddSystem(systems.UpdateFootprints)
	ecs.AddSystem(systems.UpdateCoins)

	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ws.ecs = ecs
	populate(ws.ecs, ws.scene)

	systems.ApplySavedSettings(systems.GetOrCreateSettings(ws.ecs), ws.saved)
}

// populate creates the level, its footprint space, platforms, coins, the
// avatar and the camera attached to it.
func populate(e *ecs.ECS, scene *leveldata.SceneData) *donburi.Entry {
	factory.CreateLevel(e, scene)
	spaceEntry := factory.CreateSpace(e, scene)
	space := components.Space.Get(spaceEntry)

	for i, p := range scene.Platforms {
		isGround := p.Name == groundName || (i == 0 && p.Name == "")
		factory.CreatePlatform(e, space, scene, p, isGround)
	}

	for i, c := range scene.Coins {
		phase := float32(i) * cfg.Coin.BobDuration / float32(len(scene.Coins))
		factory.CreateCoin(e, c, phase)
	}

	avatar := factory.CreateAvatar(e, space, scene, cfg.Movement)
	factory.CreateCamera(e, avatar, cfg.Camera)

	log.Info().
		Str("scene", scene.Name).
		Int("platforms", len(scene.Platforms)).
		Int("coins", len(scene.Coins)).
		Msg("scene ready")

	return avatar
}
