package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug draws the footprint space as a top-down minimap in the
// top-right corner, plus frame timing.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	clock := GetOrCreateClock(ecs)
	width := float64(screen.Bounds().Dx())
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("TPS %.0f  FPS %.0f  dt %.4f  frame %d  rejected %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), clock.Delta, clock.Frame, clock.Rejected),
		cfg.HUD.X-6, screen.Bounds().Dy()-20)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	scene := components.Level.Get(levelEntry).Scene

	size := cfg.Debug.MinimapSize
	spaceW := scene.Width * cfg.Footprint.Scale
	spaceH := scene.Depth * cfg.Footprint.Scale
	if spaceW == 0 || spaceH == 0 {
		return
	}
	scale := size / spaceW
	if s := size / spaceH; s < scale {
		scale = s
	}
	ox := width - cfg.Debug.MinimapPad - spaceW*scale
	oy := cfg.Debug.MinimapPad

	vector.DrawFilledRect(screen, float32(ox), float32(oy), float32(spaceW*scale), float32(spaceH*scale), cfg.BlackOverlay, false)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvGround) {
			continue
		} else if obj.HasTags(tags.ResolvAvatar) {
			c = cfg.Red
		} else if obj.HasTags(tags.ResolvPlatform) {
			c = color.RGBA{180, 180, 180, 255}
		}

		x := float32(ox + obj.X*scale)
		y := float32(oy + obj.Y*scale)
		vector.StrokeRect(screen, x, y, float32(obj.W*scale), float32(obj.H*scale), 1, c, false)
	}
}
