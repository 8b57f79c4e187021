package systems

import (
	"fmt"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/fonts"
	"github.com/automoto/catsan64/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// hudLine is one row of the status panel.
type hudLine struct {
	text  string
	warn  bool
	small bool
}

// hudLines formats the avatar and camera status.
func hudLines(move *components.MovementData, footprint *components.FootprintData, camera *components.CameraData) []hudLine {
	s := move.State
	limit := move.Controller.MaxSpeed(move.Running)

	lines := []hudLine{
		{text: fmt.Sprintf("state   %s", s.Phase())},
		{text: fmt.Sprintf("speed   %.2f / %.2f", s.HorizontalSpeed(), limit)},
		{text: fmt.Sprintf("facing  %.0f°", s.Facing)},
		{text: fmt.Sprintf("pos     %.2f %.2f %.2f", s.Position.X(), s.Position.Y(), s.Position.Z())},
		{text: fmt.Sprintf("vy      %.3f", s.Velocity.Y())},
	}
	if camera != nil {
		lines = append(lines, hudLine{text: fmt.Sprintf("camera  %.0f°", camera.Orbit.Yaw)})
	}
	if footprint != nil && footprint.Over != "" {
		lines = append(lines, hudLine{
			text: fmt.Sprintf("over    %s", footprint.Over),
			warn: footprint.Clipping,
		})
	}
	if s.Phase() == cfg.StateGroundedJumpHeld {
		lines = append(lines, hudLine{text: "release jump to hop again", small: true})
	}
	return lines
}

// DrawHUD renders the movement readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	avatar, ok := tags.Avatar.First(ecs.World)
	if !ok {
		return
	}
	var camera *components.CameraData
	if c, ok := ActiveCamera(ecs); ok {
		camera = c
	}

	lines := hudLines(components.Movement.Get(avatar), components.Footprint.Get(avatar), camera)

	x, y := cfg.HUD.X, cfg.HUD.Y
	vector.DrawFilledRect(screen,
		float32(x-6), float32(y-cfg.HUD.LineHeight+2),
		220, float32(len(lines)*cfg.HUD.LineHeight+8),
		cfg.BlackOverlay, false)

	for i, line := range lines {
		clr := cfg.HUD.TextColor
		if line.warn {
			clr = cfg.HUD.WarnColor
		}
		face := fonts.HUD.Get()
		if line.small {
			face = fonts.HUDSmall.Get()
		}
		text.Draw(screen, line.text, face, x, y+i*cfg.HUD.LineHeight, clr)
	}
}
