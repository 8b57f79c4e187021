package config

import (
	"image/color"

	"github.com/automoto/catsan64/shared/motion"
)

// MovementConfig and CameraRigConfig live in shared/motion so the steppers
// stay headless; aliased here so game code reads them from config.
type MovementConfig = motion.Tuning
type CameraRigConfig = motion.CameraTuning

// Config holds general game configuration
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TPS        int
}

// FrameConfig controls how frame time is measured.
type FrameConfig struct {
	// MaxDelta caps the measured frame time in seconds so a stalled window
	// does not launch the avatar through the floor. Zero disables the cap.
	MaxDelta float64
}

// RenderConfig contains scene drawing settings
type RenderConfig struct {
	Near        float64
	Background  color.RGBA
	EdgeColor   color.RGBA
	EdgeWidth   float32
	CoinColor   color.RGBA
	CoinRadius  float64 // world units
	AvatarBody  AvatarPart
	AvatarPants AvatarPart
}

// FootprintConfig maps the top-down XZ plane into the resolv space.
type FootprintConfig struct {
	Scale    float64 // space pixels per world unit
	CellSize int
}

// AvatarPart is one box of the avatar model, relative to the avatar origin.
type AvatarPart struct {
	Offset [3]float64
	Size   [3]float64
	Color  color.RGBA
}

// CoinConfig contains the decorative coin animation
type CoinConfig struct {
	BobHeight   float64 // world units
	BobDuration float32 // seconds per half cycle
	SpinRate    float64 // degrees per second
}

// HUDConfig contains the on-screen readout
type HUDConfig struct {
	X, Y       int
	LineHeight int
	TextColor  color.RGBA
	WarnColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled     bool // Show the debug overlay
	MinimapSize float64
	MinimapPad  float64
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Camera CameraRigConfig
var Frame FrameConfig
var Render RenderConfig
var Footprint FootprintConfig
var Coin CoinConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 240, B: 60, A: 255}
	Red          = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	Blue         = color.RGBA{R: 60, G: 120, B: 255, A: 255}
	Green        = color.RGBA{R: 80, G: 200, B: 80, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Sky          = color.RGBA{R: 20, G: 24, B: 36, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Title:  "Catsan MIPS Project (SM64 Physics)",
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Movement = motion.DefaultTuning()
	Camera = motion.DefaultCameraTuning()

	Frame = FrameConfig{
		MaxDelta: 0.1,
	}

	Render = RenderConfig{
		Near:       0.1,
		Background: Sky,
		EdgeColor:  color.RGBA{R: 0, G: 0, B: 0, A: 200},
		EdgeWidth:  1.5,
		CoinColor:  Yellow,
		CoinRadius: 0.15,
		AvatarBody: AvatarPart{
			Size:  [3]float64{0.6, 1.2, 0.6},
			Color: Red,
		},
		AvatarPants: AvatarPart{
			Offset: [3]float64{0, -0.6, 0},
			Size:   [3]float64{0.42, 0.72, 0.36},
			Color:  Blue,
		},
	}

	Footprint = FootprintConfig{
		Scale:    16,
		CellSize: 4,
	}

	Coin = CoinConfig{
		BobHeight:   0.15,
		BobDuration: 0.8,
		SpinRate:    120,
	}

	HUD = HUDConfig{
		X:          12,
		Y:          22,
		LineHeight: 18,
		TextColor:  White,
		WarnColor:  Orange,
	}

	Debug = DebugConfig{
		MinimapSize: 180,
		MinimapPad:  12,
	}
}
