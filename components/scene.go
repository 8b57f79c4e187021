package components

import (
	"image/color"
	"time"

	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/automoto/catsan64/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BoxData is a static box drawn by the scene renderer.
type BoxData struct {
	Name  string
	Size  gamemath.Vec3
	Color color.RGBA
}

var Box = donburi.NewComponentType[BoxData]()

// CoinData animates a decorative coin around its placement.
type CoinData struct {
	Base gamemath.Vec3
	Bob  *gween.Sequence
	Spin float64 // degrees
}

var Coin = donburi.NewComponentType[CoinData]()

// ClockData is the frame clock singleton.
type ClockData struct {
	Last     time.Time
	Delta    float64 // seconds
	Frame    uint64
	Rejected uint64 // frames whose delta the steppers refuse, counted once each
}

var Clock = donburi.NewComponentType[ClockData]()

// SettingsData holds the user toggles that survive restarts.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Quit       bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// LevelData holds the loaded scene.
type LevelData struct {
	Scene *leveldata.SceneData
}

var Level = donburi.NewComponentType[LevelData]()
