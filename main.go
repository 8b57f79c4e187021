package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/catsan64/assets"
	"github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/fonts"
	"github.com/automoto/catsan64/scenes"
	"github.com/automoto/catsan64/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const appName = "catsan64"

var CLI struct {
	Debug      bool   `help:"Enable debug logging and the debug overlay."`
	Tuning     string `help:"YAML file overriding movement and camera tuning." type:"existingfile" optional:""`
	Scene      string `help:"Embedded scene to load." default:"${default_scene}"`
	Width      int    `help:"Window width in pixels." default:"1280"`
	Height     int    `help:"Window height in pixels." default:"720"`
	Fullscreen bool   `help:"Start in fullscreen mode."`
	ListScenes bool   `help:"Print the embedded scene names and exit."`
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quitting() bool
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func run() error {
	if CLI.ListScenes {
		names, err := assets.SceneNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	if CLI.Tuning != "" {
		if err := config.LoadTuning(CLI.Tuning); err != nil {
			return err
		}
		log.Info().Str("file", CLI.Tuning).Msg("tuning loaded")
	}
	config.C.Width = CLI.Width
	config.C.Height = CLI.Height
	config.C.Fullscreen = config.C.Fullscreen || CLI.Fullscreen
	config.Debug.Enabled = CLI.Debug

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	scene, err := assets.LoadScene(CLI.Scene)
	if err != nil {
		return err
	}

	if err := systems.InitPersistence(appName); err != nil {
		log.Warn().Err(err).Msg("settings will not be saved")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring saved settings")
		saved = nil
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(config.C.Fullscreen)

	game := &Game{scene: scenes.NewWorldScene(scene, saved)}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func cliOptions() []kong.Option {
	return []kong.Option{
		kong.Name(appName),
		kong.Description("a frame-stepped third-person character controller"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{"default_scene": assets.DefaultScene},
	}
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI, cliOptions()...)

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("catsan64 failed")
	}
}
