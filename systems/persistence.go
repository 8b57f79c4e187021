package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/catsan64/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const settingsKey = "settings"

// SavedSettings is the on-disk form of the user toggles.
type SavedSettings struct {
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
}

// settingsStore is the subset of gdata.Manager the settings code needs.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence opens the gdata store for settings. Without it the game
// still runs; settings just don't survive a restart.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	store = m
	return nil
}

// LoadSettings reads saved settings. It returns nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes the settings to disk.
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings stores the toggles held by the settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
	}
	if err := SaveSettings(saved); err != nil {
		log.Warn().Err(err).Msg("settings not saved")
	}
}

// ApplySavedSettings copies saved toggles into the settings component and
// the window.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Debug = saved.Debug
	s.Fullscreen = saved.Fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)
}
