package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/catsan64/shared/leveldata"
)

const scenesDir = "scenes"

//go:embed all:scenes
var sceneFS embed.FS

// DefaultScene is the scene loaded when none is requested.
const DefaultScene = "courtyard"

// LoadScene returns the embedded scene with the given name.
func LoadScene(name string) (*leveldata.SceneData, error) {
	data, err := leveldata.LoadScene(sceneFS, fmt.Sprintf("%s/%s.tmx", scenesDir, name))
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	return data, nil
}

// SceneNames lists the embedded scenes in order.
func SceneNames() ([]string, error) {
	_, names, err := leveldata.LoadAllScenes(sceneFS, scenesDir)
	return names, err
}
