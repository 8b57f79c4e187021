package leveldata

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/lafriks/go-tiled"
	"golang.org/x/image/colornames"
)

var (
	ErrNoSpawn      = errors.New("no spawn point")
	ErrUnknownColor = errors.New("unknown colour name")
)

// Properties read from map objects.
const (
	propY      = "y"      // world height of the object's centre
	propHeight = "height" // platform size along world Y
	propColor  = "color"  // an SVG colour name
)

// LoadScene parses a TMX file into scene data. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadScene(fsys fs.FS, tmxPath string) (*SceneData, error) {
	sceneMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	g := grid{
		tileW: float64(sceneMap.TileWidth),
		tileH: float64(sceneMap.TileHeight),
		halfW: float64(sceneMap.Width) / 2,
		halfD: float64(sceneMap.Height) / 2,
	}
	data := &SceneData{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(sceneMap.Width),
		Depth: float64(sceneMap.Height),
	}

	spawnFound := false
	for _, og := range sceneMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				p, err := g.platform(o)
				if err != nil {
					return nil, fmt.Errorf("%s: platform %q: %w", tmxPath, o.Name, err)
				}
				data.Platforms = append(data.Platforms, p)
			}
		case GroupCoins:
			for _, o := range og.Objects {
				data.Coins = append(data.Coins, Coin{
					Position: g.point(o.X, o.Y, o.Properties.GetFloat(propY)),
				})
			}
		case GroupSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.Spawn = g.point(o.X, o.Y, o.Properties.GetFloat(propY))
				spawnFound = true
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	return data, nil
}

// LoadAllScenes discovers all .tmx files in dir within fsys and returns them
// keyed by stem name, plus the sorted names.
func LoadAllScenes(fsys fs.FS, dir string) (map[string]*SceneData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	scenes := make(map[string]*SceneData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadScene(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		scenes[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return scenes, names, nil
}

type grid struct {
	tileW, tileH float64
	halfW, halfD float64
}

func (g grid) point(px, py, y float64) gamemath.Vec3 {
	return gamemath.Vec3{px/g.tileW - g.halfW, y, g.halfD - py/g.tileH}
}

func (g grid) platform(o *tiled.Object) (Platform, error) {
	c, err := parseColor(o.Properties.GetString(propColor))
	if err != nil {
		return Platform{}, err
	}
	w := o.Width / g.tileW
	d := o.Height / g.tileH
	center := g.point(o.X+o.Width/2, o.Y+o.Height/2, o.Properties.GetFloat(propY))
	return Platform{
		Name:   o.Name,
		Center: center,
		Size:   gamemath.Vec3{w, o.Properties.GetFloat(propHeight), d},
		Color:  c,
	}, nil
}

func parseColor(name string) (color.RGBA, error) {
	if name == "" {
		return colornames.Gray, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%q: %w", name, ErrUnknownColor)
	}
	return c, nil
}
