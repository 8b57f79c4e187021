package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

const sceneTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="4">
 <objectgroup id="1" name="Platforms">
  <object id="1" name="slab" x="0" y="0" width="32" height="16">
   <properties>
    <property name="color" value="Gold"/>
    <property name="height" type="float" value="1"/>
    <property name="y" type="float" value="0.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Coins">
  <object id="2" x="48" y="16">
   <properties>
    <property name="y" type="float" value="1.5"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Spawn">
  <object id="3" x="32" y="32">
   <properties>
    <property name="y" type="float" value="1"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <objectgroup id="1" name="Platforms"/>
</map>
`

const badColorTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <objectgroup id="1" name="Platforms">
  <object id="1" name="slab" x="0" y="0" width="16" height="16">
   <properties>
    <property name="color" value="not-a-colour"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Spawn">
  <object id="2" x="0" y="0"><point/></object>
 </objectgroup>
</map>
`

func TestLoadScene(t *testing.T) {
	fsys := fstest.MapFS{"scenes/test.tmx": {Data: []byte(sceneTMX)}}

	data, err := LoadScene(fsys, "scenes/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", data.Name)
	assert.Equal(t, 4.0, data.Width)
	assert.Equal(t, 4.0, data.Depth)

	require.Len(t, data.Platforms, 1)
	slab := data.Platforms[0]
	assert.Equal(t, "slab", slab.Name)
	assert.Equal(t, gamemath.Vec3{-1, 0.5, 1.5}, slab.Center)
	assert.Equal(t, gamemath.Vec3{2, 1, 1}, slab.Size)
	assert.Equal(t, colornames.Gold, slab.Color)

	require.Len(t, data.Coins, 1)
	assert.Equal(t, gamemath.Vec3{1, 1.5, 1}, data.Coins[0].Position)

	assert.Equal(t, gamemath.Vec3{0, 1, 0}, data.Spawn)
}

func TestSceneFootprint(t *testing.T) {
	scene := &SceneData{Width: 18, Depth: 18}

	tests := []struct {
		name  string
		pos   gamemath.Vec3
		w, h  float64
		scale float64
		wantX float64
		wantY float64
	}{
		{"origin point", gamemath.Vec3{}, 0, 0, 16, 9 * 16, 9 * 16},
		{"origin box", gamemath.Vec3{}, 32, 16, 16, 9*16 - 16, 9*16 - 8},
		{"north is up", gamemath.Vec3{0, 5, 4}, 0, 0, 1, 9, 5},
		{"north-west corner", gamemath.Vec3{-9, 0, 9}, 0, 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := scene.Footprint(tt.pos, tt.w, tt.h, tt.scale)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestLoadSceneErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"nospawn.tmx":  {Data: []byte(noSpawnTMX)},
		"badcolor.tmx": {Data: []byte(badColorTMX)},
	}

	_, err := LoadScene(fsys, "nospawn.tmx")
	assert.ErrorIs(t, err, ErrNoSpawn)

	_, err = LoadScene(fsys, "badcolor.tmx")
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = LoadScene(fsys, "missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllScenes(t *testing.T) {
	fsys := fstest.MapFS{
		"scenes/b.tmx": {Data: []byte(sceneTMX)},
		"scenes/a.tmx": {Data: []byte(sceneTMX)},
	}

	scenes, names, err := LoadAllScenes(fsys, "scenes")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, scenes, 2)

	_, _, err = LoadAllScenes(fstest.MapFS{}, "scenes")
	assert.Error(t, err)
}
