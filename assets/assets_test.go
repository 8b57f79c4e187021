package assets

import (
	"testing"

	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultScene(t *testing.T) {
	data, err := LoadScene(DefaultScene)
	require.NoError(t, err)

	assert.Equal(t, gamemath.Vec3{0, 1, 0}, data.Spawn)
	assert.Len(t, data.Coins, 5)
	require.Len(t, data.Platforms, 5)

	ground := data.Platforms[0]
	assert.Equal(t, "ground", ground.Name)
	assert.Equal(t, gamemath.Vec3{0, 0, 0}, ground.Center)
	assert.Equal(t, gamemath.Vec3{18, 1, 18}, ground.Size)

	hill := data.Platforms[1]
	assert.Equal(t, gamemath.Vec3{6, 1, 6}, hill.Center)
	assert.Equal(t, gamemath.Vec3{4, 2, 4}, hill.Size)
}

func TestSceneNames(t *testing.T) {
	names, err := SceneNames()
	require.NoError(t, err)
	assert.Contains(t, names, DefaultScene)

	_, err = LoadScene("nope")
	assert.Error(t, err)
}
