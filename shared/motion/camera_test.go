package motion

import (
	"math"
	"testing"

	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitCameraStep(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"idle", false, false, 0},
		{"left", true, false, 30},
		{"right", false, true, -30},
		{"both cancel", true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewOrbitCamera(DefaultCameraTuning())
			yaw, err := cam.Step(tt.left, tt.right, 0.5)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, yaw, 1e-12)
			assert.Equal(t, yaw, cam.Yaw)
		})
	}
}

func TestOrbitCameraYawIsUnbounded(t *testing.T) {
	cam := NewOrbitCamera(DefaultCameraTuning())
	for i := 0; i < 60*20; i++ {
		_, err := cam.Step(true, false, 1.0/60)
		require.NoError(t, err)
	}
	assert.InDelta(t, 1200, cam.Yaw, 1e-6)
}

func TestOrbitCameraRejectsInvalidDelta(t *testing.T) {
	cam := NewOrbitCamera(DefaultCameraTuning())
	cam.Yaw = 15

	for _, dt := range []float64{-1, math.NaN(), math.Inf(1)} {
		yaw, err := cam.Step(true, false, dt)
		require.ErrorIs(t, err, ErrInvalidFrameDelta)
		assert.Equal(t, 15.0, yaw)
	}
}

func TestOrbitCameraPose(t *testing.T) {
	cam := NewOrbitCamera(DefaultCameraTuning())
	target := gamemath.Vec3{2, 1, 3}

	pose := cam.Pose(target)
	assert.InDelta(t, 2, pose.Eye.X(), 1e-9)
	assert.InDelta(t, 3.5, pose.Eye.Y(), 1e-9)
	assert.InDelta(t, -7, pose.Eye.Z(), 1e-9)
	assert.Equal(t, 14.0, pose.Pitch)

	cam.Yaw = 90
	pose = cam.Pose(target)
	assert.InDelta(t, -8, pose.Eye.X(), 1e-9)
	assert.InDelta(t, 3, pose.Eye.Z(), 1e-9)
	assert.Equal(t, 90.0, pose.Yaw)
}
