package systems

import (
	"testing"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitCameraFollowsAvatar(t *testing.T) {
	tw := newTestWorld(t)

	for i := 0; i < 60; i++ {
		tw.step(frame, cfg.ActionCameraLeft, cfg.ActionForward)
	}

	camera := components.Camera.Get(tw.camera)
	target := components.Transform.Get(tw.avatar).Position
	assert.InDelta(t, cfg.Camera.YawRate, camera.Orbit.Yaw, 1e-9)

	want := target.Add(gamemath.RotateY(cfg.Camera.Offset, camera.Orbit.Yaw))
	assert.InDelta(t, want.X(), camera.Pose.Eye.X(), 1e-9)
	assert.InDelta(t, want.Y(), camera.Pose.Eye.Y(), 1e-9)
	assert.InDelta(t, want.Z(), camera.Pose.Eye.Z(), 1e-9)
	assert.Equal(t, cfg.Camera.Pitch, camera.Pose.Pitch)
}

func TestOrbitCameraIgnoresFacing(t *testing.T) {
	tw := newTestWorld(t)

	tw.step(frame, cfg.ActionRight)
	require.InDelta(t, 90, components.Transform.Get(tw.avatar).Yaw, 1e-9)

	assert.Zero(t, components.Camera.Get(tw.camera).Orbit.Yaw)
}

func TestAttachmentTargetRemoved(t *testing.T) {
	tw := newTestWorld(t)
	tw.step(frame, cfg.ActionForward)
	pose := components.Camera.Get(tw.camera).Pose

	tw.ecs.World.Remove(tw.avatar.Entity())
	_, ok := resolveAttachment(tw.ecs.World, tw.camera)
	assert.False(t, ok)

	assert.NotPanics(t, func() { tw.step(frame, cfg.ActionCameraRight) })
	assert.Equal(t, pose.Eye, components.Camera.Get(tw.camera).Pose.Eye)
}

func TestActiveCamera(t *testing.T) {
	tw := newTestWorld(t)

	camera, ok := ActiveCamera(tw.ecs)
	require.True(t, ok)
	assert.Same(t, components.Camera.Get(tw.camera), camera)
}
