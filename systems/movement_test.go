package systems

import (
	"math"
	"testing"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMovementWritesTransform(t *testing.T) {
	tw := newTestWorld(t)

	for i := 0; i < 30; i++ {
		tw.step(frame, cfg.ActionForward, cfg.ActionRight)
	}

	mv := components.Movement.Get(tw.avatar)
	transform := components.Transform.Get(tw.avatar)
	assert.Equal(t, mv.State.Position, transform.Position)
	assert.Equal(t, mv.State.Facing, transform.Yaw)
	assert.InDelta(t, 45, transform.Yaw, 1e-9)
	assert.Greater(t, transform.Position.Z(), 0.0)
	assert.Greater(t, transform.Position.X(), 0.0)
	assert.Zero(t, GetOrCreateClock(tw.ecs).Rejected)
}

func TestUpdateMovementRunCap(t *testing.T) {
	tw := newTestWorld(t)

	for i := 0; i < 120; i++ {
		tw.step(frame, cfg.ActionForward, cfg.ActionRun)
	}

	mv := components.Movement.Get(tw.avatar)
	assert.True(t, mv.Running)
	assert.InDelta(t, cfg.Movement.MaxRun, mv.State.HorizontalSpeed(), 1e-9)
}

func TestUpdateMovementRejectsBadDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"negative", -frame},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			tw.step(frame, cfg.ActionForward)
			before := components.Movement.Get(tw.avatar).State
			yaw := components.Camera.Get(tw.camera).Orbit.Yaw

			tw.step(tc.dt, cfg.ActionForward, cfg.ActionCameraLeft)

			assert.Equal(t, before, components.Movement.Get(tw.avatar).State)
			assert.Equal(t, yaw, components.Camera.Get(tw.camera).Orbit.Yaw)
			// both steppers skip, the frame counts once
			assert.Equal(t, uint64(1), GetOrCreateClock(tw.ecs).Rejected)
		})
	}
}

func TestUpdateStatesTracksPhase(t *testing.T) {
	tw := newTestWorld(t)

	tw.step(frame)
	state := components.State.Get(tw.avatar)
	require.Equal(t, cfg.StateGroundedIdle, state.CurrentState)
	assert.Equal(t, 1, state.StateTimer)

	tw.step(frame, cfg.ActionJump)
	state = components.State.Get(tw.avatar)
	assert.Equal(t, cfg.StateAirborne, state.CurrentState)
	assert.Equal(t, cfg.StateGroundedIdle, state.PreviousState)
	assert.Zero(t, state.StateTimer)
}
