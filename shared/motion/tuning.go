// Package motion holds the per-frame character and camera steppers. It has no
// dependencies on ebitengine or donburi so it can be driven and tested
// headless.
package motion

import "github.com/automoto/catsan64/shared/gamemath"

// Tuning holds the movement constants. Velocities are in units per second
// except where the original per-frame tuning is kept (WalkAcc, RunAcc,
// Friction are applied once per step).
type Tuning struct {
	Gravity          float64 `yaml:"gravity"`
	WalkAcc          float64 `yaml:"walk_acc"`
	RunAcc           float64 `yaml:"run_acc"`
	Friction         float64 `yaml:"friction"` // fraction of horizontal velocity removed per idle step
	MaxWalk          float64 `yaml:"max_walk"`
	MaxRun           float64 `yaml:"max_run"`
	JumpVel          float64 `yaml:"jump_vel"`
	JumpSpeedBonus   float64 `yaml:"jump_speed_bonus"` // added to JumpVel at full run speed
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	GroundHeight     float64 `yaml:"ground_height"`

	// Gravity was tuned per frame at 60 fps. It is scaled by dt *
	// ReferenceFrameRate * GravityScale so it no longer depends on the
	// actual frame rate.
	ReferenceFrameRate float64 `yaml:"reference_frame_rate"`
	GravityScale       float64 `yaml:"gravity_scale"`
}

// DefaultTuning returns the slowed-down Mario 64 tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:            0.19,
		WalkAcc:            0.07,
		RunAcc:             0.11,
		Friction:           0.08,
		MaxWalk:            2.7,
		MaxRun:             4.3,
		JumpVel:            0.14,
		JumpSpeedBonus:     0.025,
		TerminalVelocity:   -4.0,
		GroundHeight:       1,
		ReferenceFrameRate: 60,
		GravityScale:       0.6,
	}
}

// CameraTuning holds the fixed orbit camera rig.
type CameraTuning struct {
	YawRate float64       `yaml:"yaw_rate"` // degrees per second
	Pitch   float64       `yaml:"pitch"`    // degrees, positive looks down
	Offset  gamemath.Vec3 `yaml:"offset"`   // [x, y, z] from the target at yaw 0
	FOV     float64       `yaml:"fov"`
}

func DefaultCameraTuning() CameraTuning {
	return CameraTuning{
		YawRate: 60,
		Pitch:   14,
		Offset:  gamemath.Vec3{0, 2.5, -10},
		FOV:     40,
	}
}
