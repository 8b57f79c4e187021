package motion

import "github.com/automoto/catsan64/shared/gamemath"

// Phase is the jump state machine position of the avatar.
type Phase int

const (
	GroundedIdle Phase = iota
	GroundedJumpHeld
	Airborne
)

func (p Phase) String() string {
	switch p {
	case GroundedIdle:
		return "grounded"
	case GroundedJumpHeld:
		return "jump-held"
	case Airborne:
		return "airborne"
	}
	return "unknown"
}

// Sample is the input consumed by one movement step.
type Sample struct {
	Forward, Back, Left, Right bool
	Run                        bool
	Jump                       bool
}

// Axes returns the raw digital axes; opposing keys cancel.
func (s Sample) Axes() (dx, dz float64) {
	return axis(s.Right) - axis(s.Left), axis(s.Forward) - axis(s.Back)
}

func axis(held bool) float64 {
	if held {
		return 1
	}
	return 0
}

// KinematicState is the avatar state owned by the movement step.
type KinematicState struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Facing   float64 // yaw in degrees
	OnGround bool
	// Frames the jump trigger has been held while grounded.
	JumpHoldTimer int
}

// NewKinematicState returns the state of a freshly spawned avatar.
func NewKinematicState(spawn gamemath.Vec3) KinematicState {
	return KinematicState{
		Position: spawn,
		OnGround: true,
	}
}

func (s *KinematicState) Phase() Phase {
	switch {
	case !s.OnGround:
		return Airborne
	case s.JumpHoldTimer > 0:
		return GroundedJumpHeld
	default:
		return GroundedIdle
	}
}

// HorizontalSpeed is the XZ speed.
func (s *KinematicState) HorizontalSpeed() float64 {
	return gamemath.HorizontalLen(s.Velocity)
}
