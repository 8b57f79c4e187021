package motion

import "github.com/automoto/catsan64/shared/gamemath"

// Result is what a movement step hands to the pose sink.
type Result struct {
	Position gamemath.Vec3
	Facing   float64
	Phase    Phase
	// Jumped is true on the frame the jump impulse fired.
	Jumped  bool
	Impulse float64
}

// Controller advances a KinematicState one frame at a time.
type Controller struct {
	tuning Tuning
}

func NewController(t Tuning) *Controller {
	return &Controller{tuning: t}
}

func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// MaxSpeed returns the speed cap for the given run modifier.
func (c *Controller) MaxSpeed(running bool) float64 {
	if running {
		return c.tuning.MaxRun
	}
	return c.tuning.MaxWalk
}

// Step runs one frame of movement. A rejected dt leaves s unchanged.
func (c *Controller) Step(s *KinematicState, in Sample, dt float64) (Result, error) {
	if err := CheckDelta(dt); err != nil {
		return Result{Position: s.Position, Facing: s.Facing, Phase: s.Phase()}, err
	}
	t := c.tuning

	// --- Direction ---
	dx, dz := in.Axes()
	dirX, dirZ, hasInput := gamemath.InputDirection(dx, dz)

	// --- Speed regime ---
	maxSpeed := c.MaxSpeed(in.Run)
	accel := t.WalkAcc
	if in.Run {
		accel = t.RunAcc
	}

	// --- Acceleration / friction ---
	if hasInput {
		s.Facing = gamemath.HeadingDegrees(dx, dz)
		s.Velocity[0] += accel * dirX
		s.Velocity[2] += accel * dirZ
	} else {
		s.Velocity = gamemath.ApplyDecay(s.Velocity, t.Friction)
	}

	// --- Clamp horizontal speed ---
	s.Velocity = gamemath.ClampHorizontal(s.Velocity, maxSpeed)

	// --- Jump (rising edge of the hold timer) ---
	res := Result{}
	if s.OnGround {
		if in.Jump {
			if s.JumpHoldTimer == 0 {
				res.Impulse = c.jumpImpulse(s.HorizontalSpeed())
				res.Jumped = true
				s.Velocity[1] = res.Impulse
			}
			s.JumpHoldTimer++
		} else {
			s.JumpHoldTimer = 0
		}
	}

	// --- Gravity ---
	s.Velocity[1] -= t.Gravity * dt * t.ReferenceFrameRate * t.GravityScale
	s.Velocity[1] = gamemath.ClampMin(s.Velocity.Y(), t.TerminalVelocity)

	// --- Integrate ---
	s.Position = s.Position.Add(s.Velocity.Mul(dt))

	// --- Ground plane ---
	if s.Position.Y() <= t.GroundHeight {
		s.Position[1] = t.GroundHeight
		s.Velocity[1] = 0
		s.OnGround = true
	} else {
		s.OnGround = false
		s.JumpHoldTimer = 0
	}

	res.Position = s.Position
	res.Facing = s.Facing
	res.Phase = s.Phase()
	return res, nil
}

// jumpImpulse rewards running jumps: the bonus scales with the fraction of
// MaxRun the avatar is moving at.
func (c *Controller) jumpImpulse(speed float64) float64 {
	bonus := 0.0
	if c.tuning.MaxRun > 0 {
		bonus = c.tuning.JumpSpeedBonus * (speed / c.tuning.MaxRun)
	}
	return c.tuning.JumpVel + bonus
}
