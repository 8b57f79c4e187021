package config

import "github.com/automoto/catsan64/shared/motion"

// Type alias so HUD and logging code can use config.MovementPhase.
type MovementPhase = motion.Phase

// Re-export movement phases.
const (
	StateGroundedIdle     = motion.GroundedIdle
	StateGroundedJumpHeld = motion.GroundedJumpHeld
	StateAirborne         = motion.Airborne
)
