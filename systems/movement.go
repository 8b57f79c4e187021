package systems

import (
	"github.com/automoto/catsan64/components"
	"github.com/automoto/catsan64/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement runs one movement step for every avatar and writes the
// resulting pose into its Transform.
func UpdateMovement(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	sample := MovementSample(getOrCreateInput(e))

	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		mv := components.Movement.Get(entry)
		res, err := mv.Controller.Step(&mv.State, sample, clock.Delta)
		if err != nil {
			log.Debug().Err(err).Uint64("frame", clock.Frame).Msg("movement step skipped")
			return
		}
		mv.Last = res
		mv.Running = sample.Run

		if res.Jumped {
			log.Debug().
				Float64("impulse", res.Impulse).
				Float64("speed", mv.State.HorizontalSpeed()).
				Msg("jump")
		}

		transform := components.Transform.Get(entry)
		transform.Position = res.Position
		transform.Yaw = res.Facing
	})
}
