package systems

import (
	"github.com/automoto/catsan64/components"
	"github.com/automoto/catsan64/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates mirrors the movement phase into the State component and counts
// frames spent in it. Runs after UpdateMovement.
func UpdateStates(e *ecs.ECS) {
	tags.Avatar.Each(e.World, func(entry *donburi.Entry) {
		mv := components.Movement.Get(entry)
		state := components.State.Get(entry)

		phase := mv.State.Phase()
		if phase == state.CurrentState {
			state.StateTimer++
			return
		}

		log.Debug().
			Stringer("from", state.CurrentState).
			Stringer("to", phase).
			Int("frames", state.StateTimer).
			Msg("movement phase")

		state.PreviousState = state.CurrentState
		state.CurrentState = phase
		state.StateTimer = 0
	})
}
