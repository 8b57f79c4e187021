package components

import (
	"github.com/automoto/catsan64/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.MovementPhase
	PreviousState config.MovementPhase
	StateTimer    int // frames spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
