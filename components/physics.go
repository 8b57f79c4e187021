package components

import (
	"github.com/automoto/catsan64/shared/motion"
	"github.com/yohamta/donburi"
)

// MovementData pairs the avatar's kinematic state with the controller that
// steps it. Only UpdateMovement mutates State.
type MovementData struct {
	State      motion.KinematicState
	Controller *motion.Controller
	Last       motion.Result
	Running    bool // run held on the last accepted step
}

var Movement = donburi.NewComponentType[MovementData]()
