package components

import (
	"github.com/genjam/platformer/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds in the current state
}

// Set changes the current state and resets the timer when it differs.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
