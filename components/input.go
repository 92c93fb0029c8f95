package components

import (
	cfg "github.com/genjam/platformer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

// State returns the temporal state of an action.
func (d *InputData) State(action cfg.ActionID) ActionState {
	cur, prev := d.Current[action], d.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Axis returns the raw horizontal axis: -1, 0 or 1.
func (d *InputData) Axis() float64 {
	h := 0.0
	if d.Current[cfg.ActionMoveLeft] {
		h--
	}
	if d.Current[cfg.ActionMoveRight] {
		h++
	}
	return h
}

var Input = donburi.NewComponentType[InputData]()
