package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData is the motion state sampled each step.
type PlayerData struct {
	Horizontal float64 // -1, 0 or 1
	IsGrounded bool
	FacingX    float64 // config.DirectionLeft or config.DirectionRight
}

var Player = donburi.NewComponentType[PlayerData]()
