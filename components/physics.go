package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData holds a body's velocity in pixels per second.
type PhysicsData struct {
	VelX float64
	VelY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
