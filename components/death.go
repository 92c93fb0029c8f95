package components

import "github.com/yohamta/donburi"

// DeathData marks an entity for removal at the end of the current update.
type DeathData struct {
	Reason string
}

var Death = donburi.NewComponentType[DeathData]()
