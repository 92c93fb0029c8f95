package components

import "github.com/yohamta/donburi"

// DamageEventData is a pending hit, applied and removed by the combat system.
type DamageEventData struct {
	Amount int
	Source string
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
