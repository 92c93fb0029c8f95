package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Name     string
	HitFlash float64 // seconds left on the white hit flash
}

var Enemy = donburi.NewComponentType[EnemyData]()
