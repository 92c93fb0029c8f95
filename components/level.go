package components

import (
	"github.com/genjam/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	SpawnX       float64
	SpawnY       float64
}

var Level = donburi.NewComponentType[LevelData]()
