package components

import (
	cfg "github.com/genjam/platformer/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects raised during one update.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
