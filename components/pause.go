package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. The menu itself lives in the ui package.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
