package systems

import (
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/gamestate"
	"github.com/yohamta/donburi/ecs"
)

// NewTimerSystem returns a system that runs the level countdown on store.
func NewTimerSystem(store *gamestate.Store) func(ecs *ecs.ECS) {
	return func(ecs *ecs.ECS) {
		store.Tick(cfg.DeltaTime())
	}
}
