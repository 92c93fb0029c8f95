package systems

import (
	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/gamestate"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause action.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !GetOrCreatePause(ecs).IsPaused)
	}
}

// SetPaused changes the pause state and freezes or releases the parallax
// layers with it. A group paused by configuration stays paused.
func SetPaused(ecs *ecs.ECS, paused bool) {
	GetOrCreatePause(ecs).IsPaused = paused
	components.ParallaxGroup.Each(ecs.World, func(e *donburi.Entry) {
		components.ParallaxGroup.Get(e).Freeze(paused)
	})
}

// IsPaused reports the current pause state.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// WithTimeScale wraps a gameplay system so it also stops once store has
// halted simulation time, as it does on game over.
func WithTimeScale(store *gamestate.Store, system ecs.System) ecs.System {
	return WithGameplayChecks(func(e *ecs.ECS) {
		if store.TimeScale() == 0 {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	ent, ok := components.Pause.First(ecs.World)
	if !ok {
		ent = archetypes.Pause.Spawn(ecs)
	}
	return components.Pause.Get(ent)
}
