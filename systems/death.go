package systems

import (
	"log"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/gamestate"
	"github.com/genjam/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes every entity marked with Death from both the
// collision space and the world, in the frame it was marked.
func UpdateDeaths(ecs *ecs.ECS) {
	RemoveDead(ecs.World, getSpace(ecs))
}

// RemoveDead is UpdateDeaths without the ECS wrapper.
func RemoveDead(w donburi.World, space *resolv.Space) {
	var dead []*donburi.Entry
	for e := range components.Death.Iter(w) {
		dead = append(dead, e)
	}

	for _, e := range dead {
		if space != nil && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil {
				space.Remove(obj.Object)
			}
		}
		w.Remove(e.Entity())
	}
}

// NewPitFallSystem returns a system that costs the player a life when they
// drop below the bottom of the level, then puts them back at the spawn point.
func NewPitFallSystem(store *gamestate.Store) func(ecs *ecs.ECS) {
	return func(ecs *ecs.ECS) {
		levelEntry, ok := components.Level.First(ecs.World)
		if !ok {
			return
		}
		level := components.Level.Get(levelEntry)
		if level.CurrentLevel == nil {
			return
		}

		GetOrCreateAudio(ecs.World)
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			obj := components.Object.Get(e)
			if obj.Y <= float64(level.CurrentLevel.Height) {
				return
			}
			log.Printf("player fell out of %s", level.CurrentLevel.Name)
			store.LoseLife()
			PlaySFX(ecs.World, cfg.SoundLoseLife)
			RespawnPlayer(e, level.SpawnX, level.SpawnY)
		})
	}
}

// RespawnPlayer moves the player to (x, y) and clears its motion and attack.
func RespawnPlayer(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = y
	obj.Update()

	physics := components.Physics.Get(e)
	physics.VelX = 0
	physics.VelY = 0

	melee := components.MeleeAttack.Get(e)
	melee.IsAttacking = false
	melee.Timer = 0

	player := components.Player.Get(e)
	player.IsGrounded = false

	components.State.Get(e).Set(cfg.Idle)
}
