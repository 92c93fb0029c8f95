package systems

import (
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies plays the idle animation and turns every enemy toward the
// player. Enemies do not move.
func UpdateEnemies(ecs *ecs.ECS) {
	playerX, hasPlayer := 0.0, false
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		playerX, _ = components.Object.Get(playerEntry).Center()
		hasPlayer = true
	}
	dt := cfg.DeltaTime()

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}

		if !hasPlayer {
			return
		}
		x, _ := components.Object.Get(e).Center()
		sprite := components.Sprite.Get(e)
		if (playerX < x && sprite.ScaleX > 0) || (playerX > x && sprite.ScaleX < 0) {
			sprite.ScaleX = -sprite.ScaleX
		}
	})
}
