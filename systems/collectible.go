package systems

import (
	"log"
	"math"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/gamestate"
	"github.com/genjam/platformer/shared/gamemath"
	"github.com/genjam/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewCollectibleSystem returns the pickup system bound to store. It animates
// every collectible and applies the ones the player is touching.
func NewCollectibleSystem(store *gamestate.Store) func(ecs *ecs.ECS) {
	return func(ecs *ecs.ECS) {
		dt := cfg.DeltaTime()
		GetOrCreateAudio(ecs.World)
		components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
			AnimateCollectible(e, dt)
		})

		playerEntry, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}
		CollectTouching(store, components.Object.Get(playerEntry))
	}
}

// CollectTouching applies every collectible overlapping the player's body.
func CollectTouching(store *gamestate.Store, playerObj *components.ObjectData) int {
	check := playerObj.Check(0, 0, tags.ResolvCollectible)
	if check == nil {
		return 0
	}

	body := playerObj.Rect()
	n := 0
	for _, o := range check.ObjectsByTags(tags.ResolvCollectible) {
		if !gamemath.RectOverlap(body, objectRect(o)) {
			continue
		}
		e, ok := entryOf(o)
		if !ok {
			continue
		}
		if Collect(store, e) {
			n++
		}
	}
	return n
}

// Collect grants the reward of a collectible and marks it for removal.
// It returns false when the collectible was already taken.
func Collect(store *gamestate.Store, e *donburi.Entry) bool {
	c := components.Collectible.Get(e)
	if c.Collected {
		return false
	}
	c.Collected = true

	switch c.Kind {
	case components.CollectibleCoin:
		if err := store.AddCoins(1); err != nil {
			log.Printf("Warning: failed to add coin: %v", err)
		}
		store.AddScore(c.ScoreValue)
		PlaySFX(e.World, cfg.SoundCoin)
	case components.CollectiblePowerUp:
		store.AddScore(c.ScoreValue)
		PlaySFX(e.World, cfg.SoundPowerUp)
	case components.CollectibleLife:
		store.AddLife(1)
		store.AddScore(c.ScoreValue)
		PlaySFX(e.World, cfg.SoundLife)
	}
	log.Printf("collected %s worth %d", c.Kind, c.ScoreValue)

	donburi.Add(e, components.Death, &components.DeathData{Reason: "collected"})
	return true
}

// AnimateCollectible spins the sprite around its vertical axis and bobs it
// along the tween sequence. Only the sprite moves; the collider stays put.
func AnimateCollectible(e *donburi.Entry, dt float64) {
	c := components.Collectible.Get(e)
	sprite := components.Sprite.Get(e)

	c.SpinAngle = math.Mod(c.SpinAngle+cfg.Collectible.SpinSpeed*dt, 360)
	sprite.ScaleX = math.Cos(c.SpinAngle * math.Pi / 180)

	if !e.HasComponent(components.Tween) {
		return
	}
	bob := components.Tween.Get(e)
	offset, _, done := bob.Update(float32(dt))
	if done {
		bob.Reset()
	}
	sprite.OffsetY = float64(offset)
}
