package systems

import (
	"math"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/shared/gamemath"
	"github.com/genjam/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParallax pushes the group's speed onto its layers and scrolls them.
func UpdateParallax(ecs *ecs.ECS) {
	h := 0.0
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		h = components.Player.Get(playerEntry).Horizontal
	}

	components.ParallaxGroup.Each(ecs.World, func(e *donburi.Entry) {
		ApplyParallaxGroup(ecs.World, components.ParallaxGroup.Get(e), h)
	})

	dt := cfg.DeltaTime()
	components.Scroll.Each(ecs.World, func(e *donburi.Entry) {
		StepScroll(components.Scroll.Get(e), h, dt)
	})
}

// ApplyParallaxGroup configures every layer of group for this step. With
// FollowPlayer set the multiplier follows the magnitude of input h.
func ApplyParallaxGroup(w donburi.World, group *components.ParallaxGroupData, h float64) {
	if group.FollowPlayer {
		group.SetSpeedMultiplier(math.Abs(h))
	}

	speed := group.LayerSpeed()
	for _, layer := range group.Layers {
		e := w.Entry(layer.Entity)
		if e == nil || !e.Valid() || !e.HasComponent(components.Scroll) {
			continue
		}
		scroll := components.Scroll.Get(e)
		scroll.Speed = speed
		scroll.SetParallaxFactor(layer.Factor)
		scroll.AutoScroll = group.Scrolling()
	}
}

// StepScroll moves one repeating copy by its share of the layer speed.
func StepScroll(s *components.ScrollData, h, dt float64) {
	delta := gamemath.ScrollDelta(s.Speed, s.ParallaxFactor, dt, h, s.AutoScroll, s.UsePlayerInput)
	s.X = gamemath.WrapScroll(s.X, s.StartX, s.Width, delta)
}

// ApplyScrollConfig copies the live cfg.Scroll values into every parallax
// group and its layers, so a reloaded tuning file takes effect without
// rebuilding the level.
func ApplyScrollConfig(w donburi.World) {
	components.ParallaxGroup.Each(w, func(e *donburi.Entry) {
		group := components.ParallaxGroup.Get(e)
		group.SetGlobalSpeed(cfg.Scroll.BaseSpeed)
		group.FollowPlayer = cfg.Scroll.FollowPlayer
		if !group.FollowPlayer {
			group.SetSpeedMultiplier(cfg.Scroll.SpeedMultiplier)
		}
		group.PauseScrolling(!cfg.Scroll.AutoScroll)

		for _, layer := range group.Layers {
			le := w.Entry(layer.Entity)
			if le == nil || !le.Valid() || !le.HasComponent(components.Scroll) {
				continue
			}
			components.Scroll.Get(le).UsePlayerInput = cfg.Scroll.UsePlayerInput
		}
	})
}
