package systems

import (
	"math"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/shared/gamemath"
	"github.com/genjam/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the per-frame part of the controller: input sampling,
// jump and attack triggers, facing and the visual state.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	space := getSpace(ecs)
	dt := cfg.DeltaTime()

	GetOrCreateAudio(ecs.World)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		StepPlayer(e, input, space, dt)
	})
}

// StepPlayer advances one player entity by dt seconds.
func StepPlayer(e *donburi.Entry, input *components.InputData, space *resolv.Space, dt float64) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	melee := components.MeleeAttack.Get(e)

	h := gamemath.AxisSign(input.Axis())
	player.Horizontal = h

	if input.State(cfg.ActionJump).JustPressed && player.IsGrounded && !melee.IsAttacking {
		physics.VelY = -cfg.Player.JumpSpeed
		PlaySFX(e.World, cfg.SoundJump)
	}

	if input.State(cfg.ActionAttack).JustPressed && !melee.IsAttacking {
		startAttack(e, space)
	}

	if melee.IsAttacking {
		melee.Timer -= dt
		if melee.Timer <= 0 {
			melee.Timer = 0
			melee.IsAttacking = false
		}
	}

	if gamemath.ShouldFlip(h, player.FacingX) {
		player.FacingX = -player.FacingX
		sprite := components.Sprite.Get(e)
		sprite.ScaleX = -sprite.ScaleX
	}

	updatePlayerState(e, dt)
}

// startAttack opens the attack window and damages every enemy inside the
// reach circle in front of the player. The enemies are queried once here and
// never again while the window is open.
func startAttack(e *donburi.Entry, space *resolv.Space) {
	player := components.Player.Get(e)
	melee := components.MeleeAttack.Get(e)
	obj := components.Object.Get(e)

	melee.IsAttacking = true
	melee.Timer = cfg.Combat.AttackDuration
	melee.Activations++
	melee.LastHits = 0

	components.Animation.Get(e).SetAnimation(cfg.Attack)
	PlaySFX(e.World, cfg.SoundAttack)

	cx, cy := obj.Center()
	reach := gamemath.Circle{
		X: cx + player.FacingX*cfg.Combat.AttackRange*0.5,
		Y: cy,
		R: cfg.Combat.AttackRange,
	}

	for _, o := range QueryCircle(space, reach, tags.ResolvEnemy) {
		target, ok := entryOf(o)
		if !ok || !target.HasComponent(components.Health) {
			continue
		}
		queueDamage(target, cfg.Combat.AttackDamage, "player")
		melee.LastHits++
	}
}

// queueDamage adds a DamageEvent to target, stacking with one already queued
// this frame.
func queueDamage(target *donburi.Entry, amount int, source string) {
	if target.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(target).Amount += amount
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Amount: amount,
		Source: source,
	})
}

// updatePlayerState picks the single visual state, in priority order
// Attack, Jump, Running, Idle, and advances its animation.
func updatePlayerState(e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	melee := components.MeleeAttack.Get(e)
	state := components.State.Get(e)
	anim := components.Animation.Get(e)

	next := cfg.Idle
	switch {
	case melee.IsAttacking:
		next = cfg.Attack
	case !player.IsGrounded:
		next = cfg.Jump
	case math.Abs(player.Horizontal) > cfg.Player.MovingThreshold:
		next = cfg.Running
	}

	state.Set(next)
	state.StateTimer += dt
	anim.SetAnimation(next)

	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update(dt)
	}
}

// getSpace returns the collision space, or nil when the scene has none.
func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
