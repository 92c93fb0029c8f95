package systems

import (
	"log"
	"math"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/shared/gamemath"
	"github.com/genjam/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerPhysics runs the fixed-rate part of the controller: ground
// probe, horizontal speed, gravity and collision resolution.
func UpdatePlayerPhysics(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}
	dt := cfg.DeltaTime()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		StepPlayerPhysics(e, space, dt)
	})
}

// StepPlayerPhysics advances the player's body by dt seconds.
func StepPlayerPhysics(e *donburi.Entry, space *resolv.Space, dt float64) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	melee := components.MeleeAttack.Get(e)
	obj := components.Object.Get(e)

	wasGrounded := player.IsGrounded
	player.IsGrounded = checkGround(space, obj)
	if player.IsGrounded != wasGrounded && cfg.Debug.ShowColliders {
		log.Printf("player grounded=%v at (%.1f, %.1f)", player.IsGrounded, obj.X, obj.Y)
	}

	switch {
	case melee.IsAttacking:
		physics.VelX *= cfg.Combat.AttackDamping
	case player.IsGrounded || cfg.Player.AirControl:
		physics.VelX = player.Horizontal * cfg.Player.MoveSpeed
	}

	physics.VelY = math.Min(physics.VelY+cfg.Player.Gravity*dt, cfg.Player.MaxFallSpeed)

	resolveHorizontalCollision(physics, obj.Object, physics.VelX*dt)
	resolveVerticalCollision(physics, obj.Object, physics.VelY*dt)
}

// checkGround reports whether the probe circle under the player's feet
// touches the ground layer.
func checkGround(space *resolv.Space, obj *components.ObjectData) bool {
	cx, _ := obj.Center()
	probe := gamemath.Circle{
		X: cx,
		Y: obj.Y + obj.H + cfg.Player.GroundCheckOffset,
		R: cfg.Player.GroundCheckRadius,
	}
	return len(QueryCircle(space, probe, tags.ResolvGround)) > 0
}
