package factory

import (
	"fmt"

	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/gamestate"
	"github.com/genjam/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerSetup places the player. Motion tuning is read from cfg.Player and
// cfg.Combat every step.
type PlayerSetup struct {
	X, Y          float64
	Width, Height float64
	FacingX       float64
}

// DefaultPlayerSetup puts the player at (x, y) facing right.
func DefaultPlayerSetup(x, y float64) PlayerSetup {
	return PlayerSetup{
		X:       x,
		Y:       y,
		Width:   float64(cfg.Player.CollisionWidth),
		Height:  float64(cfg.Player.CollisionHeight),
		FacingX: cfg.DirectionRight,
	}
}

// PlayerDeps are the collaborators the player systems read every step.
type PlayerDeps struct {
	Space *resolv.Space
	Store *gamestate.Store
	Input *components.InputData
}

func (d PlayerDeps) validate() error {
	switch {
	case d.Space == nil:
		return ErrNoSpace
	case d.Store == nil:
		return ErrNoStore
	case d.Input == nil:
		return ErrNoInput
	}
	return nil
}

// CreatePlayer spawns the player. Every dependency must be present.
func CreatePlayer(ecs *ecs.ECS, setup PlayerSetup, deps PlayerDeps) (*donburi.Entry, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	if setup.FacingX == 0 {
		setup.FacingX = cfg.DirectionRight
	}

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(setup.X, setup.Y, setup.Width, setup.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, setup.Width, setup.Height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	deps.Space.Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		FacingX: setup.FacingX,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.MeleeAttack.SetValue(player, components.MeleeAttackData{})
	components.Sprite.SetValue(player, components.SpriteData{
		ScaleX: setup.FacingX,
		ScaleY: 1,
	})
	components.Animation.SetValue(player, components.NewAnimationData("player", cfg.Player.FrameWidth, cfg.Player.FrameHeight))

	return player, nil
}
