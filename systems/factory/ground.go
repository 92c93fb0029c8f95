package factory

import (
	"fmt"
	"image/color"

	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GroundSetup places one solid block the player can stand on.
type GroundSetup struct {
	X, Y, Width, Height float64
	Color               color.RGBA
}

// DefaultGroundSetup is the strip used when a level defines no ground.
func DefaultGroundSetup() GroundSetup {
	return GroundSetup{
		X:      cfg.Ground.X,
		Y:      cfg.Ground.Y,
		Width:  cfg.Ground.Width,
		Height: cfg.Ground.Height,
		Color:  cfg.Ground.Color,
	}
}

// CreateGround adds a block that is both solid and on the ground layer.
func CreateGround(ecs *ecs.ECS, setup GroundSetup) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, fmt.Errorf("failed to create ground: %w", err)
	}
	if setup.Width <= 0 || setup.Height <= 0 {
		return nil, fmt.Errorf("failed to create ground: invalid size %vx%v", setup.Width, setup.Height)
	}

	ground := archetypes.Ground.Spawn(ecs)
	obj := resolv.NewObject(setup.X, setup.Y, setup.Width, setup.Height, tags.ResolvSolid, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, setup.Width, setup.Height))
	obj.Data = ground
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	components.Fill.SetValue(ground, components.FillData{Color: setup.Color})
	space.Add(obj)

	return ground, nil
}
