package factory

import (
	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the resolv grid size in pixels.
const spaceCellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// spaceOf returns the collision space of the world, or ErrNoSpace.
func spaceOf(ecs *ecs.ECS) (*resolv.Space, error) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, ErrNoSpace
	}
	return components.Space.Get(entry), nil
}
