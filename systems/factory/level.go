package factory

import (
	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	"github.com/genjam/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores level in the world together with the player spawn.
// Levels without a spawn point use (spawnX, spawnY).
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, spawnX, spawnY float64) (*donburi.Entry, error) {
	if level == nil {
		return nil, ErrNoLevel
	}

	if len(level.PlayerSpawns) > 0 {
		spawnX, spawnY = level.PlayerSpawns[0].X, level.PlayerSpawns[0].Y
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		SpawnX:       spawnX,
		SpawnY:       spawnY,
	})
	return entry, nil
}
