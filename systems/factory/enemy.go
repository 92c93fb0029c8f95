package factory

import (
	"fmt"

	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/shared/leveldata"
	"github.com/genjam/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemySetup places a stationary enemy that can be damaged.
type EnemySetup struct {
	X, Y          float64
	Width, Height float64
	Name          string
	MaxHealth     int
}

// EnemySetupFromLevel fills unset level values from cfg.Enemy.
func EnemySetupFromLevel(spawn leveldata.EnemySpawn) EnemySetup {
	setup := EnemySetup{
		X:         spawn.X,
		Y:         spawn.Y,
		Width:     cfg.Enemy.Width,
		Height:    cfg.Enemy.Height,
		Name:      spawn.Name,
		MaxHealth: spawn.MaxHealth,
	}
	if setup.MaxHealth <= 0 {
		setup.MaxHealth = cfg.Enemy.MaxHealth
	}
	return setup
}

// CreateEnemy spawns an enemy on the enemy layer at full health.
func CreateEnemy(ecs *ecs.ECS, setup EnemySetup) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, fmt.Errorf("failed to create enemy %q: %w", setup.Name, err)
	}
	if setup.MaxHealth <= 0 {
		return nil, fmt.Errorf("failed to create enemy %q: max health %d", setup.Name, setup.MaxHealth)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(setup.X, setup.Y, setup.Width, setup.Height, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, setup.Width, setup.Height))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Enemy.SetValue(enemy, components.EnemyData{Name: setup.Name})
	components.Health.SetValue(enemy, components.HealthData{
		Current: setup.MaxHealth,
		Max:     setup.MaxHealth,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		ScaleX: cfg.DirectionLeft,
		ScaleY: 1,
	})
	components.Animation.SetValue(enemy, components.NewAnimationData("enemy", int(setup.Width), int(setup.Height)))

	return enemy, nil
}
