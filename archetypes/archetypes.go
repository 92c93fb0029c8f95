package archetypes

import (
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Object,
		components.Fill,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Sprite,
		components.Physics,
		components.State,
		components.MeleeAttack,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animation,
		components.Sprite,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Object,
		components.Sprite,
		components.Fill,
		components.Tween,
	)
	Background = newArchetype(
		tags.Background,
		components.Scroll,
		components.Sprite,
	)
	ParallaxGroup = newArchetype(
		components.ParallaxGroup,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Input = newArchetype(
		components.Input,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
