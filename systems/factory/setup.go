package factory

import (
	"fmt"
	"log"

	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	"github.com/genjam/platformer/gamestate"
	"github.com/genjam/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Setup holds the entries CreateCompleteSetup spawned.
type Setup struct {
	Space        *donburi.Entry
	Level        *donburi.Entry
	Input        *donburi.Entry
	Player       *donburi.Entry
	Enemies      []*donburi.Entry
	Collectibles []*donburi.Entry
	Parallax     *donburi.Entry
	Camera       *donburi.Entry
	HUD          *donburi.Entry
}

// SetupOptions overrides parts of the default world.
type SetupOptions struct {
	Parallax ParallaxSetup
	HUD      HUDSetup
	SkipHUD  bool
}

// DefaultSetupOptions uses the configured parallax and HUD layout.
func DefaultSetupOptions() SetupOptions {
	return SetupOptions{
		Parallax: DefaultParallaxSetup(),
		HUD:      DefaultHUDSetup(),
	}
}

// CreateCompleteSetup builds a playable world for level: space, ground,
// input, player, enemies, collectibles, background, camera and HUD.
func CreateCompleteSetup(ecs *ecs.ECS, level *leveldata.Level, store *gamestate.Store, opts SetupOptions) (*Setup, error) {
	if level == nil {
		return nil, ErrNoLevel
	}
	if store == nil {
		return nil, ErrNoStore
	}

	s := &Setup{}
	s.Space = CreateSpace(ecs, level.Width, level.Height, spaceCellSize, spaceCellSize)
	space := components.Space.Get(s.Space)

	defaultSpawn := DefaultGroundSetup()
	levelEntry, err := CreateLevel(ecs, level, defaultSpawn.X+32, defaultSpawn.Y-64)
	if err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}
	s.Level = levelEntry
	levelData := components.Level.Get(levelEntry)

	if len(level.Ground) == 0 {
		log.Printf("Level %s has no ground, using the default strip", level.Name)
		if _, err := CreateGround(ecs, defaultSpawn); err != nil {
			return nil, err
		}
	}
	for _, r := range level.Ground {
		setup := DefaultGroundSetup()
		setup.X, setup.Y, setup.Width, setup.Height = r.X, r.Y, r.W, r.H
		if _, err := CreateGround(ecs, setup); err != nil {
			return nil, err
		}
	}

	s.Input = archetypes.Input.Spawn(ecs)
	input := components.Input.Get(s.Input)

	s.Player, err = CreatePlayer(ecs, DefaultPlayerSetup(levelData.SpawnX, levelData.SpawnY), PlayerDeps{
		Space: space,
		Store: store,
		Input: input,
	})
	if err != nil {
		return nil, err
	}

	for _, spawn := range level.Enemies {
		e, err := CreateEnemy(ecs, EnemySetupFromLevel(spawn))
		if err != nil {
			return nil, err
		}
		s.Enemies = append(s.Enemies, e)
	}

	for _, spawn := range level.Collectibles {
		setup, err := CollectibleSetupFromLevel(spawn)
		if err != nil {
			return nil, fmt.Errorf("failed to create collectible: %w", err)
		}
		c, err := CreateCollectible(ecs, setup)
		if err != nil {
			return nil, err
		}
		s.Collectibles = append(s.Collectibles, c)
	}

	s.Parallax, err = CreateParallax(ecs, opts.Parallax)
	if err != nil {
		return nil, err
	}

	s.Camera = CreateCamera(ecs, levelData.SpawnX, levelData.SpawnY)

	if !opts.SkipHUD {
		s.HUD, err = CreateHUD(ecs, opts.HUD, store)
		if err != nil {
			return nil, err
		}
	}

	log.Printf("Level %s ready: %d enemies, %d collectibles", level.Name, len(s.Enemies), len(s.Collectibles))
	return s, nil
}
