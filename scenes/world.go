package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/genjam/platformer/assets"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/gamestate"
	"github.com/genjam/platformer/systems"
	"github.com/genjam/platformer/systems/factory"
	"github.com/genjam/platformer/tags"
	"github.com/genjam/platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	store        *gamestate.Store
	pauseMenu    *ui.MenuUI
	tuning       *cfg.TuningWatcher
	once         sync.Once
}

// NewPlatformerScene creates the level scene. tuning may be nil.
func NewPlatformerScene(sc SceneChanger, tuning *cfg.TuningWatcher) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, tuning: tuning}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if ps.tuning != nil {
		if t := ps.tuning.Poll(); t != nil {
			t.Apply()
			systems.ApplyScrollConfig(ps.ecs.World)
			log.Printf("tuning reloaded")
		}
	}

	ps.ecs.Update()

	if ps.store.IsGameOver() && !ps.messageActive() {
		result := systems.RecordGameOver(ps.ecs, ps.store)
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, *result, ps.tuning))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.DrawLayer(cfg.Default, screen)
	ps.ecs.DrawLayer(cfg.LayerHUD, screen)
	if systems.IsPaused(ps.ecs) {
		ps.pauseMenu.Draw(screen)
	}
}

func (ps *PlatformerScene) messageActive() bool {
	entry, ok := components.HUD.First(ps.ecs.World)
	if !ok {
		return false
	}
	return components.HUD.Get(entry).Binder.MessageActive()
}

func (ps *PlatformerScene) configure() {
	systems.PreloadAllSFX()
	assets.PreloadSprites()

	ps.store = gamestate.New(cfg.GameState)
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdatePause)
	ps.ecs.AddSystem(systems.UpdateDebugToggle)
	ps.ecs.AddSystem(ps.updatePauseMenu)
	ps.ecs.AddSystem(systems.WithGameplayChecks(ps.updateRestart))

	// Gameplay, frozen while paused and after game over
	gameplay := func(s ecs.System) ecs.System { return systems.WithTimeScale(ps.store, s) }
	ps.ecs.AddSystem(gameplay(systems.UpdatePlayer))
	ps.ecs.AddSystem(gameplay(systems.UpdatePlayerPhysics))
	ps.ecs.AddSystem(gameplay(systems.UpdateObjects))
	ps.ecs.AddSystem(gameplay(systems.UpdateEnemies))
	ps.ecs.AddSystem(gameplay(systems.NewCollectibleSystem(ps.store)))
	ps.ecs.AddSystem(gameplay(systems.UpdateCombat))
	ps.ecs.AddSystem(gameplay(systems.UpdateDeaths))
	ps.ecs.AddSystem(gameplay(systems.NewPitFallSystem(ps.store)))
	ps.ecs.AddSystem(gameplay(systems.NewTimerSystem(ps.store)))
	ps.ecs.AddSystem(gameplay(systems.UpdateParallax))
	ps.ecs.AddSystem(gameplay(systems.UpdateCamera))
	ps.ecs.AddSystem(systems.UpdateHUD)
	ps.ecs.AddSystem(systems.UpdateAudio)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawGround)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawCollectibles)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ps.ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	level, err := assets.LoadLevel(cfg.C.Level)
	if err != nil {
		log.Fatalf("Failed to load level %s: %v", cfg.C.Level, err)
	}
	if _, err := factory.CreateCompleteSetup(ps.ecs, level, ps.store, factory.DefaultSetupOptions()); err != nil {
		log.Fatalf("Failed to set up level %s: %v", level.Name, err)
	}
	systems.SnapCamera(ps.ecs)

	ps.pauseMenu = ui.NewMenuUI("PAUSED", ui.NewMenu(cfg.Pause.MenuOptions,
		func() { systems.SetPaused(ps.ecs, false) },
		func() { ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.tuning)) },
		func() { ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.tuning)) },
	), ui.MenuStyle{
		Background:    cfg.Pause.OverlayColor,
		Panel:         color.RGBA{R: 20, G: 20, B: 40, A: 230},
		Title:         cfg.White,
		Text:          cfg.Pause.TextColorNormal,
		TextSelected:  cfg.Pause.TextColorSelected,
		ButtonIdle:    color.RGBA{R: 30, G: 30, B: 60, A: 255},
		ButtonHover:   color.RGBA{R: 50, G: 50, B: 90, A: 255},
		ButtonPressed: color.RGBA{R: 70, G: 70, B: 120, A: 255},
	})
}

// updatePauseMenu drives the pause overlay while the game is paused.
func (ps *PlatformerScene) updatePauseMenu(e *ecs.ECS) {
	if !systems.IsPaused(e) {
		return
	}
	driveMenu(e, ps.pauseMenu)
}

// updateRestart resets the attempt: score, coins and timer start over and
// the player returns to the spawn point.
func (ps *PlatformerScene) updateRestart(e *ecs.ECS) {
	if !systems.GetInput(e).State(cfg.ActionRestart).JustPressed {
		return
	}
	ps.store.Restart()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	tags.Player.Each(e.World, func(p *donburi.Entry) {
		systems.RespawnPlayer(p, level.SpawnX, level.SpawnY)
	})
	systems.SnapCamera(e)
	log.Printf("level restarted")
}
