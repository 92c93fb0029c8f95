package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/systems"
	"github.com/genjam/platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       components.GameOverData
	menu         *ui.MenuUI
	tuning       *cfg.TuningWatcher
	once         sync.Once
}

// NewGameOverScene creates a new game over scene showing result.
func NewGameOverScene(sc SceneChanger, result components.GameOverData, tuning *cfg.TuningWatcher) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result, tuning: tuning}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.menu.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.menu = ui.NewMenuUI("GAME OVER", ui.NewMenu(cfg.GameOver.MenuOptions,
		func() { gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, gs.tuning)) },
		quit,
	), ui.MenuStyle{
		Background:    cfg.GameOver.BackgroundColor,
		Panel:         color.RGBA{R: 40, G: 0, B: 0, A: 230},
		Title:         cfg.GameOver.TitleColor,
		Text:          cfg.GameOver.TextColorNormal,
		TextSelected:  cfg.GameOver.TextColorSelected,
		ButtonIdle:    color.RGBA{R: 60, G: 20, B: 20, A: 255},
		ButtonHover:   color.RGBA{R: 90, G: 30, B: 30, A: 255},
		ButtonPressed: color.RGBA{R: 120, G: 40, B: 40, A: 255},
	})
	gs.menu.SetSubtitle(resultLine(gs.result))

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(func(e *ecs.ECS) {
		driveMenu(e, gs.menu)
	})
	gs.ecs.AddSystem(systems.UpdateAudio)
}

func resultLine(r components.GameOverData) string {
	if r.NewBest {
		return fmt.Sprintf("SCORE %06d  NEW BEST!", r.FinalScore)
	}
	return fmt.Sprintf("SCORE %06d  %s", r.FinalScore, formatBest(r.BestScore))
}

func formatBest(best int) string {
	return fmt.Sprintf("BEST %06d", best)
}
