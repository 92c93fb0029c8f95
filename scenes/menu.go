package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/systems"
	"github.com/genjam/platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menu         *ui.MenuUI
	tuning       *cfg.TuningWatcher
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, tuning *cfg.TuningWatcher) *MenuScene {
	return &MenuScene{sceneChanger: sc, tuning: tuning}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menu.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.menu = ui.NewMenuUI("PLATFORMER", ui.NewMenu([]string{"Start", "Quit"},
		func() { ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.tuning)) },
		quit,
	), ui.MenuStyle{
		Background:    color.RGBA{R: 10, G: 10, B: 30, A: 255},
		Panel:         color.RGBA{R: 20, G: 20, B: 40, A: 230},
		Title:         cfg.Gold,
		Text:          cfg.DarkBlue,
		TextSelected:  cfg.LightBlue,
		ButtonIdle:    color.RGBA{R: 30, G: 30, B: 60, A: 255},
		ButtonHover:   color.RGBA{R: 50, G: 50, B: 90, A: 255},
		ButtonPressed: color.RGBA{R: 70, G: 70, B: 120, A: 255},
	})
	if best := systems.LoadBestScore(); best > 0 {
		ms.menu.SetSubtitle(formatBest(best))
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(func(e *ecs.ECS) {
		driveMenu(e, ms.menu)
	})
	ms.ecs.AddSystem(systems.UpdateAudio)
}

// driveMenu feeds keyboard and gamepad navigation into m, then lets the
// widgets handle the mouse.
func driveMenu(e *ecs.ECS, m *ui.MenuUI) {
	input := systems.GetInput(e)
	switch {
	case input.State(cfg.ActionMenuUp).JustPressed:
		systems.PlaySFX(e.World, cfg.SoundMenuNavigate)
		m.Move(-1)
	case input.State(cfg.ActionMenuDown).JustPressed:
		systems.PlaySFX(e.World, cfg.SoundMenuNavigate)
		m.Move(1)
	case input.State(cfg.ActionMenuSelect).JustPressed:
		systems.PlaySFX(e.World, cfg.SoundMenuSelect)
		m.Activate()
	}
	m.Update()
}

func quit() {
	systems.SaveCurrentSettings()
	os.Exit(0)
}
