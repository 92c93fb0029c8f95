package main

import (
	"flag"
	"image"
	"log"

	"github.com/genjam/platformer/config"
	"github.com/genjam/platformer/fonts"
	"github.com/genjam/platformer/scenes"
	"github.com/genjam/platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const titleFontSize = 28

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(skipMenu bool, tuning *config.TuningWatcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipMenu {
		g.scene = scenes.NewPlatformerScene(g, tuning)
	} else {
		g.scene = scenes.NewMenuScene(g, tuning)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "start straight in the level")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML file overriding movement, combat, scroll and game state values")
	flag.BoolVar(&config.Debug.WatchTuning, "watch", false, "reload the tuning file when it changes")
	flag.BoolVar(&config.Debug.ShowColliders, "debug", false, "draw colliders and probes")
	flag.Parse()

	if err := fonts.LoadDefaults(config.HUD.LabelSize, config.HUD.ValueSize, config.HUD.TimeSize, titleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var watcher *config.TuningWatcher
	if path := config.Debug.TuningPath; path != "" {
		t, err := config.LoadTuning(path)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()

		if config.Debug.WatchTuning {
			watcher, err = config.WatchTuning(path)
			if err != nil {
				log.Printf("Warning: Could not watch %s: %v", path, err)
			} else {
				defer watcher.Close()
			}
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Platformer")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(*skipMenu, watcher)); err != nil {
		log.Fatal(err)
	}
	systems.SaveCurrentSettings()
}
