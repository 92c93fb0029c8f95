package systems

import (
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD advances the message fade.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	if hud.Binder != nil {
		hud.Binder.Update(cfg.DeltaTime())
	}
}

// DrawHUD renders the translucent top panel, the coin and life icons and
// every bound label.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)

	width := float32(screen.Bounds().Dx())
	vector.FillRect(screen, 0, 0, width, float32(cfg.HUD.PanelHeight), cfg.HUD.PanelColor, false)

	for _, icon := range hud.Icons {
		vector.FillRect(screen, float32(icon.X), float32(icon.Y), float32(icon.Size), float32(icon.Size), icon.Color, false)
	}

	for _, label := range hud.Labels {
		label.Draw(screen)
	}
}
