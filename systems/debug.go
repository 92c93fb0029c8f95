package systems

import (
	"fmt"
	"image/color"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips collider drawing on the debug action.
func UpdateDebugToggle(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if input.State(cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}
}

// DrawDebug outlines every collision object and the player's probe circles.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	if space := getSpace(ecs); space != nil {
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255}
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvEnemy):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvCollectible):
				c = color.RGBA{255, 214, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X+v.offsetX), float32(obj.Y+v.offsetY), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	cx, cy := obj.Center()

	groundColor := cfg.Red
	if player.IsGrounded {
		groundColor = cfg.Green
	}
	vector.StrokeCircle(screen,
		float32(cx+v.offsetX), float32(obj.Y+obj.H+cfg.Player.GroundCheckOffset+v.offsetY),
		float32(cfg.Player.GroundCheckRadius), 1, groundColor, false)

	vector.StrokeCircle(screen,
		float32(cx+player.FacingX*cfg.Combat.AttackRange*0.5+v.offsetX), float32(cy+v.offsetY),
		float32(cfg.Combat.AttackRange), 1, cfg.Yellow, false)

	state := components.State.Get(playerEntry)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  state %s  grounded %v", ebiten.ActualTPS(), state.CurrentState, player.IsGrounded), 4, int(cfg.HUD.PanelHeight)+4)
}
