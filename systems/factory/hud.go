package factory

import (
	"fmt"

	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/fonts"
	"github.com/genjam/platformer/gamestate"
	"github.com/genjam/platformer/hud"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HUDSetup positions the three label groups on the top panel.
type HUDSetup struct {
	ScreenWidth  float64
	ScreenHeight float64
	Margin       float64
	LabelRow     float64 // Y of the caption row
	ValueRow     float64 // Y of the value row
	IconSize     float64
}

// DefaultHUDSetup lays the HUD out for the configured screen.
func DefaultHUDSetup() HUDSetup {
	return HUDSetup{
		ScreenWidth:  float64(cfg.C.Width),
		ScreenHeight: float64(cfg.C.Height),
		Margin:       cfg.HUD.Margin,
		LabelRow:     3,
		ValueRow:     17,
		IconSize:     8,
	}
}

// CreateHUD builds the labels, binds them to store and spawns the HUD entity.
// The fonts must already be loaded.
func CreateHUD(ecs *ecs.ECS, setup HUDSetup, store *gamestate.Store) (*donburi.Entry, error) {
	if store == nil {
		return nil, fmt.Errorf("failed to create HUD: %w", ErrNoStore)
	}
	for _, f := range []fonts.FontName{fonts.Small, fonts.Regular, fonts.Large, fonts.Title} {
		if !fonts.Loaded(f) {
			return nil, fmt.Errorf("failed to create HUD: %w: %s", ErrNoFonts, f)
		}
	}

	small := fonts.Small.Text()
	regular := fonts.Regular.Text()
	large := fonts.Large.Text()
	title := fonts.Title.Text()

	white := cfg.HUD.TextColor
	left := setup.Margin
	center := setup.ScreenWidth / 2
	right := setup.ScreenWidth - setup.Margin

	b := hud.NewBinder()
	b.TextColor = white
	b.WarnColor = cfg.HUD.TimeWarnColor
	b.WarnSeconds = cfg.HUD.TimeWarnSeconds

	playerName := hud.NewLabel(small, left, setup.LabelRow, text.AlignStart, "", white)
	score := hud.NewLabel(regular, left, setup.ValueRow, text.AlignStart, "", cfg.HUD.ScoreColor)
	world := hud.NewLabel(small, center, setup.LabelRow, text.AlignCenter, "", white)
	coins := hud.NewLabel(regular, center-20+setup.IconSize, setup.ValueRow, text.AlignStart, "", white)
	lives := hud.NewLabel(regular, center+30+setup.IconSize, setup.ValueRow, text.AlignStart, "", white)
	timeCaption := hud.NewLabel(small, right, setup.LabelRow, text.AlignEnd, "TIME", white)
	timer := hud.NewLabel(large, right, setup.ValueRow, text.AlignEnd, "", white)
	message := hud.NewLabel(title, center, setup.ScreenHeight/2-30, text.AlignCenter, "", white)

	b.PlayerName = playerName
	b.Score = score
	b.World = world
	b.Coins = coins
	b.Lives = lives
	b.Time = timer
	b.Message = message

	iconY := setup.ValueRow + 3
	data := &components.HUDData{
		Binder: b,
		Labels: []*hud.Label{playerName, score, world, coins, lives, timeCaption, timer, message},
		Icons: []components.HUDIcon{
			{X: center - 24, Y: iconY, Size: setup.IconSize, Color: cfg.HUD.CoinIconColor},
			{X: center + 26, Y: iconY, Size: setup.IconSize, Color: cfg.HUD.LifeIconColor},
		},
	}
	if !store.Countdown() {
		timeCaption.SetText("")
		b.Time = nil
	}
	data.Unbind = b.Bind(store)

	entry := archetypes.HUD.Spawn(ecs)
	components.HUD.Set(entry, data)
	return entry, nil
}
