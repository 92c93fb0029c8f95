package components

import (
	"image/color"

	"github.com/genjam/platformer/hud"
	"github.com/yohamta/donburi"
)

// HUDIcon is a small coloured square drawn next to a counter.
type HUDIcon struct {
	X, Y, Size float64
	Color      color.Color
}

// HUDData owns the on-screen labels and their binding to the game state.
type HUDData struct {
	Binder *hud.Binder
	Labels []*hud.Label
	Icons  []HUDIcon
	Unbind func()
}

var HUD = donburi.NewComponentType[HUDData]()
