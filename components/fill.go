package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// FillData is the flat colour of an untextured collider.
type FillData struct {
	Color color.RGBA
}

var Fill = donburi.NewComponentType[FillData]()
