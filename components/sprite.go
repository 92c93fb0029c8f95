package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image  *ebiten.Image
	ScaleX float64 // negative mirrors the sprite
	ScaleY float64
	// Offset is added to the draw position without moving the collider.
	OffsetX float64
	OffsetY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
