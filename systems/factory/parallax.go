package factory

import (
	"fmt"
	"image/color"

	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/assets"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BandFunc draws the image for one background band.
type BandFunc func(w, h int, c color.Color) *ebiten.Image

// ParallaxSetup describes a group of repeating background bands.
type ParallaxSetup struct {
	Layers          []cfg.ParallaxLayerConfig
	Copies          int     // copies of each band side by side
	Scale           float64 // sprite scale; band width is sprite width * Scale
	BaseSpeed       float64
	SpeedMultiplier float64
	AutoScroll      bool
	UsePlayerInput  bool
	FollowPlayer    bool
	Band            BandFunc // nil leaves the layers without images
}

// DefaultParallaxSetup builds the setup from cfg.Scroll with generated hills.
func DefaultParallaxSetup() ParallaxSetup {
	return ParallaxSetup{
		Layers:          cfg.Scroll.Layers,
		Copies:          cfg.Scroll.Copies,
		Scale:           cfg.Scroll.Scale,
		BaseSpeed:       cfg.Scroll.BaseSpeed,
		SpeedMultiplier: cfg.Scroll.SpeedMultiplier,
		AutoScroll:      cfg.Scroll.AutoScroll,
		UsePlayerInput:  cfg.Scroll.UsePlayerInput,
		FollowPlayer:    cfg.Scroll.FollowPlayer,
		Band: func(w, h int, c color.Color) *ebiten.Image {
			return assets.Sprites().Band(w, h, c, 2)
		},
	}
}

// CreateParallax spawns Copies scrolling entities per layer, placed at
// width*i, and a group entity that drives their speed.
func CreateParallax(ecs *ecs.ECS, setup ParallaxSetup) (*donburi.Entry, error) {
	if setup.Copies <= 0 {
		return nil, fmt.Errorf("failed to create parallax: %d copies", setup.Copies)
	}
	if setup.Scale <= 0 {
		setup.Scale = 1
	}

	group := archetypes.ParallaxGroup.Spawn(ecs)
	data := &components.ParallaxGroupData{
		BaseSpeed:       setup.BaseSpeed,
		SpeedMultiplier: setup.SpeedMultiplier,
		Paused:          !setup.AutoScroll,
		FollowPlayer:    setup.FollowPlayer,
	}

	for z, layer := range setup.Layers {
		if layer.Width <= 0 {
			return nil, fmt.Errorf("failed to create parallax layer %d: width %v", z, layer.Width)
		}
		width := layer.Width * setup.Scale

		var img *ebiten.Image
		if setup.Band != nil {
			img = setup.Band(int(layer.Width), int(layer.Height/setup.Scale), layer.Color)
		}

		for i := 0; i < setup.Copies; i++ {
			e := archetypes.Background.Spawn(ecs)
			scroll := components.ScrollData{
				X:              width * float64(i),
				Y:              layer.Y,
				StartX:         width * float64(i),
				Width:          width,
				Speed:          data.LayerSpeed(),
				AutoScroll:     setup.AutoScroll,
				UsePlayerInput: setup.UsePlayerInput,
				ZOffset:        z,
			}
			scroll.SetParallaxFactor(layer.Factor)
			components.Scroll.SetValue(e, scroll)
			components.Sprite.SetValue(e, components.SpriteData{
				Image:  img,
				ScaleX: setup.Scale,
				ScaleY: setup.Scale,
			})
			data.Layers = append(data.Layers, components.ParallaxLayer{Entity: e.Entity(), Factor: layer.Factor})
		}
	}

	components.ParallaxGroup.Set(group, data)
	return group, nil
}
