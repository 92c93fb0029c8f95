package systems

import (
	"sort"

	"github.com/genjam/platformer/assets"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cullPadding keeps sprites from popping at the screen edges.
const cullPadding = 64.0

// view is the camera transform for one frame.
type view struct {
	offsetX, offsetY       float64
	minX, maxX, minY, maxY float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return view{
		offsetX: width/2 - camera.Position.X,
		offsetY: height/2 - camera.Position.Y,
		minX:    camera.Position.X - width/2 - cullPadding,
		maxX:    camera.Position.X + width/2 + cullPadding,
		minY:    camera.Position.Y - height/2 - cullPadding,
		maxY:    camera.Position.Y + height/2 + cullPadding,
	}, true
}

func (v view) culled(o *components.ObjectData) bool {
	return o.X+o.W < v.minX || o.X > v.maxX || o.Y+o.H < v.minY || o.Y > v.maxY
}

// DrawBackground fills the sky and draws the scrolling layers back to front.
// Layers live in screen space and ignore the camera.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Scroll.SkyColor)

	var layers []*donburi.Entry
	tags.Background.Each(ecs.World, func(e *donburi.Entry) {
		layers = append(layers, e)
	})
	sort.SliceStable(layers, func(i, j int) bool {
		return components.Scroll.Get(layers[i]).ZOffset < components.Scroll.Get(layers[j]).ZOffset
	})

	for _, e := range layers {
		scroll := components.Scroll.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			continue
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(sprite.ScaleX, sprite.ScaleY)
		drawOp.GeoM.Translate(scroll.X, scroll.Y)
		screen.DrawImage(sprite.Image, drawOp)
	}
}

// DrawGround draws the level's solid areas.
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o) {
			return
		}
		fill := components.Fill.Get(e)
		vector.FillRect(screen, float32(o.X+v.offsetX), float32(o.Y+v.offsetY), float32(o.W), float32(o.H), fill.Color, false)
	})
}

// DrawAnimated renders the player and enemies from their current animation
// frame, anchored bottom-centre on the collider.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o) {
			return
		}

		anim := components.Animation.Get(e)
		frame := 0
		if anim.CurrentAnimation != nil {
			frame = anim.CurrentAnimation.Frame()
		}
		sheet := anim.CurrentSheet
		if sheet == cfg.StateNone {
			sheet = cfg.Idle
		}
		img := assets.Sprites().Frame(anim.Key, sheet, frame, anim.FrameWidth, anim.FrameHeight)

		sprite := components.Sprite.Get(e)
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))
		drawOp.GeoM.Scale(sprite.ScaleX, sprite.ScaleY)
		drawOp.GeoM.Translate(o.X+o.W/2+sprite.OffsetX, o.Y+o.H+sprite.OffsetY)
		drawOp.GeoM.Translate(v.offsetX, v.offsetY)

		if e.HasComponent(components.Enemy) && components.Enemy.Get(e).HitFlash > 0 {
			drawOp.ColorScale.Scale(3, 3, 3, 1)
		}

		screen.DrawImage(img, drawOp)
	})
}

// DrawHealthBars draws a bar over every damaged enemy.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Current >= hp.Max || hp.Max <= 0 {
			return
		}
		o := components.Object.Get(e)
		if v.culled(o) {
			return
		}

		barWidth := 24.0
		barHeight := 3.0
		drawX := o.X + (o.W-barWidth)/2 + v.offsetX
		drawY := o.Y - barHeight - 4 + v.offsetY
		pct := float64(max(hp.Current, 0)) / float64(hp.Max)

		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barWidth*pct), float32(barHeight), cfg.Green, false)
	})
}

// DrawCollectibles draws pickups centred on their collider, with the spin
// applied as a horizontal scale and the bob as a vertical offset.
func DrawCollectibles(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		if components.Collectible.Get(e).Collected {
			return
		}
		o := components.Object.Get(e)
		if v.culled(o) {
			return
		}

		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			sprite.Image = assets.Sprites().Solid(int(o.W), int(o.H), components.Fill.Get(e).Color)
		}
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		drawOp.GeoM.Scale(sprite.ScaleX, sprite.ScaleY)
		cx, cy := o.Center()
		drawOp.GeoM.Translate(cx+sprite.OffsetX+v.offsetX, cy+sprite.OffsetY+v.offsetY)
		screen.DrawImage(sprite.Image, drawOp)
	})
}
