package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/genjam/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var stateColors = map[config.StateID]color.RGBA{
	config.Idle:    {R: 60, G: 130, B: 230, A: 255},
	config.Running: {R: 60, G: 160, B: 230, A: 255},
	config.Jump:    {R: 110, G: 110, B: 240, A: 255},
	config.Attack:  {R: 230, G: 190, B: 60, A: 255},
}

var (
	faceColor = color.RGBA{R: 250, G: 220, B: 180, A: 255}
	eyeColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	fistColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func fillRect(dst *ebiten.Image, x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	dst.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image).Fill(c)
}

// generateSheet draws a placeholder character facing right. Each frame nudges
// the face band so the animation is visible without art.
func generateSheet(key string, state config.StateID, frames, frameW, frameH int) *ebiten.Image {
	sheet := ebiten.NewImage(frameW*frames, frameH)

	body, ok := stateColors[state]
	if !ok {
		body = stateColors[config.Idle]
	}
	if key == "enemy" {
		body = config.Enemy.Color
	}

	faceH := max(frameH/6, 2)
	for i := 0; i < frames; i++ {
		x := i * frameW
		fillRect(sheet, x, 0, frameW, frameH, body)

		bob := i % 2
		if state == config.Running {
			bob = i % 4 / 2
		}
		faceY := frameH/5 + bob
		fillRect(sheet, x+2, faceY, frameW-4, faceH, faceColor)
		fillRect(sheet, x+frameW-5, faceY+faceH/3, 2, max(faceH/3, 1), eyeColor)

		if state == config.Attack {
			reach := (i + 1) * frameW / (frames + 1)
			fillRect(sheet, x+frameW-reach, frameH/2, reach, max(frameH/8, 2), fistColor)
		}
	}
	return sheet
}

// generateBand draws rolling hills along the bottom of a w×h image. Using a
// whole number of sine periods keeps the left and right edges identical.
func generateBand(w, h int, c color.Color, hills int) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	if hills < 1 {
		hills = 1
	}
	for x := 0; x < w; x++ {
		phase := 2 * math.Pi * float64(hills) * float64(x) / float64(w)
		top := int(float64(h) * (0.35 - 0.3*math.Sin(phase)))
		fillRect(img, x, top, 1, h-top, c)
	}
	return img
}
