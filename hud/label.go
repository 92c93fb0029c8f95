package hud

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Label is a TextElement drawn with ebiten's text renderer.
type Label struct {
	X, Y  float64
	Align text.Align
	Face  text.Face

	text  string
	color color.Color
}

// NewLabel creates a label at (x, y). Align selects which edge x refers to.
func NewLabel(face text.Face, x, y float64, align text.Align, initial string, c color.Color) *Label {
	return &Label{
		X:     x,
		Y:     y,
		Align: align,
		Face:  face,
		text:  initial,
		color: c,
	}
}

func (l *Label) SetText(s string) {
	l.text = s
}

func (l *Label) SetColor(c color.Color) {
	l.color = c
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) Color() color.Color {
	return l.color
}

// Draw renders the label. Empty labels and labels without a face are skipped.
func (l *Label) Draw(screen *ebiten.Image) {
	if l.text == "" || l.Face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y)
	op.PrimaryAlign = l.Align
	if l.color != nil {
		op.ColorScale.ScaleWithColor(l.color)
	}
	text.Draw(screen, l.text, l.Face, op)
}
