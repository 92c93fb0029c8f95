package hud

import (
	"image/color"

	"github.com/genjam/platformer/gamestate"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TextElement is anything that can show a line of text.
type TextElement interface {
	SetText(string)
	SetColor(color.Color)
}

// Binder writes store changes into text elements. Any element may be left
// nil; updates for it are skipped.
type Binder struct {
	PlayerName TextElement
	World      TextElement
	Score      TextElement
	Coins      TextElement
	Lives      TextElement
	Time       TextElement
	Message    TextElement

	TextColor   color.Color
	WarnColor   color.Color
	WarnSeconds int

	messageFade *gween.Tween
}

// NewBinder returns a binder with white text and a red warning below 30 seconds.
func NewBinder() *Binder {
	return &Binder{
		TextColor:   color.White,
		WarnColor:   color.RGBA{R: 255, A: 255},
		WarnSeconds: 30,
	}
}

// Bind fills every element from the current state and subscribes to future
// changes. The returned function unsubscribes.
func (b *Binder) Bind(store *gamestate.Store) (unbind func()) {
	setText(b.PlayerName, store.PlayerName())
	setText(b.World, store.WorldName())
	setText(b.Score, FormatScore(store.Score()))
	setText(b.Coins, FormatCoins(store.Coins()))
	setText(b.Lives, FormatLives(store.Lives()))
	b.updateTime(store.TimeRemaining())

	return store.Subscribe(b.handle)
}

func (b *Binder) handle(e gamestate.Event) {
	switch e.Kind {
	case gamestate.ScoreChanged:
		setText(b.Score, FormatScore(e.Value))
	case gamestate.CoinsChanged:
		setText(b.Coins, FormatCoins(e.Value))
	case gamestate.LivesChanged:
		setText(b.Lives, FormatLives(e.Value))
	case gamestate.TimeChanged:
		b.updateTime(e.Time)
	case gamestate.TimeOver:
		b.ShowMessage("TIME UP", 2)
	case gamestate.GameOver:
		b.ShowMessage("GAME OVER", 3)
	}
}

func (b *Binder) updateTime(remaining float64) {
	if b.Time == nil {
		return
	}
	b.Time.SetText(FormatTime(remaining))
	if TimeWarning(remaining, b.WarnSeconds) {
		b.Time.SetColor(b.WarnColor)
	} else {
		b.Time.SetColor(b.TextColor)
	}
}

// ShowMessage displays text in the message element and fades it out over
// seconds.
func (b *Binder) ShowMessage(text string, seconds float64) {
	if b.Message == nil {
		return
	}
	b.Message.SetText(text)
	b.Message.SetColor(b.TextColor)
	b.messageFade = gween.New(1, 0, float32(seconds), ease.InQuad)
}

// MessageActive reports whether a message is still on screen.
func (b *Binder) MessageActive() bool {
	return b.messageFade != nil
}

// Update advances the message fade by dt seconds.
func (b *Binder) Update(dt float64) {
	if b.messageFade == nil || b.Message == nil {
		return
	}

	alpha, done := b.messageFade.Update(float32(dt))
	if done {
		b.Message.SetText("")
		b.messageFade = nil
		return
	}
	b.Message.SetColor(fade(b.TextColor, alpha))
}

func fade(c color.Color, alpha float32) color.Color {
	r, g, bl, a := c.RGBA()
	k := float64(alpha)
	if k < 0 {
		k = 0
	}
	return color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(bl) * k),
		A: uint16(float64(a) * k),
	}
}

func setText(el TextElement, s string) {
	if el == nil {
		return
	}
	el.SetText(s)
}
