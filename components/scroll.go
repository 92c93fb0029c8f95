package components

import (
	"github.com/genjam/platformer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ScrollData is an infinitely repeating background copy. X is wrapped within
// one Width of StartX.
type ScrollData struct {
	X, Y           float64
	StartX         float64
	Width          float64 // rendered span of the sprite
	Speed          float64 // pixels per second
	AutoScroll     bool
	UsePlayerInput bool
	ParallaxFactor float64
	ZOffset        int // draw order, lower is further back
}

// SetParallaxFactor stores factor clamped to [0, 1].
func (s *ScrollData) SetParallaxFactor(factor float64) {
	s.ParallaxFactor = gamemath.Clamp01(factor)
}

var Scroll = donburi.NewComponentType[ScrollData]()

// ParallaxLayer binds one scrolling entity to its depth factor.
type ParallaxLayer struct {
	Entity donburi.Entity
	Factor float64
}

// ParallaxGroupData drives a set of scrolling layers from one base speed.
type ParallaxGroupData struct {
	BaseSpeed       float64
	SpeedMultiplier float64
	Paused          bool // auto-scroll off by configuration
	Frozen          bool // held still while the game is paused
	FollowPlayer    bool // SpeedMultiplier tracks |player input|
	Layers          []ParallaxLayer
}

func (p *ParallaxGroupData) SetGlobalSpeed(speed float64) {
	p.BaseSpeed = speed
}

func (p *ParallaxGroupData) SetSpeedMultiplier(multiplier float64) {
	p.SpeedMultiplier = multiplier
}

func (p *ParallaxGroupData) PauseScrolling(pause bool) {
	p.Paused = pause
}

// Freeze holds the layers still without touching the configured pause.
func (p *ParallaxGroupData) Freeze(frozen bool) {
	p.Frozen = frozen
}

// Scrolling reports whether the layers auto-scroll this step.
func (p *ParallaxGroupData) Scrolling() bool {
	return !p.Paused && !p.Frozen
}

// LayerSpeed is the speed every layer receives before its own factor.
func (p *ParallaxGroupData) LayerSpeed() float64 {
	return p.BaseSpeed * p.SpeedMultiplier
}

var ParallaxGroup = donburi.NewComponentType[ParallaxGroupData]()
