package config

import (
	"image/color"

	"github.com/genjam/platformer/gamestate"
)

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per second, accelerations in pixels per second squared.
type PlayerConfig struct {
	// Movement
	MoveSpeed       float64
	JumpSpeed       float64
	AirControl      bool    // Allow steering while airborne
	MovingThreshold float64 // |input| above which the player counts as moving

	// Physics
	Gravity      float64
	MaxFallSpeed float64

	// Ground probe
	GroundCheckRadius float64
	GroundCheckOffset float64 // Distance below the feet

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// CombatConfig contains melee attack configuration values
type CombatConfig struct {
	AttackDamage   int
	AttackRange    float64 // Radius of the hit query in pixels
	AttackDuration float64 // seconds
	AttackDamping  float64 // Horizontal velocity multiplier per physics step while attacking
}

// EnemyConfig contains enemy configuration values
type EnemyConfig struct {
	MaxHealth int
	Width     float64
	Height    float64
	Color     color.RGBA
	HitFlash  float64 // seconds
}

// CollectibleConfig contains pickup configuration values
type CollectibleConfig struct {
	Size              float64
	DefaultScoreValue int
	SpinSpeed         float64 // degrees per second
	BobAmplitude      float64 // pixels
	BobFrequency      float64 // radians per second
	CoinColor         color.RGBA
	PowerUpColor      color.RGBA
	LifeColor         color.RGBA
}

// ParallaxLayerConfig describes one generated background band
type ParallaxLayerConfig struct {
	Color  color.RGBA
	Y      float64
	Height float64
	Width  float64 // Sprite width before scaling
	Factor float64 // 0 = static, 1 = full base speed
}

// ScrollConfig contains background scrolling configuration values
type ScrollConfig struct {
	BaseSpeed       float64 // pixels per second
	SpeedMultiplier float64
	AutoScroll      bool
	UsePlayerInput  bool // Layers also scroll against player input
	FollowPlayer    bool // Speed multiplier tracks |input|
	Copies          int  // Copies of each band placed side by side
	Scale           float64
	SkyColor        color.RGBA
	Layers          []ParallaxLayerConfig
}

// HUDConfig contains HUD layout and colour configuration values
type HUDConfig struct {
	PanelHeight     float64
	PanelColor      color.RGBA
	Margin          float64
	LabelSize       float64
	ValueSize       float64
	TimeSize        float64
	ScoreColor      color.RGBA
	CoinIconColor   color.RGBA
	LifeIconColor   color.RGBA
	TextColor       color.RGBA
	TimeWarnColor   color.RGBA
	TimeWarnSeconds int // Blink threshold
	MessageDuration float64
}

// GroundConfig contains the fallback ground used when a level has none
type GroundConfig struct {
	X, Y, Width, Height float64
	Color               color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
}

// GameStateConfig is the starting state of a session.
type GameStateConfig = gamestate.Config

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Level  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool
	TuningPath    string
	WatchTuning   bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Combat CombatConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var Scroll ScrollConfig
var HUD HUDConfig
var Ground GroundConfig
var Camera CameraConfig
var Pause PauseConfig
var GameOver GameOverConfig
var GameState GameStateConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 214, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Earth        = color.RGBA{R: 102, G: 76, B: 51, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// DeltaTime is the length of one update tick in seconds.
func DeltaTime() float64 {
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Level:  "levels/level1.tmx",
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		MoveSpeed:       160.0,
		JumpSpeed:       384.0,
		AirControl:      true,
		MovingThreshold: 0.1,

		// Physics
		Gravity:      940.0,
		MaxFallSpeed: 600.0,

		// Ground probe
		GroundCheckRadius: 6.4,
		GroundCheckOffset: 0,

		// Dimensions
		FrameWidth:      16,
		FrameHeight:     32,
		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	Combat = CombatConfig{
		AttackDamage:   10,
		AttackRange:    48.0,
		AttackDuration: 0.5,
		AttackDamping:  0.5,
	}

	Enemy = EnemyConfig{
		MaxHealth: 100,
		Width:     24,
		Height:    24,
		Color:     color.RGBA{R: 200, G: 40, B: 40, A: 255},
		HitFlash:  0.1,
	}

	Collectible = CollectibleConfig{
		Size:              12,
		DefaultScoreValue: 100,
		SpinSpeed:         180,
		BobAmplitude:      6.4,
		BobFrequency:      2,
		CoinColor:         Gold,
		PowerUpColor:      color.RGBA{R: 255, G: 120, B: 0, A: 255},
		LifeColor:         color.RGBA{R: 40, G: 200, B: 60, A: 255},
	}

	Scroll = ScrollConfig{
		BaseSpeed:       96.0,
		SpeedMultiplier: 1.0,
		AutoScroll:      true,
		UsePlayerInput:  false,
		FollowPlayer:    false,
		Copies:          2,
		Scale:           2,
		SkyColor:        color.RGBA{R: 92, G: 148, B: 252, A: 255},
		Layers: []ParallaxLayerConfig{
			{Color: color.RGBA{R: 200, G: 225, B: 255, A: 255}, Y: 40, Height: 40, Width: 320, Factor: 0.1},
			{Color: color.RGBA{R: 90, G: 140, B: 110, A: 255}, Y: 200, Height: 80, Width: 320, Factor: 0.3},
			{Color: color.RGBA{R: 60, G: 110, B: 70, A: 255}, Y: 250, Height: 60, Width: 320, Factor: 0.6},
		},
	}

	HUD = HUDConfig{
		PanelHeight:     34,
		PanelColor:      color.RGBA{R: 0, G: 0, B: 0, A: 153},
		Margin:          16,
		LabelSize:       10,
		ValueSize:       12,
		TimeSize:        14,
		ScoreColor:      Gold,
		CoinIconColor:   Yellow,
		LifeIconColor:   Red,
		TextColor:       White,
		TimeWarnColor:   Red,
		TimeWarnSeconds: 30,
		MessageDuration: 2.0,
	}

	Ground = GroundConfig{
		X:      0,
		Y:      320,
		Width:  960,
		Height: 32,
		Color:  Earth,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuOptions:       []string{"Resume", "Restart Level", "Quit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 0, B: 0, A: 255},
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuOptions:       []string{"Play Again", "Quit"},
	}

	GameState = gamestate.DefaultConfig()
}
