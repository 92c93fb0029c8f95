// Package leveldata parses TMX levels into plain data. It has no dependencies
// on ebitengine, donburi, or resolv so it can be tested headless.
package leveldata

// Level holds the gameplay objects placed in a TMX file.
type Level struct {
	Name         string
	Width        int
	Height       int
	Ground       []Rect
	PlayerSpawns []SpawnPoint
	Enemies      []EnemySpawn
	Collectibles []CollectibleSpawn
}

// Rect is a solid area in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places a damageable enemy. MaxHealth is 0 when the level does
// not override the configured default.
type EnemySpawn struct {
	X, Y      float64
	Name      string
	MaxHealth int
}

// CollectibleSpawn places a pickup. Kind is "coin", "powerup" or "life".
// ScoreValue is 0 when the level does not override the configured default.
type CollectibleSpawn struct {
	X, Y       float64
	Kind       string
	ScoreValue int
}
