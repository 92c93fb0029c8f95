package components

import (
	"github.com/yohamta/donburi"
)

// CollectibleKind selects what a pickup grants.
type CollectibleKind int

const (
	CollectibleCoin CollectibleKind = iota
	CollectiblePowerUp
	CollectibleLife
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleCoin:
		return "coin"
	case CollectiblePowerUp:
		return "powerup"
	case CollectibleLife:
		return "life"
	default:
		return "unknown"
	}
}

// CollectibleData is a single-use pickup. Collected is set before any reward
// is granted so an entity can never pay out twice.
type CollectibleData struct {
	Kind       CollectibleKind
	ScoreValue int
	Collected  bool
	BaseY      float64 // resting Y of the collider; the bob is visual only
	SpinAngle  float64 // degrees
}

var Collectible = donburi.NewComponentType[CollectibleData]()
