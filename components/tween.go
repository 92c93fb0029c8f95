package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives a repeating value, e.g. the vertical bob of a collectible.
var Tween = donburi.NewComponentType[gween.Sequence]()
