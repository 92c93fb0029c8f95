package config

import "github.com/yohamta/donburi/ecs"

// Draw layers, rendered in ascending order.
const (
	Default ecs.LayerID = iota
	LayerHUD
)
