package systems

import (
	"github.com/genjam/platformer/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of every collider, so objects
// moved outside the collision code are still found by queries.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Update()
		}
	}
}
