package systems

import (
	"math"

	"github.com/genjam/platformer/components"
	"github.com/genjam/platformer/shared/gamemath"
	"github.com/genjam/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// QueryCircle returns every object carrying tag whose bounds touch c.
// The space is searched through a temporary probe covering the circle's
// bounding square; the circle test then drops the corners.
func QueryCircle(space *resolv.Space, c gamemath.Circle, tag string) []*resolv.Object {
	if space == nil || c.R <= 0 {
		return nil
	}

	b := c.Bounds()
	probe := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, o := range check.ObjectsByTags(tag) {
		if gamemath.CircleRectOverlap(c, objectRect(o)) {
			hits = append(hits, o)
		}
	}
	return hits
}

// entryOf returns the entity linked to a resolv object by its factory.
func entryOf(o *resolv.Object) (*donburi.Entry, bool) {
	e, ok := o.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}

func objectRect(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// resolveHorizontalCollision moves object by dx, stopping flush against the
// first solid in the way.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		object.Update()
		return
	}

	moved := objectRect(object)
	moved.X += dx
	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !gamemath.RectOverlap(moved, objectRect(solid)) {
			continue
		}
		contact := check.ContactWithObject(solid).X()
		if dx > 0 {
			dx = math.Min(dx, math.Max(0, contact))
		} else {
			dx = math.Max(dx, math.Min(0, contact))
		}
		blocked = true
	}

	if blocked {
		physics.VelX = 0
	}
	object.X += dx
	object.Update()
}

// resolveVerticalCollision moves object by dy, landing on or bumping into
// solids. A body resting on a solid checks one pixel below itself so the
// contact survives a zero-velocity step.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	checkDistance := dy
	if dy >= 0 {
		checkDistance = dy + 1
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		object.Update()
		return
	}

	moved := objectRect(object)
	moved.Y += checkDistance
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !gamemath.RectOverlap(moved, objectRect(solid)) {
			continue
		}
		contact := check.ContactWithObject(solid).Y()
		if checkDistance > 0 {
			// Already overlapping from above counts as no movement.
			if contact < 0 {
				contact = 0
			}
			if contact <= dy {
				dy = contact
				if physics.VelY > 0 {
					physics.VelY = 0
				}
			}
		} else if contact > dy && contact <= 0 {
			dy = contact
			if physics.VelY < 0 {
				physics.VelY = 0
			}
		}
	}

	object.Y += dy
	object.Update()
}
