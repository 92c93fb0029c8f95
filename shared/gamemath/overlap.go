package gamemath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Circle is a query area used for proximity checks.
type Circle struct {
	X, Y, R float64
}

// Bounds returns the square that encloses c.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: c.R * 2, H: c.R * 2}
}

// CircleRectOverlap reports whether c touches r. Touching edges count as overlap.
func CircleRectOverlap(c Circle, r Rect) bool {
	nearestX := clamp(c.X, r.X, r.X+r.W)
	nearestY := clamp(c.Y, r.Y, r.Y+r.H)
	dx := c.X - nearestX
	dy := c.Y - nearestY
	return dx*dx+dy*dy <= c.R*c.R
}

// RectOverlap reports whether a and b share any area.
func RectOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
