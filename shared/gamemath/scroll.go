package gamemath

// WrapScroll moves pos by delta and keeps it within one width of start.
// Crossing start-width or start+width translates the position by exactly one
// width, so a band of repeated sprites scrolls without visible seams.
func WrapScroll(pos, start, width, delta float64) float64 {
	pos += delta
	if width <= 0 {
		return pos
	}
	if pos <= start-width {
		pos += width
	} else if pos >= start+width {
		pos -= width
	}
	return pos
}

// ScrollDelta returns how far a layer moves in one step. Auto scrolling
// always moves left; player input moves the layer against the input direction.
func ScrollDelta(speed, factor, dt, input float64, auto, useInput bool) float64 {
	delta := 0.0
	if auto {
		delta -= speed * dt * factor
	}
	if useInput {
		delta -= input * speed * dt * factor
	}
	return delta
}
