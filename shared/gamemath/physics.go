package gamemath

// Clamp01 limits v to the range [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AxisSign reduces an input axis to -1, 0 or 1.
func AxisSign(h float64) float64 {
	switch {
	case h > 0:
		return 1
	case h < 0:
		return -1
	default:
		return 0
	}
}

// ShouldFlip reports whether a character facing facingX should turn around
// for horizontal input h. Zero input never flips.
func ShouldFlip(h, facingX float64) bool {
	return (h > 0 && facingX < 0) || (h < 0 && facingX > 0)
}
