package gamemath

import (
	"math"
	"testing"
)

func TestCircleRectOverlap(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		c    Circle
		want bool
	}{
		{"center inside", Circle{X: 5, Y: 5, R: 1}, true},
		{"touching edge", Circle{X: 12, Y: 5, R: 2}, true},
		{"just outside edge", Circle{X: 12.1, Y: 5, R: 2}, false},
		{"near corner outside", Circle{X: 12, Y: 12, R: 2}, false},
		{"near corner inside", Circle{X: 11, Y: 11, R: 2}, true},
		{"below, within radius", Circle{X: 5, Y: 10.5, R: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleRectOverlap(tt.c, r); got != tt.want {
				t.Errorf("CircleRectOverlap(%+v): got %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestRectOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !RectOverlap(a, Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("expected overlapping rects to overlap")
	}
	if RectOverlap(a, Rect{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("rects sharing only an edge should not overlap")
	}
}

func TestWrapScroll(t *testing.T) {
	tests := []struct {
		name  string
		pos   float64
		delta float64
		want  float64
	}{
		{"inside band", 0, -5, -5},
		{"crosses left boundary", -18, -3, -1},
		{"lands on left boundary", -15, -5, 0},
		{"crosses right boundary", 18, 3, 1},
		{"lands on right boundary", 15, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapScroll(tt.pos, 0, 20, tt.delta)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WrapScroll(%v, 0, 20, %v): got %v, want %v", tt.pos, tt.delta, got, tt.want)
			}
		})
	}
}

func TestWrapScrollNoDrift(t *testing.T) {
	const (
		start = 100.0
		width = 20.0
		delta = -0.37
		steps = 100000
	)

	pos := start
	for i := 0; i < steps; i++ {
		pos = WrapScroll(pos, start, width, delta)
		if pos <= start-width || pos >= start+width {
			t.Fatalf("step %d: position %v left the band", i, pos)
		}
	}

	// Unwrapped travel modulo width must match the wrapped offset.
	travelled := math.Mod(delta*steps, width)
	offset := math.Mod(pos-start, width)
	if math.Abs(travelled-offset) > 1e-6 && math.Abs(math.Abs(travelled-offset)-width) > 1e-6 {
		t.Errorf("drift: offset %v, want %v (mod %v)", offset, travelled, width)
	}
}

func TestScrollDelta(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		auto     bool
		useInput bool
		want     float64
	}{
		{"auto only", 1, true, false, -1},
		{"input only right", 1, false, true, -1},
		{"input only left", -1, false, true, 1},
		{"both", 1, true, true, -2},
		{"neither", 1, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScrollDelta(10, 0.5, 0.2, tt.input, tt.auto, tt.useInput)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScrollDelta: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 3: 1} {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v): got %v, want %v", in, got, want)
		}
	}
}

func TestShouldFlip(t *testing.T) {
	tests := []struct {
		h, facing float64
		want      bool
	}{
		{1, 1, false},
		{1, -1, true},
		{-1, 1, true},
		{-1, -1, false},
		{0, 1, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		if got := ShouldFlip(tt.h, tt.facing); got != tt.want {
			t.Errorf("ShouldFlip(%v, %v): got %v, want %v", tt.h, tt.facing, got, tt.want)
		}
	}
}
