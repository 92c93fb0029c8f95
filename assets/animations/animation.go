// Package animations steps frame indices for sprite sheets.
package animations

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FrameTime        float64 // seconds each frame is shown; 0 never advances
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by dt seconds. Long steps may skip frames.
func (a *Animation) Update(dt float64) {
	if a.FrameTime <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameTime {
		a.elapsed -= a.FrameTime
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
			} else {
				// loop back to the beginning
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, frameTime float64) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:     first,
		Last:      last,
		Step:      step,
		FrameTime: frameTime,
		frame:     first,
	}
}
