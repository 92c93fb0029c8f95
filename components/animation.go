package components

import (
	"github.com/genjam/platformer/assets/animations"
	"github.com/genjam/platformer/config"
	"github.com/yohamta/donburi"
)

// AnimationData tracks which sheet of a generated character is showing.
// Exactly one state is current at a time.
type AnimationData struct {
	Key              string // Sprite set, e.g. "player"
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
		}
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

// NewAnimationData builds the animation set for key from the config tables.
func NewAnimationData(key string, frameW, frameH int) AnimationData {
	anims := make(map[config.StateID]*animations.Animation)
	for state, def := range config.CharacterAnimations[key] {
		anims[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.FrameTime)
	}

	data := AnimationData{
		Key:          key,
		CurrentSheet: config.StateNone,
		FrameWidth:   frameW,
		FrameHeight:  frameH,
		Animations:   anims,
	}
	data.SetAnimation(config.Idle)
	return data
}

var Animation = donburi.NewComponentType[AnimationData]()
