package config

type AnimationDef struct {
	First     int
	Last      int
	Step      int
	FrameTime float64 // seconds per frame; 0 holds the first frame
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {First: 0, Last: 1, Step: 1, FrameTime: 0.5},
		Running: {First: 0, Last: 3, Step: 1, FrameTime: 0.1}, // 10 fps
		Jump:    {First: 0, Last: 0, Step: 1, FrameTime: 0},
		Attack:  {First: 0, Last: 2, Step: 1, FrameTime: 0.1},
	},
	"enemy": {
		Idle: {First: 0, Last: 1, Step: 1, FrameTime: 0.4},
	},
}
