package components

import "github.com/yohamta/donburi"

// GameOverData records the result shown on the game over screen.
type GameOverData struct {
	FinalScore int
	BestScore  int
	NewBest    bool
}

// GameOver is the component type for game over state
var GameOver = donburi.NewComponentType[GameOverData]()
