package systems

import (
	"log"

	"github.com/genjam/platformer/components"
	"github.com/genjam/platformer/gamestate"
	"github.com/yohamta/donburi/ecs"
)

// RecordGameOver stores the final result of store in the world and updates
// the saved best score.
func RecordGameOver(e *ecs.ECS, store *gamestate.Store) *components.GameOverData {
	result := GetOrCreateGameOver(e)
	result.FinalScore = store.Score()
	result.BestScore, result.NewBest = RecordScore(store.Score())
	if result.NewBest {
		log.Printf("new best score %d", result.BestScore)
	}
	return result
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.GameOver))
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
