package gamestate

// EventKind identifies which part of the game state changed.
type EventKind int

const (
	ScoreChanged EventKind = iota
	CoinsChanged
	LivesChanged
	TimeChanged
	TimeOver
	GameOver
)

func (k EventKind) String() string {
	switch k {
	case ScoreChanged:
		return "ScoreChanged"
	case CoinsChanged:
		return "CoinsChanged"
	case LivesChanged:
		return "LivesChanged"
	case TimeChanged:
		return "TimeChanged"
	case TimeOver:
		return "TimeOver"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is delivered to observers after a mutation has been applied.
// Value carries the new integer value for score, coins and lives.
// Time carries the remaining seconds for TimeChanged.
type Event struct {
	Kind  EventKind
	Value int
	Time  float64
}

// Observer receives store events synchronously on the simulation thread.
type Observer func(Event)
