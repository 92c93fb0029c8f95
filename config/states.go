package config

// StateID identifies the visual state of a character.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Running
	Jump
	Attack
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "walk"
	case Jump:
		return "jump"
	case Attack:
		return "attack"
	default:
		return "none"
	}
}
