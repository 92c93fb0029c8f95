package components

import "github.com/yohamta/donburi"

// MeleeAttackData is the attack window of a character. The hit query runs
// once when the window opens.
type MeleeAttackData struct {
	IsAttacking bool
	Timer       float64 // seconds left in the window
	LastHits    int     // enemies hit by the most recent activation
	Activations int
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
