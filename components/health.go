package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// TakeDamage subtracts amount and reports whether the entity is now dead.
func (h *HealthData) TakeDamage(amount int) bool {
	h.Current -= amount
	return h.Current <= 0
}

// Dead reports whether health has run out.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
