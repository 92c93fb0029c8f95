package factory

import "errors"

// Errors returned when a factory is called without a collaborator it needs.
var (
	ErrNoSpace = errors.New("no collision space in world")
	ErrNoStore = errors.New("no game state store")
	ErrNoInput = errors.New("no input state")
	ErrNoLevel = errors.New("no level")
	ErrNoFonts = errors.New("fonts not loaded")
)
