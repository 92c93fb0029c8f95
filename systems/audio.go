package systems

import (
	"sync"

	"github.com/genjam/platformer/assets"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	globalAudioLoader.PreloadSFX()
}

// UpdateAudio plays the sound effects queued since the last update.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if cfg.Audio.Muted || cfg.Audio.SFXVolume <= 0 {
		return
	}
	player := globalAudioLoader.LoadSFX(soundID)
	if player == nil {
		return
	}
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played on the next UpdateAudio.
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component, creating it if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
