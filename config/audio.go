package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundAttack
	SoundHit
	SoundDefeat
	SoundCoin
	SoundPowerUp
	SoundLife
	SoundLoseLife
	SoundMenuNavigate
	SoundMenuSelect
)

// Tone is a square-wave blip swept from Freq to EndFreq.
type Tone struct {
	Freq     float64
	EndFreq  float64
	Duration float64 // seconds
	Volume   float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
	Muted      bool
	Tones      map[SoundID]Tone
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
		Tones: map[SoundID]Tone{
			SoundJump:         {Freq: 330, EndFreq: 660, Duration: 0.12, Volume: 0.6},
			SoundAttack:       {Freq: 220, EndFreq: 110, Duration: 0.08, Volume: 0.5},
			SoundHit:          {Freq: 160, EndFreq: 80, Duration: 0.1, Volume: 0.8},
			SoundDefeat:       {Freq: 440, EndFreq: 55, Duration: 0.35, Volume: 0.7},
			SoundCoin:         {Freq: 988, EndFreq: 1319, Duration: 0.1, Volume: 0.5},
			SoundPowerUp:      {Freq: 392, EndFreq: 1568, Duration: 0.3, Volume: 0.5},
			SoundLife:         {Freq: 659, EndFreq: 1319, Duration: 0.4, Volume: 0.5},
			SoundLoseLife:     {Freq: 494, EndFreq: 62, Duration: 0.6, Volume: 0.7},
			SoundMenuNavigate: {Freq: 600, EndFreq: 600, Duration: 0.04, Volume: 0.3},
			SoundMenuSelect:   {Freq: 800, EndFreq: 1200, Duration: 0.08, Volume: 0.4},
		},
	}
}
