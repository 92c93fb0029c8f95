package assets

import (
	"encoding/binary"
	"math"

	"github.com/genjam/platformer/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesises sound effects on first use and caches the PCM.
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders every configured tone up front.
func (l *AudioLoader) PreloadSFX() {
	for id := range config.Audio.Tones {
		l.pcm(id)
	}
}

// LoadSFX returns a fresh player for id, or nil when id has no tone.
func (l *AudioLoader) LoadSFX(id config.SoundID) *audio.Player {
	data := l.pcm(id)
	if data == nil {
		return nil
	}
	return l.context.NewPlayerFromBytes(data)
}

func (l *AudioLoader) pcm(id config.SoundID) []byte {
	if data, ok := l.sfxCache[id]; ok {
		return data
	}
	tone, ok := config.Audio.Tones[id]
	if !ok {
		return nil
	}
	data := SynthTone(l.context.SampleRate(), tone)
	l.sfxCache[id] = data
	return data
}

// SynthTone renders tone as 16-bit little-endian stereo PCM, the format
// ebiten's audio players read. The amplitude decays linearly to silence.
func SynthTone(sampleRate int, tone config.Tone) []byte {
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.Freq + (tone.EndFreq-tone.Freq)*t
		phase += freq / float64(sampleRate)
		v := 1.0
		if math.Mod(phase, 1) >= 0.5 {
			v = -1
		}
		s := int16(v * tone.Volume * (1 - t) * math.MaxInt16 * 0.5)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
