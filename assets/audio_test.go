package assets

import (
	"encoding/binary"
	"testing"

	"github.com/genjam/platformer/config"
)

func TestSynthToneLength(t *testing.T) {
	tests := []struct {
		name string
		tone config.Tone
		want int
	}{
		{"tenth of a second", config.Tone{Freq: 440, EndFreq: 440, Duration: 0.1, Volume: 1}, 4410 * 4},
		{"zero duration", config.Tone{Freq: 440, Duration: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(SynthTone(44100, tt.tone)); got != tt.want {
				t.Errorf("got %d bytes, want %d", got, tt.want)
			}
		})
	}
}

func TestSynthToneChannelsMatch(t *testing.T) {
	data := SynthTone(8000, config.Tone{Freq: 200, EndFreq: 400, Duration: 0.05, Volume: 0.8})
	for i := 0; i+4 <= len(data); i += 4 {
		l := binary.LittleEndian.Uint16(data[i:])
		r := binary.LittleEndian.Uint16(data[i+2:])
		if l != r {
			t.Fatalf("frame %d: got left %d, right %d", i/4, l, r)
		}
	}
}

func TestSynthToneSilentAtZeroVolume(t *testing.T) {
	data := SynthTone(8000, config.Tone{Freq: 200, EndFreq: 200, Duration: 0.01, Volume: 0})
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d: got %d, want 0", i, b)
		}
	}
}
