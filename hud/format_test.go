package hud

import "testing"

func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"score zero", FormatScore(0), "000000"},
		{"score padded", FormatScore(1250), "001250"},
		{"score overflow width", FormatScore(1234567), "1234567"},
		{"coins single digit", FormatCoins(7), "×07"},
		{"coins two digits", FormatCoins(42), "×42"},
		{"lives", FormatLives(3), "×3"},
		{"lives many", FormatLives(12), "×12"},
		{"time whole", FormatTime(400), "400"},
		{"time rounds up", FormatTime(399.01), "400"},
		{"time fraction", FormatTime(0.2), "1"},
		{"time zero", FormatTime(0), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestTimeWarning(t *testing.T) {
	tests := []struct {
		remaining float64
		want      bool
	}{
		{400, false},
		{31, false},
		{30, true},   // even
		{29.5, true}, // displays 30
		{29, false},  // odd
		{28.2, false},
		{2, true},
		{1, false},
		{0, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := TimeWarning(tt.remaining, 30); got != tt.want {
			t.Errorf("TimeWarning(%v): got %v, want %v", tt.remaining, got, tt.want)
		}
	}
}
