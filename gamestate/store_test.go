package gamestate

import (
	"errors"
	"testing"
)

type recorder struct {
	events []Event
}

func (r *recorder) observe(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func newRecordedStore(t *testing.T) (*Store, *recorder) {
	t.Helper()
	s := New(DefaultConfig())
	r := &recorder{}
	s.Subscribe(r.observe)
	return s, r
}

func TestNewStoreDefaults(t *testing.T) {
	s := New(DefaultConfig())

	if s.Score() != 0 {
		t.Errorf("Score: got %d, want 0", s.Score())
	}
	if s.Coins() != 0 {
		t.Errorf("Coins: got %d, want 0", s.Coins())
	}
	if s.Lives() != 3 {
		t.Errorf("Lives: got %d, want 3", s.Lives())
	}
	if s.TimeRemaining() != 400 {
		t.Errorf("TimeRemaining: got %v, want 400", s.TimeRemaining())
	}
	if s.WorldName() != "WORLD 1-1" {
		t.Errorf("WorldName: got %q, want %q", s.WorldName(), "WORLD 1-1")
	}
	if s.PlayerName() != "MARIO" {
		t.Errorf("PlayerName: got %q, want %q", s.PlayerName(), "MARIO")
	}
	if s.TimeScale() != 1 {
		t.Errorf("TimeScale: got %v, want 1", s.TimeScale())
	}
}

func TestAddScore(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		delta  int
		expect int
	}{
		{"positive", 0, 250, 250},
		{"zero", 100, 0, 100},
		{"negative within range", 500, -200, 300},
		{"negative clamps at zero", 100, -500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := newRecordedStore(t)
			s.score = tt.start

			s.AddScore(tt.delta)

			if s.Score() != tt.expect {
				t.Errorf("Score: got %d, want %d", s.Score(), tt.expect)
			}
			if len(r.events) != 1 || r.events[0].Kind != ScoreChanged || r.events[0].Value != tt.expect {
				t.Errorf("events: got %+v, want one ScoreChanged(%d)", r.events, tt.expect)
			}
		})
	}
}

func TestAddCoinsCascade(t *testing.T) {
	tests := []struct {
		name       string
		startCoins int
		delta      int
		wantCoins  int
		wantLives  int
	}{
		{"below threshold", 10, 5, 15, 3},
		{"exactly threshold", 99, 1, 0, 4},
		{"one over threshold", 95, 10, 5, 4},
		{"several lives at once", 50, 250, 0, 6},
		{"zero delta", 42, 0, 42, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := newRecordedStore(t)
			s.coins = tt.startCoins

			if err := s.AddCoins(tt.delta); err != nil {
				t.Fatalf("AddCoins: unexpected error %v", err)
			}

			if s.Coins() != tt.wantCoins {
				t.Errorf("Coins: got %d, want %d", s.Coins(), tt.wantCoins)
			}
			if s.Lives() != tt.wantLives {
				t.Errorf("Lives: got %d, want %d", s.Lives(), tt.wantLives)
			}
			if got, want := r.count(LivesChanged), tt.wantLives-3; got != want {
				t.Errorf("LivesChanged events: got %d, want %d", got, want)
			}
			if s.Score() != tt.delta*100 {
				t.Errorf("Score: got %d, want %d", s.Score(), tt.delta*100)
			}
			if r.count(CoinsChanged) != 1 {
				t.Errorf("CoinsChanged events: got %d, want 1", r.count(CoinsChanged))
			}
		})
	}
}

func TestAddCoinsRepeatedInvariant(t *testing.T) {
	s := New(DefaultConfig())
	total := 0
	for i := 0; i < 500; i++ {
		d := i % 37
		total += d
		if err := s.AddCoins(d); err != nil {
			t.Fatalf("AddCoins(%d): %v", d, err)
		}
	}

	if s.Coins() != total%100 {
		t.Errorf("Coins: got %d, want %d", s.Coins(), total%100)
	}
	if s.Lives() != 3+total/100 {
		t.Errorf("Lives: got %d, want %d", s.Lives(), 3+total/100)
	}
}

func TestAddCoinsRejectsNegative(t *testing.T) {
	s, r := newRecordedStore(t)
	s.coins = 10

	err := s.AddCoins(-5)
	if !errors.Is(err, ErrNegativeCoins) {
		t.Errorf("AddCoins(-5): got %v, want ErrNegativeCoins", err)
	}
	if s.Coins() != 10 {
		t.Errorf("Coins: got %d, want 10", s.Coins())
	}
	if len(r.events) != 0 {
		t.Errorf("events: got %d, want none", len(r.events))
	}
}

func TestAddCoinsNotificationOrder(t *testing.T) {
	s, r := newRecordedStore(t)
	s.coins = 99

	if err := s.AddCoins(1); err != nil {
		t.Fatal(err)
	}

	want := []EventKind{LivesChanged, ScoreChanged, CoinsChanged}
	if len(r.events) != len(want) {
		t.Fatalf("events: got %+v, want kinds %v", r.events, want)
	}
	for i, k := range want {
		if r.events[i].Kind != k {
			t.Errorf("event %d: got %v, want %v", i, r.events[i].Kind, k)
		}
	}
}

func TestLoseLifeGameOver(t *testing.T) {
	s, r := newRecordedStore(t)

	s.LoseLife()
	s.LoseLife()
	if s.IsGameOver() {
		t.Fatal("game over with one life left")
	}

	s.LoseLife()
	if !s.IsGameOver() {
		t.Fatal("expected game over at zero lives")
	}
	if s.TimeScale() != 0 {
		t.Errorf("TimeScale: got %v, want 0", s.TimeScale())
	}
	if r.count(GameOver) != 1 {
		t.Errorf("GameOver events: got %d, want 1", r.count(GameOver))
	}

	s.LoseLife()
	if r.count(GameOver) != 1 {
		t.Errorf("GameOver fired again: got %d", r.count(GameOver))
	}
}

func TestTickTimeOver(t *testing.T) {
	s, r := newRecordedStore(t)
	s.SetTime(0.4)
	r.events = nil

	s.Tick(0.5)

	if s.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining: got %v, want 0", s.TimeRemaining())
	}
	if s.Lives() != 2 {
		t.Errorf("Lives: got %d, want 2", s.Lives())
	}
	if r.count(TimeOver) != 1 {
		t.Errorf("TimeOver events: got %d, want 1", r.count(TimeOver))
	}

	s.Tick(0.5)
	if s.Lives() != 2 {
		t.Errorf("Lives after second tick: got %d, want 2", s.Lives())
	}
	if r.count(TimeOver) != 1 {
		t.Errorf("TimeOver events after second tick: got %d, want 1", r.count(TimeOver))
	}
}

func TestTickHonoursCountdownAndGameOver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Countdown = false
	s := New(cfg)
	s.Tick(1)
	if s.TimeRemaining() != 400 {
		t.Errorf("disabled countdown: got %v, want 400", s.TimeRemaining())
	}

	s = New(DefaultConfig())
	s.lives = 1
	s.LoseLife()
	s.Tick(1)
	if s.TimeRemaining() != 400 {
		t.Errorf("after game over: got %v, want 400", s.TimeRemaining())
	}
}

func TestAddTime(t *testing.T) {
	s, r := newRecordedStore(t)
	s.AddTime(50)
	if s.TimeRemaining() != 450 {
		t.Errorf("TimeRemaining: got %v, want 450", s.TimeRemaining())
	}
	if len(r.events) != 1 || r.events[0].Kind != TimeChanged || r.events[0].Time != 450 {
		t.Errorf("events: got %+v, want one TimeChanged(450)", r.events)
	}
}

func TestRestart(t *testing.T) {
	s, r := newRecordedStore(t)
	s.score = 1200
	s.coins = 42
	s.lives = 1
	s.timeRemaining = 12
	s.LoseLife()
	r.events = nil

	s.Restart()

	if s.Score() != 0 || s.Coins() != 0 || s.TimeRemaining() != 400 {
		t.Errorf("got score=%d coins=%d time=%v, want 0 0 400", s.Score(), s.Coins(), s.TimeRemaining())
	}
	if s.Lives() != 0 {
		t.Errorf("Lives: got %d, want unchanged 0", s.Lives())
	}
	if s.IsGameOver() || s.TimeScale() != 1 {
		t.Errorf("got gameOver=%v timeScale=%v, want false 1", s.IsGameOver(), s.TimeScale())
	}

	want := []EventKind{ScoreChanged, CoinsChanged, TimeChanged}
	if len(r.events) != len(want) {
		t.Fatalf("events: got %+v, want kinds %v", r.events, want)
	}
	for i, k := range want {
		if r.events[i].Kind != k {
			t.Errorf("event %d: got %v, want %v", i, r.events[i].Kind, k)
		}
	}
}

func TestObserversRunInRegistrationOrder(t *testing.T) {
	s := New(DefaultConfig())
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		s.Subscribe(func(Event) { order = append(order, i) })
	}

	s.AddScore(1)

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order: got %v, want [0 1 2]", order)
	}
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	s := New(DefaultConfig())
	var calls []string

	var unsubFirst func()
	unsubFirst = s.Subscribe(func(Event) {
		calls = append(calls, "first")
		unsubFirst()
	})
	s.Subscribe(func(Event) { calls = append(calls, "second") })

	s.AddScore(1)
	s.AddScore(1)

	want := []string{"first", "second", "second"}
	if len(calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: got %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestNames(t *testing.T) {
	s := New(DefaultConfig())
	s.SetWorldName("WORLD 2-1")
	s.SetPlayerName("LUIGI")
	if s.WorldName() != "WORLD 2-1" {
		t.Errorf("WorldName: got %q", s.WorldName())
	}
	if s.PlayerName() != "LUIGI" {
		t.Errorf("PlayerName: got %q", s.PlayerName())
	}
}
