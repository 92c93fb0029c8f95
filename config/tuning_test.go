package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	player, combat, scroll, gameState := Player, Combat, Scroll, GameState
	t.Cleanup(func() {
		Player, Combat, Scroll, GameState = player, combat, scroll, gameState
	})
}

func TestParseTuningAppliesOnlyPresentFields(t *testing.T) {
	restoreGlobals(t)
	jump := Player.JumpSpeed

	tuning, err := ParseTuning([]byte(`
player:
  moveSpeed: 200
  airControl: false
combat:
  attackDuration: 0.25
scroll:
  baseSpeed: 42
gameState:
  worldName: "WORLD 2-1"
`))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	tuning.Apply()

	if Player.MoveSpeed != 200 {
		t.Errorf("MoveSpeed: got %v, want 200", Player.MoveSpeed)
	}
	if Player.AirControl {
		t.Errorf("AirControl: got true, want false")
	}
	if Player.JumpSpeed != jump {
		t.Errorf("JumpSpeed: got %v, want unchanged %v", Player.JumpSpeed, jump)
	}
	if Combat.AttackDuration != 0.25 {
		t.Errorf("AttackDuration: got %v, want 0.25", Combat.AttackDuration)
	}
	if Scroll.BaseSpeed != 42 {
		t.Errorf("BaseSpeed: got %v, want 42", Scroll.BaseSpeed)
	}
	if GameState.WorldName != "WORLD 2-1" {
		t.Errorf("WorldName: got %q, want %q", GameState.WorldName, "WORLD 2-1")
	}
}

func TestParseTuningErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown key", "player:\n  moveSped: 10\n", "failed to parse"},
		{"negative speed", "player:\n  moveSpeed: -1\n", "player.moveSpeed"},
		{"damping out of range", "combat:\n  attackDamping: 1.5\n", "combat.attackDamping"},
		{"zero lives", "gameState:\n  startingLives: 0\n", "gameState.startingLives"},
		{"malformed", "player: [1, 2\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseTuningEmpty(t *testing.T) {
	tuning, err := ParseTuning(nil)
	if err != nil {
		t.Fatalf("ParseTuning(nil): %v", err)
	}
	if tuning.Player != nil || tuning.Combat != nil || tuning.Scroll != nil || tuning.GameState != nil {
		t.Errorf("expected no overrides, got %+v", tuning)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("got %v, want read error", err)
	}
}

func TestWatchTuningDeliversUpdates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("scroll:\n  baseSpeed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("scroll:\n  baseSpeed: 77\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case tuning := <-w.Updates:
		if tuning.Scroll == nil || tuning.Scroll.BaseSpeed == nil {
			t.Fatalf("update missing scroll.baseSpeed: %+v", tuning)
		}
		if *tuning.Scroll.BaseSpeed != 77 {
			t.Errorf("baseSpeed: got %v, want 77", *tuning.Scroll.BaseSpeed)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for tuning update")
	}
}

func TestTuningSendKeepsNewestWhenFull(t *testing.T) {
	w := &TuningWatcher{
		Updates: make(chan *Tuning, 2),
		Errors:  make(chan error, 2),
		closeCh: make(chan struct{}),
	}

	done := make(chan struct{})
	go func() {
		for i := 1; i <= 5; i++ {
			speed := float64(i)
			w.send(&Tuning{Scroll: &ScrollTuning{BaseSpeed: &speed}}, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("send blocked on a full buffer")
	}

	latest := w.Poll()
	if latest == nil || latest.Scroll == nil || *latest.Scroll.BaseSpeed != 5 {
		t.Fatalf("got %+v, want the fifth update", latest)
	}
	if again := w.Poll(); again != nil {
		t.Errorf("got %+v after draining, want nil", again)
	}
}
