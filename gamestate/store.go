// Package gamestate holds the per-session score, coin, life and timer
// bookkeeping. A Store is created once per session and handed to every system
// that needs it; there is no package-level instance.
package gamestate

import (
	"errors"
	"log"
	"math"
)

// ErrNegativeCoins is returned by AddCoins for deltas below zero.
var ErrNegativeCoins = errors.New("coin delta must not be negative")

// Config contains the starting values and conversion rates for a Store.
type Config struct {
	StartingLives  int
	StartingTime   float64 // seconds
	CoinScoreValue int     // score awarded per coin
	CoinsPerLife   int
	WorldName      string
	PlayerName     string
	Countdown      bool
}

// DefaultConfig returns the classic 400 second, 3 life setup.
func DefaultConfig() Config {
	return Config{
		StartingLives:  3,
		StartingTime:   400,
		CoinScoreValue: 100,
		CoinsPerLife:   100,
		WorldName:      "WORLD 1-1",
		PlayerName:     "MARIO",
		Countdown:      true,
	}
}

type subscription struct {
	id       int
	observer Observer
}

// Store is the game state shared by gameplay systems and the HUD.
// It is not safe for concurrent use; all mutation happens on the update loop.
type Store struct {
	cfg Config

	score         int
	coins         int
	lives         int
	timeRemaining float64
	timeScale     float64
	gameOver      bool
	worldName     string
	playerName    string

	observers []subscription
	nextID    int
}

// New creates a store initialised from cfg. Zero conversion rates fall back to
// the defaults so a partially filled Config is still usable.
func New(cfg Config) *Store {
	def := DefaultConfig()
	if cfg.CoinsPerLife <= 0 {
		cfg.CoinsPerLife = def.CoinsPerLife
	}
	if cfg.CoinScoreValue < 0 {
		cfg.CoinScoreValue = def.CoinScoreValue
	}
	return &Store{
		cfg:           cfg,
		lives:         cfg.StartingLives,
		timeRemaining: cfg.StartingTime,
		timeScale:     1,
		worldName:     cfg.WorldName,
		playerName:    cfg.PlayerName,
	}
}

// Subscribe registers o and returns a function that removes it again.
// Observers are notified in registration order.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, observer: o})

	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(e Event) {
	// Iterate over a snapshot so observers may unsubscribe while handling e.
	subs := s.observers
	for _, sub := range subs {
		sub.observer(e)
	}
}

// AddScore adds delta to the score. The score never drops below zero.
func (s *Store) AddScore(delta int) {
	s.score += delta
	if s.score < 0 {
		s.score = 0
	}
	s.notify(Event{Kind: ScoreChanged, Value: s.score})
}

// AddCoins adds n coins. Every full CoinsPerLife coins are exchanged for one
// extra life, and each coin is also worth CoinScoreValue points.
func (s *Store) AddCoins(n int) error {
	if n < 0 {
		return ErrNegativeCoins
	}

	s.coins += n
	for s.coins >= s.cfg.CoinsPerLife {
		s.coins -= s.cfg.CoinsPerLife
		s.AddLife(1)
	}

	s.AddScore(n * s.cfg.CoinScoreValue)
	s.notify(Event{Kind: CoinsChanged, Value: s.coins})
	return nil
}

// AddLife grants n extra lives.
func (s *Store) AddLife(n int) {
	s.lives += n
	s.notify(Event{Kind: LivesChanged, Value: s.lives})
}

// LoseLife removes one life and ends the game when none are left.
func (s *Store) LoseLife() {
	s.lives--
	s.notify(Event{Kind: LivesChanged, Value: s.lives})

	if s.lives <= 0 && !s.gameOver {
		s.gameOver = true
		s.timeScale = 0
		log.Printf("GAME OVER (score %d)", s.score)
		s.notify(Event{Kind: GameOver, Value: s.score})
	}
}

// AddTime extends the countdown by seconds.
func (s *Store) AddTime(seconds float64) {
	s.SetTime(s.timeRemaining + seconds)
}

// SetTime sets the countdown, clamped at zero.
func (s *Store) SetTime(seconds float64) {
	s.timeRemaining = math.Max(0, seconds)
	s.notify(Event{Kind: TimeChanged, Time: s.timeRemaining})
}

// Tick advances the countdown by dt seconds of real time. When the timer
// reaches zero the player loses exactly one life.
func (s *Store) Tick(dt float64) {
	if !s.cfg.Countdown || s.gameOver || s.timeRemaining <= 0 {
		return
	}

	s.timeRemaining -= dt * s.timeScale
	if s.timeRemaining < 0 {
		s.timeRemaining = 0
	}
	s.notify(Event{Kind: TimeChanged, Time: s.timeRemaining})

	if s.timeRemaining <= 0 {
		log.Printf("TIME OVER")
		s.notify(Event{Kind: TimeOver})
		s.LoseLife()
	}
}

// Restart resets score, coins and time for a new attempt at the level.
// Lives carry over.
func (s *Store) Restart() {
	s.timeScale = 1
	s.gameOver = false

	s.score = 0
	s.coins = 0
	s.timeRemaining = s.cfg.StartingTime

	s.notify(Event{Kind: ScoreChanged, Value: s.score})
	s.notify(Event{Kind: CoinsChanged, Value: s.coins})
	s.notify(Event{Kind: TimeChanged, Time: s.timeRemaining})
}

// SetCountdown enables or disables the level timer.
func (s *Store) SetCountdown(enabled bool) {
	s.cfg.Countdown = enabled
}

func (s *Store) Score() int             { return s.score }
func (s *Store) Coins() int             { return s.coins }
func (s *Store) Lives() int             { return s.lives }
func (s *Store) TimeRemaining() float64 { return s.timeRemaining }
func (s *Store) TimeScale() float64     { return s.timeScale }
func (s *Store) IsGameOver() bool       { return s.gameOver }
func (s *Store) Countdown() bool        { return s.cfg.Countdown }

func (s *Store) WorldName() string { return s.worldName }

func (s *Store) SetWorldName(name string) { s.worldName = name }

func (s *Store) PlayerName() string { return s.playerName }

func (s *Store) SetPlayerName(name string) { s.playerName = name }
