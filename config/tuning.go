package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional set of overrides read from a YAML file.
// Only the fields present in the file are applied.
//
// Example:
//
//	player:
//	  moveSpeed: 180
//	combat:
//	  attackDuration: 0.4
//	scroll:
//	  baseSpeed: 120
type Tuning struct {
	Player    *PlayerTuning    `yaml:"player"`
	Combat    *CombatTuning    `yaml:"combat"`
	Scroll    *ScrollTuning    `yaml:"scroll"`
	GameState *GameStateTuning `yaml:"gameState"`
}

type PlayerTuning struct {
	MoveSpeed         *float64 `yaml:"moveSpeed"`
	JumpSpeed         *float64 `yaml:"jumpSpeed"`
	Gravity           *float64 `yaml:"gravity"`
	MaxFallSpeed      *float64 `yaml:"maxFallSpeed"`
	AirControl        *bool    `yaml:"airControl"`
	GroundCheckRadius *float64 `yaml:"groundCheckRadius"`
}

type CombatTuning struct {
	AttackDamage   *int     `yaml:"attackDamage"`
	AttackRange    *float64 `yaml:"attackRange"`
	AttackDuration *float64 `yaml:"attackDuration"`
	AttackDamping  *float64 `yaml:"attackDamping"`
}

type ScrollTuning struct {
	BaseSpeed       *float64 `yaml:"baseSpeed"`
	SpeedMultiplier *float64 `yaml:"speedMultiplier"`
	AutoScroll      *bool    `yaml:"autoScroll"`
	UsePlayerInput  *bool    `yaml:"usePlayerInput"`
	FollowPlayer    *bool    `yaml:"followPlayer"`
}

type GameStateTuning struct {
	StartingLives *int     `yaml:"startingLives"`
	StartingTime  *float64 `yaml:"startingTime"`
	WorldName     *string  `yaml:"worldName"`
	PlayerName    *string  `yaml:"playerName"`
	Countdown     *bool    `yaml:"countdown"`
}

// LoadTuning reads and validates a tuning file. It does not apply it.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML tuning data. Unknown keys are rejected so typos
// do not silently leave defaults in place.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning file: %w", err)
	}
	return &t, nil
}

// Validate checks that overridden values are in range.
func (t *Tuning) Validate() error {
	if p := t.Player; p != nil {
		if err := nonNegative("player.moveSpeed", p.MoveSpeed); err != nil {
			return err
		}
		if err := nonNegative("player.jumpSpeed", p.JumpSpeed); err != nil {
			return err
		}
		if err := nonNegative("player.gravity", p.Gravity); err != nil {
			return err
		}
		if err := nonNegative("player.maxFallSpeed", p.MaxFallSpeed); err != nil {
			return err
		}
		if err := nonNegative("player.groundCheckRadius", p.GroundCheckRadius); err != nil {
			return err
		}
	}
	if c := t.Combat; c != nil {
		if c.AttackDamage != nil && *c.AttackDamage < 0 {
			return fmt.Errorf("combat.attackDamage must not be negative, got %d", *c.AttackDamage)
		}
		if err := nonNegative("combat.attackRange", c.AttackRange); err != nil {
			return err
		}
		if err := nonNegative("combat.attackDuration", c.AttackDuration); err != nil {
			return err
		}
		if c.AttackDamping != nil && (*c.AttackDamping < 0 || *c.AttackDamping > 1) {
			return fmt.Errorf("combat.attackDamping must be in [0,1], got %.2f", *c.AttackDamping)
		}
	}
	if s := t.Scroll; s != nil {
		if err := nonNegative("scroll.baseSpeed", s.BaseSpeed); err != nil {
			return err
		}
		if err := nonNegative("scroll.speedMultiplier", s.SpeedMultiplier); err != nil {
			return err
		}
	}
	if g := t.GameState; g != nil {
		if g.StartingLives != nil && *g.StartingLives <= 0 {
			return fmt.Errorf("gameState.startingLives must be positive, got %d", *g.StartingLives)
		}
		if err := nonNegative("gameState.startingTime", g.StartingTime); err != nil {
			return err
		}
	}
	return nil
}

func nonNegative(name string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s must not be negative, got %.2f", name, *v)
	}
	return nil
}

// Apply copies the overrides into the global configuration.
func (t *Tuning) Apply() {
	if p := t.Player; p != nil {
		setFloat(&Player.MoveSpeed, p.MoveSpeed)
		setFloat(&Player.JumpSpeed, p.JumpSpeed)
		setFloat(&Player.Gravity, p.Gravity)
		setFloat(&Player.MaxFallSpeed, p.MaxFallSpeed)
		setFloat(&Player.GroundCheckRadius, p.GroundCheckRadius)
		setBool(&Player.AirControl, p.AirControl)
	}
	if c := t.Combat; c != nil {
		if c.AttackDamage != nil {
			Combat.AttackDamage = *c.AttackDamage
		}
		setFloat(&Combat.AttackRange, c.AttackRange)
		setFloat(&Combat.AttackDuration, c.AttackDuration)
		setFloat(&Combat.AttackDamping, c.AttackDamping)
	}
	if s := t.Scroll; s != nil {
		setFloat(&Scroll.BaseSpeed, s.BaseSpeed)
		setFloat(&Scroll.SpeedMultiplier, s.SpeedMultiplier)
		setBool(&Scroll.AutoScroll, s.AutoScroll)
		setBool(&Scroll.UsePlayerInput, s.UsePlayerInput)
		setBool(&Scroll.FollowPlayer, s.FollowPlayer)
	}
	if g := t.GameState; g != nil {
		if g.StartingLives != nil {
			GameState.StartingLives = *g.StartingLives
		}
		setFloat(&GameState.StartingTime, g.StartingTime)
		if g.WorldName != nil {
			GameState.WorldName = *g.WorldName
		}
		if g.PlayerName != nil {
			GameState.PlayerName = *g.PlayerName
		}
		setBool(&GameState.Countdown, g.Countdown)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
