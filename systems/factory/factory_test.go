package factory

import (
	"errors"
	"math"
	"testing"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/gamestate"
	"github.com/genjam/platformer/shared/leveldata"
	"github.com/genjam/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestFactoriesNeedASpace(t *testing.T) {
	e := newECS()

	if _, err := CreateGround(e, DefaultGroundSetup()); !errors.Is(err, ErrNoSpace) {
		t.Errorf("ground: got %v, want %v", err, ErrNoSpace)
	}
	if _, err := CreateEnemy(e, EnemySetupFromLevel(leveldata.EnemySpawn{})); !errors.Is(err, ErrNoSpace) {
		t.Errorf("enemy: got %v, want %v", err, ErrNoSpace)
	}
	if _, err := CreateCollectible(e, CollectibleSetup{Kind: components.CollectibleCoin}); !errors.Is(err, ErrNoSpace) {
		t.Errorf("collectible: got %v, want %v", err, ErrNoSpace)
	}
}

func TestCreatePlayerDeps(t *testing.T) {
	e := newECS()
	space := components.Space.Get(CreateSpace(e, 320, 240, 16, 16))
	store := gamestate.New(gamestate.DefaultConfig())
	input := &components.InputData{}

	tests := []struct {
		name string
		deps PlayerDeps
		want error
	}{
		{"no space", PlayerDeps{Store: store, Input: input}, ErrNoSpace},
		{"no store", PlayerDeps{Space: space, Input: input}, ErrNoStore},
		{"no input", PlayerDeps{Space: space, Store: store}, ErrNoInput},
		{"complete", PlayerDeps{Space: space, Store: store, Input: input}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreatePlayer(e, DefaultPlayerSetup(10, 10), tt.deps)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreatePlayerLinksObject(t *testing.T) {
	e := newECS()
	space := components.Space.Get(CreateSpace(e, 320, 240, 16, 16))
	p, err := CreatePlayer(e, DefaultPlayerSetup(10, 20), PlayerDeps{
		Space: space,
		Store: gamestate.New(gamestate.DefaultConfig()),
		Input: &components.InputData{},
	})
	if err != nil {
		t.Fatal(err)
	}

	obj := components.Object.Get(p)
	if obj.Data != p {
		t.Error("resolv object does not point back at the entry")
	}
	if !obj.HasTags(tags.ResolvPlayer) {
		t.Error("player object missing its tag")
	}
	if obj.X != 10 || obj.Y != 20 {
		t.Errorf("got (%v, %v), want (10, 20)", obj.X, obj.Y)
	}
	if got := components.State.Get(p).CurrentState; got != cfg.Idle {
		t.Errorf("got state %v, want %v", got, cfg.Idle)
	}
}

func TestCreateGroundRejectsEmpty(t *testing.T) {
	e := newECS()
	CreateSpace(e, 320, 240, 16, 16)
	setup := DefaultGroundSetup()
	setup.Width = 0

	if _, err := CreateGround(e, setup); err == nil {
		t.Error("got nil error for a zero-width ground")
	}
}

func TestCollectibleSetupFromLevel(t *testing.T) {
	tests := []struct {
		spawn     leveldata.CollectibleSpawn
		wantKind  components.CollectibleKind
		wantScore int
		wantErr   bool
	}{
		{leveldata.CollectibleSpawn{Kind: "coin", ScoreValue: 50}, components.CollectibleCoin, 50, false},
		{leveldata.CollectibleSpawn{Kind: ""}, components.CollectibleCoin, cfg.Collectible.DefaultScoreValue, false},
		{leveldata.CollectibleSpawn{Kind: "powerup"}, components.CollectiblePowerUp, cfg.Collectible.DefaultScoreValue, false},
		{leveldata.CollectibleSpawn{Kind: "life", ScoreValue: 1000}, components.CollectibleLife, 1000, false},
		{leveldata.CollectibleSpawn{Kind: "star"}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.spawn.Kind, func(t *testing.T) {
			setup, err := CollectibleSetupFromLevel(tt.spawn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error %v, want error %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if setup.Kind != tt.wantKind || setup.ScoreValue != tt.wantScore {
				t.Errorf("got %v/%d, want %v/%d", setup.Kind, setup.ScoreValue, tt.wantKind, tt.wantScore)
			}
		})
	}
}

func TestCollectibleCentredOnSpawn(t *testing.T) {
	e := newECS()
	CreateSpace(e, 320, 240, 16, 16)

	c, err := CreateCollectible(e, CollectibleSetup{X: 100, Y: 50, Size: 12, Kind: components.CollectibleLife, ScoreValue: 10})
	if err != nil {
		t.Fatal(err)
	}

	cx, cy := components.Object.Get(c).Center()
	if cx != 100 || cy != 50 {
		t.Errorf("got centre (%v, %v), want (100, 50)", cx, cy)
	}
	if got := components.Fill.Get(c).Color; got != cfg.Collectible.LifeColor {
		t.Errorf("got colour %v, want %v", got, cfg.Collectible.LifeColor)
	}
}

func TestBobSequence(t *testing.T) {
	const amp, freq = 6.0, 2.0
	seq := NewBobSequence(amp, freq)
	quarter := float32(math.Pi / 2 / freq)

	crest, _, _ := seq.Update(quarter)
	if math.Abs(float64(crest)+amp) > 1e-3 {
		t.Errorf("got %v at the first quarter, want %v", crest, -amp)
	}

	seq.Update(quarter)
	trough, _, _ := seq.Update(quarter)
	if math.Abs(float64(trough)-amp) > 1e-3 {
		t.Errorf("got %v at the third quarter, want %v", trough, amp)
	}

	end, _, done := seq.Update(quarter)
	if !done || math.Abs(float64(end)) > 1e-3 {
		t.Errorf("got %v done=%v after a full period, want 0 done=true", end, done)
	}
}

func TestFlatBob(t *testing.T) {
	seq := NewBobSequence(0, 2)
	v, _, _ := seq.Update(0.3)
	if v != 0 {
		t.Errorf("got %v, want 0", v)
	}
}

func TestCreateParallaxPlacement(t *testing.T) {
	e := newECS()
	setup := ParallaxSetup{
		Layers: []cfg.ParallaxLayerConfig{
			{Width: 320, Height: 40, Y: 10, Factor: 0.2},
			{Width: 100, Height: 20, Y: 30, Factor: 0.8},
		},
		Copies:          3,
		Scale:           2,
		BaseSpeed:       96,
		SpeedMultiplier: 1,
		AutoScroll:      false,
	}

	entry, err := CreateParallax(e, setup)
	if err != nil {
		t.Fatal(err)
	}
	group := components.ParallaxGroup.Get(entry)

	if len(group.Layers) != 6 {
		t.Fatalf("got %d layers, want 6", len(group.Layers))
	}
	if !group.Paused {
		t.Error("group running with auto scroll off")
	}

	wantX := []float64{0, 640, 1280, 0, 200, 400}
	for i, layer := range group.Layers {
		s := components.Scroll.Get(e.World.Entry(layer.Entity))
		if s.X != wantX[i] || s.StartX != wantX[i] {
			t.Errorf("copy %d: got X %v start %v, want %v", i, s.X, s.StartX, wantX[i])
		}
		if s.ZOffset != i/3 {
			t.Errorf("copy %d: got z %d, want %d", i, s.ZOffset, i/3)
		}
	}
}

func TestCreateParallaxRejectsBadSetup(t *testing.T) {
	tests := []struct {
		name  string
		setup ParallaxSetup
	}{
		{"no copies", ParallaxSetup{Layers: []cfg.ParallaxLayerConfig{{Width: 10}}}},
		{"zero width", ParallaxSetup{Copies: 2, Layers: []cfg.ParallaxLayerConfig{{Width: 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CreateParallax(newECS(), tt.setup); err == nil {
				t.Error("got nil error")
			}
		})
	}
}

func TestCreateCompleteSetup(t *testing.T) {
	level := &leveldata.Level{
		Name:         "test",
		Width:        960,
		Height:       360,
		Ground:       []leveldata.Rect{{X: 0, Y: 320, W: 480, H: 32}, {X: 520, Y: 288, W: 120, H: 64}},
		PlayerSpawns: []leveldata.SpawnPoint{{X: 40, Y: 280}},
		Enemies:      []leveldata.EnemySpawn{{X: 300, Y: 296, Name: "slime"}},
		Collectibles: []leveldata.CollectibleSpawn{{X: 120, Y: 290, Kind: "coin"}, {X: 160, Y: 290, Kind: "life"}},
	}
	opts := DefaultSetupOptions()
	opts.Parallax.Band = nil
	opts.SkipHUD = true

	e := newECS()
	s, err := CreateCompleteSetup(e, level, gamestate.New(gamestate.DefaultConfig()), opts)
	if err != nil {
		t.Fatal(err)
	}

	if got := len(s.Enemies); got != 1 {
		t.Errorf("got %d enemies, want 1", got)
	}
	if got := len(s.Collectibles); got != 2 {
		t.Errorf("got %d collectibles, want 2", got)
	}
	obj := components.Object.Get(s.Player)
	if obj.X != 40 || obj.Y != 280 {
		t.Errorf("got player at (%v, %v), want (40, 280)", obj.X, obj.Y)
	}

	grounds := 0
	tags.Ground.Each(e.World, func(*donburi.Entry) { grounds++ })
	if grounds != 2 {
		t.Errorf("got %d ground blocks, want 2", grounds)
	}

	// ground, player, enemy and two collectibles
	space := components.Space.Get(s.Space)
	if got := len(space.Objects()); got != 6 {
		t.Errorf("got %d objects in space, want 6", got)
	}
}

func TestCreateCompleteSetupDefaultGround(t *testing.T) {
	level := &leveldata.Level{Name: "empty", Width: 960, Height: 360}
	opts := DefaultSetupOptions()
	opts.Parallax.Band = nil
	opts.SkipHUD = true

	e := newECS()
	if _, err := CreateCompleteSetup(e, level, gamestate.New(gamestate.DefaultConfig()), opts); err != nil {
		t.Fatal(err)
	}

	grounds := 0
	tags.Ground.Each(e.World, func(*donburi.Entry) { grounds++ })
	if grounds != 1 {
		t.Errorf("got %d ground blocks, want the default strip", grounds)
	}
}

func TestCreateCompleteSetupNeedsLevelAndStore(t *testing.T) {
	opts := DefaultSetupOptions()
	if _, err := CreateCompleteSetup(newECS(), nil, gamestate.New(gamestate.DefaultConfig()), opts); !errors.Is(err, ErrNoLevel) {
		t.Errorf("got %v, want %v", err, ErrNoLevel)
	}
	if _, err := CreateCompleteSetup(newECS(), &leveldata.Level{}, nil, opts); !errors.Is(err, ErrNoStore) {
		t.Errorf("got %v, want %v", err, ErrNoStore)
	}
}

func TestCreateHUDNeedsStore(t *testing.T) {
	if _, err := CreateHUD(newECS(), DefaultHUDSetup(), nil); !errors.Is(err, ErrNoStore) {
		t.Errorf("got %v, want %v", err, ErrNoStore)
	}
}
