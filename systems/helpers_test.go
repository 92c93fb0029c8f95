package systems

import (
	"testing"

	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/gamestate"
	"github.com/genjam/platformer/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type testWorld struct {
	ecs   *ecs.ECS
	space *resolv.Space
	store *gamestate.Store
	input *components.InputData
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, 640, 360, 16, 16)
	inputEntry := archetypes.Input.Spawn(e)
	return &testWorld{
		ecs:   e,
		space: components.Space.Get(spaceEntry),
		store: gamestate.New(gamestate.DefaultConfig()),
		input: components.Input.Get(inputEntry),
	}
}

func (w *testWorld) addGround(t *testing.T, x, y, width, height float64) *donburi.Entry {
	t.Helper()
	setup := factory.DefaultGroundSetup()
	setup.X, setup.Y, setup.Width, setup.Height = x, y, width, height
	e, err := factory.CreateGround(w.ecs, setup)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func (w *testWorld) addPlayer(t *testing.T, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreatePlayer(w.ecs, factory.DefaultPlayerSetup(x, y), factory.PlayerDeps{
		Space: w.space,
		Store: w.store,
		Input: w.input,
	})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func (w *testWorld) addEnemy(t *testing.T, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateEnemy(w.ecs, factory.EnemySetup{
		X: x, Y: y, Width: 24, Height: 24, Name: "dummy", MaxHealth: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func (w *testWorld) addCollectible(t *testing.T, x, y float64, kind components.CollectibleKind) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateCollectible(w.ecs, factory.CollectibleSetup{
		X: x, Y: y, Size: 12, Kind: kind, ScoreValue: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// frame advances the input by one frame with only the given actions held.
func frame(in *components.InputData, held ...cfg.ActionID) {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		in.Current[a] = true
	}
}
