package factory

import (
	"fmt"
	"image/color"
	"math"

	"github.com/genjam/platformer/archetypes"
	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/genjam/platformer/shared/leveldata"
	"github.com/genjam/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CollectibleSetup places a pickup centred on (X, Y).
type CollectibleSetup struct {
	X, Y       float64
	Size       float64
	Kind       components.CollectibleKind
	ScoreValue int
}

// CollectibleSetupFromLevel converts a level spawn, applying the default
// score value when the level leaves it unset.
func CollectibleSetupFromLevel(spawn leveldata.CollectibleSpawn) (CollectibleSetup, error) {
	kind, err := parseKind(spawn.Kind)
	if err != nil {
		return CollectibleSetup{}, err
	}
	setup := CollectibleSetup{
		X:          spawn.X,
		Y:          spawn.Y,
		Size:       cfg.Collectible.Size,
		Kind:       kind,
		ScoreValue: spawn.ScoreValue,
	}
	if setup.ScoreValue <= 0 {
		setup.ScoreValue = cfg.Collectible.DefaultScoreValue
	}
	return setup, nil
}

func parseKind(s string) (components.CollectibleKind, error) {
	switch s {
	case leveldata.KindCoin, "":
		return components.CollectibleCoin, nil
	case leveldata.KindPowerUp:
		return components.CollectiblePowerUp, nil
	case leveldata.KindLife:
		return components.CollectibleLife, nil
	}
	return 0, fmt.Errorf("unknown collectible kind %q", s)
}

func kindColor(k components.CollectibleKind) color.RGBA {
	switch k {
	case components.CollectiblePowerUp:
		return cfg.Collectible.PowerUpColor
	case components.CollectibleLife:
		return cfg.Collectible.LifeColor
	default:
		return cfg.Collectible.CoinColor
	}
}

// CreateCollectible spawns a spinning, bobbing pickup on the collectible layer.
func CreateCollectible(ecs *ecs.ECS, setup CollectibleSetup) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", setup.Kind, err)
	}
	if setup.Size <= 0 {
		setup.Size = cfg.Collectible.Size
	}

	c := archetypes.Collectible.Spawn(ecs)

	x, y := setup.X-setup.Size/2, setup.Y-setup.Size/2
	obj := resolv.NewObject(x, y, setup.Size, setup.Size, tags.ResolvCollectible)
	obj.SetShape(resolv.NewRectangle(0, 0, setup.Size, setup.Size))
	obj.Data = c
	components.Object.SetValue(c, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Collectible.SetValue(c, components.CollectibleData{
		Kind:       setup.Kind,
		ScoreValue: setup.ScoreValue,
		BaseY:      y,
	})
	components.Sprite.SetValue(c, components.SpriteData{ScaleX: 1, ScaleY: 1})
	components.Fill.SetValue(c, components.FillData{Color: kindColor(setup.Kind)})
	components.Tween.Set(c, NewBobSequence(cfg.Collectible.BobAmplitude, cfg.Collectible.BobFrequency))

	return c, nil
}

// NewBobSequence approximates sin(frequency*t)*amplitude over one period:
// up to the crest, down through the rest position to the trough, and back.
// Screen Y grows downward so the crest is negative.
func NewBobSequence(amplitude, frequency float64) *gween.Sequence {
	seq := gween.NewSequence()
	if amplitude == 0 || frequency <= 0 {
		seq.Add(gween.New(0, 0, 1, ease.Linear))
		return seq
	}

	quarter := float32(math.Pi / 2 / frequency)
	a := float32(amplitude)
	seq.Add(
		gween.New(0, -a, quarter, ease.OutSine),
		gween.New(-a, 0, quarter, ease.InSine),
		gween.New(0, a, quarter, ease.OutSine),
		gween.New(a, 0, quarter, ease.InSine),
	)
	return seq
}
