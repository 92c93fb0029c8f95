package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"

	"github.com/genjam/platformer/config"
	"github.com/genjam/platformer/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevel parses one of the embedded TMX levels.
func LoadLevel(path string) (*leveldata.Level, error) {
	return leveldata.Load(assetFS, path)
}

// MustLoadLevel is LoadLevel for levels that ship with the binary.
func MustLoadLevel(path string) *leveldata.Level {
	level, err := LoadLevel(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", path, err))
	}
	return level
}

// LevelNames lists the embedded levels in name order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, "levels")
	return names, err
}

// SpriteLoader generates placeholder sprite sheets and caches them together
// with their frame sub-images.
type SpriteLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// Sheet returns the sprite sheet for a character state, generating it on
// first use. Frames are laid out horizontally.
func (l *SpriteLoader) Sheet(key string, state config.StateID, frameW, frameH int) *ebiten.Image {
	path := fmt.Sprintf("%s/%s", key, state.String())
	if img, ok := l.cache[path]; ok {
		return img
	}

	frames := 1
	if def, ok := config.CharacterAnimations[key][state]; ok {
		frames = def.Last + 1
	}

	img := generateSheet(key, state, frames, frameW, frameH)
	l.cache[path] = img
	return img
}

// Frame returns a cached sub-image for a specific animation frame.
// This prevents creating duplicate *ebiten.Image structs for the same frame.
func (l *SpriteLoader) Frame(key string, state config.StateID, frameIndex, frameW, frameH int) *ebiten.Image {
	cacheKey := fmt.Sprintf("%s/%s/%d", key, state.String(), frameIndex)
	if img, ok := l.frameCache[cacheKey]; ok {
		return img
	}

	sheet := l.Sheet(key, state, frameW, frameH)
	sx := frameIndex * frameW
	frame := sheet.SubImage(image.Rect(sx, 0, sx+frameW, frameH)).(*ebiten.Image)
	l.frameCache[cacheKey] = frame
	return frame
}

// Solid returns a cached single-colour rectangle.
func (l *SpriteLoader) Solid(w, h int, c color.Color) *ebiten.Image {
	r, g, b, a := c.RGBA()
	key := fmt.Sprintf("solid/%dx%d/%d-%d-%d-%d", w, h, r, g, b, a)
	if img, ok := l.cache[key]; ok {
		return img
	}

	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(c)
	l.cache[key] = img
	return img
}

// Band returns a seamlessly repeating hill silhouette used by the parallax
// layers. The pattern repeats a whole number of times across w.
func (l *SpriteLoader) Band(w, h int, c color.Color, hills int) *ebiten.Image {
	r, g, b, a := c.RGBA()
	key := fmt.Sprintf("band/%dx%d/%d/%d-%d-%d-%d", w, h, hills, r, g, b, a)
	if img, ok := l.cache[key]; ok {
		return img
	}

	img := generateBand(w, h, c, hills)
	l.cache[key] = img
	return img
}

var loader = NewSpriteLoader()

// Sprites returns the shared sprite loader.
func Sprites() *SpriteLoader {
	return loader
}

// PreloadSprites generates every character sheet and frame up front so the
// first frames of play do not stall on texture uploads.
func PreloadSprites() {
	preloadCharacter("player", config.Player.FrameWidth, config.Player.FrameHeight)
	preloadCharacter("enemy", int(config.Enemy.Width), int(config.Enemy.Height))
}

func preloadCharacter(key string, frameW, frameH int) {
	for state, def := range config.CharacterAnimations[key] {
		step := def.Step
		if step <= 0 {
			step = 1
		}
		for i := def.First; i <= def.Last; i += step {
			_ = loader.Frame(key, state, i, frameW, frameH)
		}
	}
}
