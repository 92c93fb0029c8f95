package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Small   FontName = "small"
	Large   FontName = "large"
	Title   FontName = "title"
)

// Get returns the font.Face registered under f.
func (f FontName) Get() font.Face {
	return getFont(f)
}

// Text returns f wrapped for ebiten's text/v2 renderer.
func (f FontName) Text() text.Face {
	return text.NewGoXFace(getFont(f))
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bundled Go fonts at the sizes the HUD and menus use.
func LoadDefaults(small, regular, large, title float64) error {
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Small, goregular.TTF, small},
		{Regular, goregular.TTF, regular},
		{Bold, gobold.TTF, regular},
		{Large, gobold.TTF, large},
		{Title, gobold.TTF, title},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether name has been registered.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
