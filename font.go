package cmaptables

import (
	"fmt"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont parses a TrueType font from path. An empty path selects the
// embedded Go Regular font.
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes := goregular.TTF
	if path != "" {
		var err error
		fontBytes, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", path, err)
	}
	return ttf, nil
}

// mustLoadFont is like LoadFont but panics on error. It is meant for the
// embedded font, which always parses.
func mustLoadFont(path string) *truetype.Font {
	ttf, err := LoadFont(path)
	if err != nil {
		panic(err)
	}
	return ttf
}

// newFace creates a face for measuring labels at the given size.
func newFace(ttf *truetype.Font, size float64) font.Face {
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
