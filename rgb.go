package cmaptables

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. It is the element type of
// every emitted table.
type RGB struct {
	R, G, B uint8
}

// toUint32 packs an RGB color into a 32-bit unsigned integer (0xRRGGBB)
func (c RGB) toUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// rgbFromUint32 converts a 32-bit unsigned integer (0xRRGGBB) to an RGB
// color
func rgbFromUint32(color uint32) RGB {
	return RGB{
		R: uint8(color >> 16),
		G: uint8(color >> 8),
		B: uint8(color),
	}
}

// String returns the color as a #rrggbb hex string.
func (c RGB) String() string {
	return fmt.Sprintf("#%06x", c.toUint32())
}

// Quantize converts a normalized channel value to a byte as
// floor(v*255 + 0.5). Values outside [0,1] are clamped first, and NaN
// maps to 0.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Floor(v*255 + 0.5))
}

// QuantizeColor quantizes the three channels of a normalized color.
func QuantizeColor(c colorful.Color) RGB {
	return RGB{
		R: Quantize(c.R),
		G: Quantize(c.G),
		B: Quantize(c.B),
	}
}

// Normalized returns the color with channels scaled back to [0,1].
func (c RGB) Normalized() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
