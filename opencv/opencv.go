// Package opencv exposes the colormaps built into OpenCV as a colormap
// source. OpenCV stores every colormap as a 256 entry lookup table, so
// the colormaps are listed and their tables have 256 entries regardless
// of the sample count.
package opencv

import (
	"gocv.io/x/gocv"

	"github.com/wbrown/cmaptables"
)

// Prefix is prepended to every colormap name. OpenCV and matplotlib both
// define bone, jet, hot and others, and the prefix keeps the two apart
// in one table set.
const Prefix = "cv_"

// Colormaps lists the OpenCV colormaps served by the source, in order.
var Colormaps = []struct {
	Name string
	Type gocv.ColormapTypes
}{
	{"autumn", gocv.ColormapAutumn},
	{"bone", gocv.ColormapBone},
	{"jet", gocv.ColormapJet},
	{"winter", gocv.ColormapWinter},
	{"rainbow", gocv.ColormapRainbow},
	{"ocean", gocv.ColormapOcean},
	{"summer", gocv.ColormapSummer},
	{"spring", gocv.ColormapSpring},
	{"cool", gocv.ColormapCool},
	{"hsv", gocv.ColormapHsv},
	{"pink", gocv.ColormapPink},
	{"hot", gocv.ColormapHot},
	{"parula", gocv.ColormapParula},
}

// Source reads colormaps out of OpenCV.
type Source struct{}

// NewSource returns the source named "opencv".
func NewSource() *Source {
	return &Source{}
}

func (*Source) Name() string { return "opencv" }

// Colormaps applies each OpenCV colormap to a 0..255 ramp and returns the
// resulting lookup tables.
func (*Source) Colormaps() ([]cmaptables.Colormap, error) {
	ramp := gocv.NewMatWithSize(1, 256, gocv.MatTypeCV8U)
	defer ramp.Close()
	for i := 0; i < 256; i++ {
		ramp.SetUCharAt(0, i, uint8(i))
	}

	cms := make([]cmaptables.Colormap, 0, len(Colormaps))
	for _, cm := range Colormaps {
		cms = append(cms, cmaptables.NewListed(Prefix+cm.Name, LookupTable(ramp, cm.Type)))
	}
	return cms, nil
}

// LookupTable applies colormap to a single row 8-bit Mat and returns one
// RGB color per column.
func LookupTable(ramp gocv.Mat, colormap gocv.ColormapTypes) []cmaptables.RGB {
	dst := gocv.NewMat()
	defer dst.Close()
	gocv.ApplyColorMap(ramp, &dst, colormap)

	lut := make([]cmaptables.RGB, dst.Cols())
	for x := range lut {
		lut[x] = rgbFromVecb(dst.GetVecbAt(0, x))
	}
	return lut
}

// rgbFromVecb converts a BGR gocv.Vecb to an RGB color
func rgbFromVecb(color gocv.Vecb) cmaptables.RGB {
	return cmaptables.RGB{
		R: color[2],
		G: color[1],
		B: color[0],
	}
}
