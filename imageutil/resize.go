package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for scaling.
type Interpolation int

const (
	// InterpolationNearest repeats source pixels. Strips scaled this way
	// show every table entry as a crisp band.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationCatmullRom uses Catmull-Rom, the highest quality
	// scaler in x/image/draw.
	InterpolationCatmullRom
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// ScaleInto scales all of src into the rectangle r of dst.
func ScaleInto(dst *RGBAImage, r image.Rectangle, src *RGBAImage, interp Interpolation) {
	interp.scaler().Scale(dst.RGBA, r, src.RGBA, src.Bounds(), draw.Src, nil)
}

// Resize returns src scaled to width x height.
func Resize(src *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	ScaleInto(dst, dst.Bounds(), src, interp)
	return dst
}
