package cmaptables

import (
	"errors"
	"fmt"
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/cmaptables/imageutil"
)

// PreviewOptions controls the layout of a preview image.
type PreviewOptions struct {
	StripWidth    int // width every table is scaled to
	RowHeight     int
	Padding       int
	Font          *truetype.Font // nil draws no labels
	FontSize      float64
	Interpolation imageutil.Interpolation
	Background    RGB
	Foreground    RGB
}

// DefaultPreviewOptions returns 512 pixel wide strips, 24 pixels high,
// labelled in 12 point Go Regular.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		StripWidth:    512,
		RowHeight:     24,
		Padding:       4,
		Font:          mustLoadFont(""),
		FontSize:      12,
		Interpolation: imageutil.InterpolationNearest,
		Background:    RGB{255, 255, 255},
		Foreground:    RGB{0, 0, 0},
	}
}

// RenderPreview draws one horizontal strip per table, top to bottom in
// table order, with the table name to the left of its strip.
func RenderPreview(tables []Table, opts PreviewOptions) (*imageutil.RGBAImage, error) {
	if opts.StripWidth <= 0 || opts.RowHeight <= 0 {
		return nil, errors.New("preview strips need a positive width and height")
	}
	if len(tables) == 0 {
		return nil, errors.New("no tables to preview")
	}

	var face font.Face
	labelWidth := 0
	if opts.Font != nil {
		face = newFace(opts.Font, opts.FontSize)
		defer face.Close()
		for _, table := range tables {
			if w := font.MeasureString(face, table.Name).Ceil(); w > labelWidth {
				labelWidth = w
			}
		}
		labelWidth += 2 * opts.Padding
	}

	width := labelWidth + opts.StripWidth + opts.Padding
	height := len(tables)*opts.RowHeight + opts.Padding
	img := imageutil.NewRGBAImage(width, height)
	img.Fill(img.Bounds(), toImageRGB(opts.Background))

	var ctx *freetype.Context
	baseline := 0
	if face != nil {
		ctx = freetype.NewContext()
		ctx.SetDPI(72)
		ctx.SetFont(opts.Font)
		ctx.SetFontSize(opts.FontSize)
		ctx.SetClip(img.Bounds())
		ctx.SetDst(img.RGBA)
		ctx.SetSrc(image.NewUniform(toImageRGB(opts.Foreground).ToColor()))
		ctx.SetHinting(font.HintingFull)

		metrics := face.Metrics()
		ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
		baseline = (opts.RowHeight-opts.Padding+ascent-descent)/2 + opts.Padding
	}

	for i, table := range tables {
		top := i * opts.RowHeight
		strip := image.Rect(labelWidth, top+opts.Padding,
			labelWidth+opts.StripWidth, top+opts.RowHeight)
		if len(table.Colors) > 0 {
			imageutil.ScaleInto(img, strip, imageutil.NewStrip(toImageRGBs(table.Colors)), opts.Interpolation)
		}
		if ctx != nil {
			if _, err := ctx.DrawString(table.Name, fixed.P(opts.Padding, top+baseline)); err != nil {
				return nil, fmt.Errorf("failed to draw label %q: %w", table.Name, err)
			}
		}
	}
	return img, nil
}

// SavePreview renders tables and saves the image, choosing the format
// from the file extension.
func SavePreview(tables []Table, path string, opts PreviewOptions) error {
	img, err := RenderPreview(tables, opts)
	if err != nil {
		return err
	}
	return imageutil.SaveImage(img.RGBA, path)
}

func toImageRGB(c RGB) imageutil.RGB {
	return imageutil.RGB{R: c.R, G: c.G, B: c.B}
}

func toImageRGBs(colors []RGB) []imageutil.RGB {
	out := make([]imageutil.RGB, len(colors))
	for i, c := range colors {
		out[i] = toImageRGB(c)
	}
	return out
}
