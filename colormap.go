package cmaptables

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColormap is returned when a colormap definition cannot be
// evaluated, e.g. a segment without anchors at 0 and 1.
var ErrInvalidColormap = errors.New("invalid colormap")

// Colormap is a named mapping from a scalar to an RGB color. Every
// Colormap is either Listed or Continuous.
type Colormap interface {
	Name() string
}

// Listed is a colormap defined by an explicit ordered list of colors.
// Its table is the list itself, independent of the sample count.
type Listed interface {
	Colormap
	Colors() []RGB
}

// Continuous is a colormap defined on [0,1]. Its table is produced by
// evaluating At at evenly spaced points.
type Continuous interface {
	Colormap
	At(t float64) colorful.Color
}

// ListedColormap holds byte-valued colors in order.
type ListedColormap struct {
	name   string
	colors []RGB
}

// NewListed creates a listed colormap from byte-valued colors. The
// colors are emitted unchanged.
func NewListed(name string, colors []RGB) *ListedColormap {
	return &ListedColormap{name: name, colors: append([]RGB(nil), colors...)}
}

// NewListedFloat creates a listed colormap from normalized colors,
// quantizing each channel.
func NewListedFloat(name string, colors []colorful.Color) *ListedColormap {
	rgb := make([]RGB, len(colors))
	for i, c := range colors {
		rgb[i] = QuantizeColor(c)
	}
	return &ListedColormap{name: name, colors: rgb}
}

func (l *ListedColormap) Name() string  { return l.name }
func (l *ListedColormap) Colors() []RGB { return l.colors }

// Anchor is one row of a segmented channel: at position X the channel
// approaches Y0 from the left and leaves with Y1 to the right.
type Anchor struct {
	X, Y0, Y1 float64
}

// Segment is the anchor list of a single channel, sorted by X, starting
// at 0 and ending at 1.
type Segment []Anchor

func (s Segment) validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: segment needs at least 2 anchors, got %d",
			ErrInvalidColormap, len(s))
	}
	if s[0].X != 0 || s[len(s)-1].X != 1 {
		return fmt.Errorf("%w: segment must start at 0 and end at 1",
			ErrInvalidColormap)
	}
	for i := 1; i < len(s); i++ {
		if s[i].X < s[i-1].X {
			return fmt.Errorf("%w: anchor %d at %v precedes anchor %d at %v",
				ErrInvalidColormap, i, s[i].X, i-1, s[i-1].X)
		}
	}
	return nil
}

// at linearly interpolates between the Y1 of the anchor left of t and
// the Y0 of the first anchor at or right of t. Exactly at an interior
// anchor the result is its Y0.
func (s Segment) at(t float64) float64 {
	n := len(s)
	if t <= s[0].X {
		return s[0].Y1
	}
	if t >= s[n-1].X {
		return s[n-1].Y0
	}
	i := sort.Search(n, func(i int) bool { return s[i].X >= t })
	lo, hi := s[i-1], s[i]
	f := (t - lo.X) / (hi.X - lo.X)
	return lo.Y1 + f*(hi.Y0-lo.Y1)
}

// SegmentedColormap is a continuous colormap defined by independent
// piecewise linear red, green and blue channels.
type SegmentedColormap struct {
	name             string
	red, green, blue Segment
}

// NewSegmented validates the three channel segments and creates a
// segmented colormap.
func NewSegmented(name string, red, green, blue Segment) (*SegmentedColormap, error) {
	channels := []struct {
		name string
		seg  Segment
	}{{"red", red}, {"green", green}, {"blue", blue}}
	for _, ch := range channels {
		if err := ch.seg.validate(); err != nil {
			return nil, fmt.Errorf("%s %s: %w", name, ch.name, err)
		}
	}
	return &SegmentedColormap{name: name, red: red, green: green, blue: blue}, nil
}

func (s *SegmentedColormap) Name() string { return s.name }

func (s *SegmentedColormap) At(t float64) colorful.Color {
	return colorful.Color{R: s.red.at(t), G: s.green.at(t), B: s.blue.at(t)}
}

// Keypoint is a gradient stop. Pos lies within [0,1].
type Keypoint struct {
	Col colorful.Color
	Pos float64
}

// GradientColormap blends between sorted keypoints in HCL space.
type GradientColormap struct {
	name      string
	keypoints []Keypoint
}

// NewGradient creates a gradient colormap. Keypoints are sorted by
// position; at least two are required.
func NewGradient(name string, keypoints []Keypoint) (*GradientColormap, error) {
	if len(keypoints) < 2 {
		return nil, fmt.Errorf("%s: %w: need at least two gradient keypoints",
			name, ErrInvalidColormap)
	}
	kps := append([]Keypoint(nil), keypoints...)
	for _, kp := range kps {
		if kp.Pos < 0 || kp.Pos > 1 {
			return nil, fmt.Errorf("%s: %w: keypoint position %v outside [0,1]",
				name, ErrInvalidColormap, kp.Pos)
		}
	}
	sort.SliceStable(kps, func(i, j int) bool { return kps[i].Pos < kps[j].Pos })
	return &GradientColormap{name: name, keypoints: kps}, nil
}

func (g *GradientColormap) Name() string { return g.name }

// At returns the HCL blend of the two keypoints around t.
func (g *GradientColormap) At(t float64) colorful.Color {
	kps := g.keypoints
	if t <= kps[0].Pos {
		return kps[0].Col
	}
	for i := 0; i < len(kps)-1; i++ {
		c1, c2 := kps[i], kps[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return c2.Col
			}
			u := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Col.BlendHcl(c2.Col, u).Clamped()
		}
	}
	// At or past the last keypoint.
	return kps[len(kps)-1].Col
}

// FuncColormap wraps an arbitrary function as a continuous colormap.
type FuncColormap struct {
	name string
	fn   func(t float64) colorful.Color
}

// NewFunc creates a continuous colormap backed by fn.
func NewFunc(name string, fn func(t float64) colorful.Color) *FuncColormap {
	return &FuncColormap{name: name, fn: fn}
}

func (f *FuncColormap) Name() string                { return f.name }
func (f *FuncColormap) At(t float64) colorful.Color { return f.fn(t) }

// Reversed returns cm traversed from 1 to 0, named with an "_r" suffix.
func Reversed(cm Colormap) Colormap {
	name := cm.Name() + "_r"
	switch c := cm.(type) {
	case Listed:
		src := c.Colors()
		colors := make([]RGB, len(src))
		for i, rgb := range src {
			colors[len(src)-1-i] = rgb
		}
		return &ListedColormap{name: name, colors: colors}
	case Continuous:
		return NewFunc(name, func(t float64) colorful.Color { return c.At(1 - t) })
	}
	return cm
}
