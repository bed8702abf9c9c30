package cmaptables

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

//go:embed colordata/matplotlib.json
//go:embed colordata/colorbrewer.json
var f embed.FS

// BuiltinFiles lists the embedded colormap files in the order the
// builtin source reads them.
var BuiltinFiles = []string{"matplotlib", "colorbrewer"}

// colormapFile is the on-disk layout of a colormap JSON file.
type colormapFile struct {
	Colormaps []colormapDef `json:"colormaps"`
}

type colormapDef struct {
	Name string `json:"name"`
	// Kind is one of "listed", "segmented" or "gradient".
	Kind string `json:"kind"`

	// listed: hex strings, or normalized [r, g, b] triples
	Colors []string     `json:"colors,omitempty"`
	Values [][3]float64 `json:"values,omitempty"`

	// segmented: [x, y0, y1] anchors per channel; alpha is accepted and
	// ignored
	Red   [][3]float64 `json:"red,omitempty"`
	Green [][3]float64 `json:"green,omitempty"`
	Blue  [][3]float64 `json:"blue,omitempty"`
	Alpha [][3]float64 `json:"alpha,omitempty"`

	// gradient
	Keypoints []keypointDef `json:"keypoints,omitempty"`
}

type keypointDef struct {
	Color string  `json:"color"`
	Pos   float64 `json:"pos"`
}

// ReadColormapsFromJSON reads colormap definitions. The name is first
// looked up in the embedded colordata (without extension), then read
// from the filesystem as a path.
func ReadColormapsFromJSON(filename string) ([]Colormap, error) {
	var data []byte
	// First, try the VFS.
	template := "colordata/%s.json"
	data, vfsErr := f.ReadFile(fmt.Sprintf(template, filename))
	if vfsErr != nil {
		// If the VFS fails, try the filesystem.
		var fsErr error
		data, fsErr = os.ReadFile(filename)
		if fsErr != nil {
			return nil, fmt.Errorf("error reading file: %w", fsErr)
		}
	}
	return ParseColormaps(data)
}

// ParseColormaps decodes a colormap JSON document.
func ParseColormaps(data []byte) ([]Colormap, error) {
	var file colormapFile
	if jsonErr := json.Unmarshal(data, &file); jsonErr != nil {
		return nil, fmt.Errorf("error unmarshalling JSON: %w", jsonErr)
	}

	cms := make([]Colormap, 0, len(file.Colormaps))
	for i, def := range file.Colormaps {
		if def.Name == "" {
			return nil, fmt.Errorf("colormap %d: %w: missing name", i, ErrInvalidColormap)
		}
		cm, err := def.build()
		if err != nil {
			return nil, err
		}
		cms = append(cms, cm)
	}
	return cms, nil
}

func (def colormapDef) build() (Colormap, error) {
	switch strings.ToLower(def.Kind) {
	case "listed":
		if len(def.Values) > 0 {
			colors := make([]colorful.Color, len(def.Values))
			for i, v := range def.Values {
				colors[i] = colorful.Color{R: v[0], G: v[1], B: v[2]}
			}
			return NewListedFloat(def.Name, colors), nil
		}
		colors := make([]RGB, len(def.Colors))
		for i, hexColor := range def.Colors {
			rgb, err := parseHexRGB(hexColor)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", def.Name, err)
			}
			colors[i] = rgb
		}
		return NewListed(def.Name, colors), nil
	case "segmented":
		return NewSegmented(def.Name,
			toSegment(def.Red), toSegment(def.Green), toSegment(def.Blue))
	case "gradient":
		kps := make([]Keypoint, len(def.Keypoints))
		for i, kp := range def.Keypoints {
			c, err := colorful.Hex(kp.Color)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid color %q: %w", def.Name, kp.Color, err)
			}
			kps[i] = Keypoint{Col: c, Pos: kp.Pos}
		}
		return NewGradient(def.Name, kps)
	default:
		return nil, fmt.Errorf("%s: %w: unknown kind %q", def.Name, ErrInvalidColormap, def.Kind)
	}
}

func toSegment(rows [][3]float64) Segment {
	seg := make(Segment, len(rows))
	for i, r := range rows {
		seg[i] = Anchor{X: r[0], Y0: r[1], Y1: r[2]}
	}
	return seg
}

// parseHexRGB converts "#rrggbb" (the "#" is optional) to an RGB color.
func parseHexRGB(hexColor string) (RGB, error) {
	hexColor = strings.TrimPrefix(hexColor, "#")
	if len(hexColor) != 6 {
		return RGB{}, fmt.Errorf("error parsing color %s: want 6 hex digits", hexColor)
	}
	colorUint, err := strconv.ParseUint(hexColor, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("error parsing color %s: %w", hexColor, err)
	}
	return rgbFromUint32(uint32(colorUint)), nil
}

// JSONSource reads colormaps from one or more colormap JSON files, in
// order. Each entry is either an embedded file name or a path.
type JSONSource struct {
	name  string
	files []string
}

// NewJSONSource creates a source backed by the given files.
func NewJSONSource(name string, files ...string) *JSONSource {
	return &JSONSource{name: name, files: files}
}

// NewBuiltinSource returns the source named "builtin" serving the
// embedded colormaps.
func NewBuiltinSource() *JSONSource {
	return NewJSONSource("builtin", BuiltinFiles...)
}

func (s *JSONSource) Name() string { return s.name }

func (s *JSONSource) Colormaps() ([]Colormap, error) {
	var all []Colormap
	for _, file := range s.files {
		cms, err := ReadColormapsFromJSON(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(file), err)
		}
		all = append(all, cms...)
	}
	return all, nil
}
