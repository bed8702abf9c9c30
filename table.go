package cmaptables

import (
	"errors"
	"fmt"
)

// DefaultSampleCount is the number of points at which continuous
// colormaps are evaluated.
const DefaultSampleCount = 512

// ErrSampleCount is returned when continuous colormaps are sampled with
// fewer than two points.
var ErrSampleCount = errors.New("sample count must be at least 2")

// Table is the byte representation of one colormap, ready to be emitted.
type Table struct {
	Name   string
	Colors []RGB
}

// Linspace returns n evenly spaced values over [start, stop], both ends
// included. The last value is exactly stop.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Sample evaluates a continuous colormap at n evenly spaced points over
// [0,1] and quantizes the results.
func Sample(cm Continuous, n int) []RGB {
	ts := Linspace(0, 1, n)
	colors := make([]RGB, len(ts))
	for i, t := range ts {
		colors[i] = QuantizeColor(cm.At(t))
	}
	return colors
}

// BuildTable produces the table of a single colormap. Listed colormaps
// yield their colors unchanged; continuous colormaps are sampled at n
// points. The table is named after the lowercased colormap name.
func BuildTable(cm Colormap, n int) (Table, error) {
	name := NormalizeName(cm.Name())
	switch c := cm.(type) {
	case Listed:
		return Table{Name: name, Colors: append([]RGB(nil), c.Colors()...)}, nil
	case Continuous:
		if n < 2 {
			return Table{}, fmt.Errorf("%s: %w, got %d", name, ErrSampleCount, n)
		}
		return Table{Name: name, Colors: Sample(c, n)}, nil
	default:
		return Table{}, fmt.Errorf("%s: %w: %T is neither listed nor continuous",
			name, ErrInvalidColormap, cm)
	}
}

// BuildTables checks that names are unique and valid, then builds one
// table per colormap in input order. No table is built when validation
// fails.
func BuildTables(cms []Colormap, n int) ([]Table, error) {
	names, err := NormalizeNames(cms)
	if err != nil {
		return nil, err
	}
	tables := make([]Table, len(cms))
	for i, cm := range cms {
		table, err := BuildTable(cm, n)
		if err != nil {
			return nil, err
		}
		table.Name = names[i]
		tables[i] = table
	}
	return tables, nil
}
