package cmaptables

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/template"
)

// Generator turns colormaps into C source text. The zero value is not
// usable; create one with NewGenerator.
type Generator struct {
	// SampleCount is the number of points continuous colormaps are
	// evaluated at.
	SampleCount int
	// Guard, when set, wraps the output in an include guard of that name
	// and includes <stdint.h>.
	Guard string
	// CountMacro emits a fallback definition of COUNT before the index
	// arrays.
	CountMacro bool
}

// GeneratorOption is a functional option for configuring a Generator.
type GeneratorOption func(*Generator)

// NewGenerator creates a Generator. By default continuous colormaps are
// sampled at DefaultSampleCount points and no guard or COUNT definition
// is emitted, matching plain table output meant to be redirected into a
// header file.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		SampleCount: DefaultSampleCount,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithSampleCount sets the number of samples for continuous colormaps.
func WithSampleCount(n int) GeneratorOption {
	return func(g *Generator) {
		g.SampleCount = n
	}
}

// WithGuard wraps the output in an include guard.
func WithGuard(guard string) GeneratorOption {
	return func(g *Generator) {
		g.Guard = guard
	}
}

// WithCountMacro emits "#define COUNT" unless the includer defined it.
func WithCountMacro(enabled bool) GeneratorOption {
	return func(g *Generator) {
		g.CountMacro = enabled
	}
}

// Tables validates names and builds the table of every colormap.
func (g *Generator) Tables(cms []Colormap) ([]Table, error) {
	return BuildTables(cms, g.SampleCount)
}

var indexTemplate = template.Must(template.New("index").Parse(`
    const uint8_t* colormaps[] = { {{- range $i, $n := .}}{{if $i}}, {{end}}{{$n}}{{end -}} };
    const char* colormap_names[] = { {{- range $i, $n := .}}{{if $i}}, {{end}}"{{$n}}"{{end -}} };
    const int colormap_sizes[] = { {{- range $i, $n := .}}{{if $i}}, {{end}}COUNT({{$n}}){{end -}} };
`))

// WriteC writes the C declarations of tables to w. Each table becomes a
// uint8_t array with one color per line; three index arrays follow. The
// text is assembled in memory and written in a single call, so nothing
// reaches w when formatting fails.
func (g *Generator) WriteC(w io.Writer, tables []Table) error {
	if g.Guard != "" && !isCIdentifier(g.Guard) {
		return fmt.Errorf("include guard: %w: %q", ErrInvalidName, g.Guard)
	}

	var buf bytes.Buffer
	if g.Guard != "" {
		fmt.Fprintf(&buf, "#ifndef %s\n#define %s\n\n#include <stdint.h>\n", g.Guard, g.Guard)
	}

	names := make([]string, len(tables))
	for i, table := range tables {
		names[i] = table.Name
		writeTable(&buf, table)
	}

	if g.CountMacro {
		buf.WriteString("\n#ifndef COUNT\n#define COUNT(a) (sizeof(a) / sizeof((a)[0]))\n#endif\n")
	}
	if err := indexTemplate.Execute(&buf, names); err != nil {
		return fmt.Errorf("error formatting index arrays: %w", err)
	}
	if g.Guard != "" {
		fmt.Fprintf(&buf, "\n#endif /* %s */\n", g.Guard)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// writeTable appends one array declaration:
//
//	<blank line>
//	const uint8_t name[] = {
//	    r, g, b,
//	    r, g, b
//	};
//	<blank line>
func writeTable(buf *bytes.Buffer, table Table) {
	buf.WriteString("\nconst uint8_t ")
	buf.WriteString(table.Name)
	buf.WriteString("[] = {\n")
	var num []byte
	for i, c := range table.Colors {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString("    ")
		for j, v := range [3]uint8{c.R, c.G, c.B} {
			if j > 0 {
				buf.WriteString(", ")
			}
			num = strconv.AppendUint(num[:0], uint64(v), 10)
			buf.Write(num)
		}
	}
	buf.WriteString("\n};\n\n")
}

// Render builds the tables of cms and writes them as C source to w. It
// returns the tables so callers can reuse them, e.g. for a preview.
func (g *Generator) Render(w io.Writer, cms []Colormap) ([]Table, error) {
	tables, err := g.Tables(cms)
	if err != nil {
		return nil, err
	}
	if err := g.WriteC(w, tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// RenderColormapTables returns the C source text for cms, sampling
// continuous colormaps at n points. It fails without producing any text
// when two colormaps share a lowercased name.
func RenderColormapTables(cms []Colormap, n int) (string, error) {
	var buf bytes.Buffer
	if _, err := NewGenerator(WithSampleCount(n)).Render(&buf, cms); err != nil {
		return "", err
	}
	return buf.String(), nil
}
