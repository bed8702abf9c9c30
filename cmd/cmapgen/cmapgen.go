package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/wbrown/cmaptables"
	"github.com/wbrown/cmaptables/opencv"
	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cmapgen: ")

	samples := flag.Int("n", cmaptables.DefaultSampleCount,
		"Number of samples for continuous colormaps")
	maps := flag.String("maps", "builtin",
		"Comma separated colormap selectors: source, source:name or all "+
			"(sources: builtin, opencv, file)")
	dataFiles := flag.String("data", "",
		"Comma separated colormap JSON files, served as source 'file'")
	outputFile := flag.String("output", "",
		"Path to save the C source (if not specified, prints to stdout)")
	guard := flag.String("guard", "",
		"Wrap the output in an include guard with this name")
	countMacro := flag.Bool("count-macro", false,
		"Emit a fallback COUNT macro definition")
	previewFile := flag.String("preview", "",
		"Path to save a preview image (.png, .jpg, .gif, .tif)")
	fontPath := flag.String("font", "",
		"TTF font for preview labels (default: Go Regular)")
	stripWidth := flag.Int("stripwidth", 512,
		"Width of each preview strip in pixels")
	list := flag.Bool("list", false,
		"List available colormaps and exit")
	flag.Parse()

	registry := cmaptables.NewRegistry(
		cmaptables.NewBuiltinSource(),
		opencv.NewSource(),
	)
	if *dataFiles != "" {
		registry.Register(cmaptables.NewJSONSource("file", splitList(*dataFiles)...))
	}

	if *list {
		if err := printColormaps(registry); err != nil {
			log.Fatalf("Error listing colormaps: %v", err)
		}
		return
	}

	begin := time.Now()
	cms, err := registry.Select(splitList(*maps)...)
	if err != nil {
		log.Fatalf("Error selecting colormaps: %v", err)
	}

	gen := cmaptables.NewGenerator(
		cmaptables.WithSampleCount(*samples),
		cmaptables.WithGuard(*guard),
		cmaptables.WithCountMacro(*countMacro),
	)
	var buf bytes.Buffer
	tables, err := gen.Render(&buf, cms)
	if err != nil {
		log.Fatalf("Error generating tables: %v", err)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, buf.Bytes(), 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", *outputFile, err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", *outputFile)
	} else {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr,
				"Writing C source to a terminal; redirect into a .h file or use -output")
		}
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	}

	if *previewFile != "" {
		opts := cmaptables.DefaultPreviewOptions()
		opts.StripWidth = *stripWidth
		if *fontPath != "" {
			ttf, err := cmaptables.LoadFont(*fontPath)
			if err != nil {
				log.Fatalf("Error loading font: %v", err)
			}
			opts.Font = ttf
		}
		if err := cmaptables.SavePreview(tables, *previewFile, opts); err != nil {
			log.Fatalf("Error writing preview: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Preview written to %s\n", *previewFile)
	}

	fmt.Fprintf(os.Stderr, "%d tables, %d samples per continuous colormap, %v\n",
		len(tables), *samples, time.Since(begin))
}

// printColormaps prints every source and the names of its colormaps.
func printColormaps(registry *cmaptables.Registry) error {
	for _, name := range registry.Sources() {
		source, err := registry.Source(name)
		if err != nil {
			return err
		}
		cms, err := source.Colormaps()
		if err != nil {
			return fmt.Errorf("source %s: %w", name, err)
		}
		names := make([]string, len(cms))
		for i, cm := range cms {
			kind := "continuous"
			if _, ok := cm.(cmaptables.Listed); ok {
				kind = "listed"
			}
			names[i] = fmt.Sprintf("%s (%s)", cmaptables.NormalizeName(cm.Name()), kind)
		}
		fmt.Printf("%s:\n    %s\n", name, strings.Join(names, "\n    "))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
