package cmaptables

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownSource is returned when a selector names a source that is
	// not registered.
	ErrUnknownSource = errors.New("unknown colormap source")
	// ErrUnknownColormap is returned when a selector names a colormap its
	// source does not provide.
	ErrUnknownColormap = errors.New("unknown colormap")
)

// Source provides an ordered list of colormaps.
type Source interface {
	Name() string
	Colormaps() ([]Colormap, error)
}

// StaticSource serves a fixed list of colormaps.
type StaticSource struct {
	name      string
	colormaps []Colormap
}

// NewStaticSource creates a source that always returns cms.
func NewStaticSource(name string, cms ...Colormap) *StaticSource {
	return &StaticSource{name: name, colormaps: cms}
}

func (s *StaticSource) Name() string { return s.name }

func (s *StaticSource) Colormaps() ([]Colormap, error) {
	return append([]Colormap(nil), s.colormaps...), nil
}

// Registry holds named sources in registration order.
type Registry struct {
	sources *OrderedMap[string, Source]
}

// NewRegistry creates a registry with the given sources. Sources with a
// name already present are ignored.
func NewRegistry(sources ...Source) *Registry {
	r := &Registry{sources: NewOrderedMap[string, Source]()}
	for _, s := range sources {
		r.sources.SetNew(s.Name(), s)
	}
	return r
}

// Register adds a source, replacing any source of the same name while
// keeping its position.
func (r *Registry) Register(s Source) {
	r.sources.Set(s.Name(), s)
}

// Unregister removes a source.
func (r *Registry) Unregister(name string) {
	r.sources.Delete(name)
}

// Sources returns the names of the registered sources in order.
func (r *Registry) Sources() []string {
	return r.sources.Keys()
}

// Source returns the source registered under name.
func (r *Registry) Source(name string) (Source, error) {
	s, ok := r.sources.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return s, nil
}

// All returns every colormap of every source, sources in registration
// order.
func (r *Registry) All() ([]Colormap, error) {
	var all []Colormap
	for _, name := range r.sources.Keys() {
		cms, err := r.lookup(name, "")
		if err != nil {
			return nil, err
		}
		all = append(all, cms...)
	}
	return all, nil
}

// Select resolves selectors into an ordered colormap list. A selector is
// either a source name, selecting all of its colormaps, "all", selecting
// every registered colormap, or "source:colormap". Colormap names match
// case-insensitively; a name ending in "_r" that the source does not
// provide selects the reversed base colormap. Duplicates are kept so
// that table generation can reject them.
func (r *Registry) Select(selectors ...string) ([]Colormap, error) {
	var out []Colormap
	for _, sel := range selectors {
		sel = strings.TrimSpace(sel)
		if sel == "" {
			continue
		}
		if sel == "all" {
			all, err := r.All()
			if err != nil {
				return nil, err
			}
			out = append(out, all...)
			continue
		}
		source, name, _ := strings.Cut(sel, ":")
		cms, err := r.lookup(source, name)
		if err != nil {
			return nil, err
		}
		out = append(out, cms...)
	}
	return out, nil
}

func (r *Registry) lookup(source, name string) ([]Colormap, error) {
	s, err := r.Source(source)
	if err != nil {
		return nil, err
	}
	cms, err := s.Colormaps()
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", source, err)
	}
	if name == "" {
		return cms, nil
	}

	want := NormalizeName(name)
	for _, cm := range cms {
		if NormalizeName(cm.Name()) == want {
			return []Colormap{cm}, nil
		}
	}
	if base, ok := strings.CutSuffix(want, "_r"); ok {
		for _, cm := range cms {
			if NormalizeName(cm.Name()) == base {
				return []Colormap{Reversed(cm)}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s:%s", ErrUnknownColormap, source, name)
}
