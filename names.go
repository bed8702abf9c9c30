package cmaptables

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrDuplicateName is returned when two colormaps share a name after
	// lowercasing.
	ErrDuplicateName = errors.New("duplicate colormap name")
	// ErrInvalidName is returned when a lowercased name cannot be used as
	// a C identifier.
	ErrInvalidName = errors.New("colormap name is not a C identifier")
)

// NormalizeName lowercases a colormap name. The result is used both as
// the C array identifier and as the string in the names index array.
func NormalizeName(name string) string {
	return cases.Lower(language.Und).String(name)
}

// isCIdentifier reports whether s is a valid C identifier made of ASCII
// letters, digits and underscores, not starting with a digit.
func isCIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return !cKeywords[s]
}

var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extern": true,
	"float": true, "for": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true,
	// Names the generated index arrays occupy.
	"colormaps": true, "colormap_names": true, "colormap_sizes": true,
}

// NormalizeNames lowercases the name of every colormap and checks that
// the results are unique and usable as C identifiers. The returned slice
// is parallel to cms.
func NormalizeNames(cms []Colormap) ([]string, error) {
	names := make([]string, len(cms))
	seen := NewOrderedMap[string, int]()
	for i, cm := range cms {
		name := NormalizeName(cm.Name())
		if !seen.SetNew(name, i) {
			first, _ := seen.Get(name)
			return nil, fmt.Errorf("%w: %q (colormap %d, %q) collides with colormap %d",
				ErrDuplicateName, name, i, cm.Name(), first)
		}
		names[i] = name
	}
	// Uniqueness is checked over the whole list first so a duplicate is
	// always reported as such.
	for _, name := range names {
		if !isCIdentifier(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return names, nil
}
