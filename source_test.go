package cmaptables

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type failingSource struct{}

func (failingSource) Name() string { return "broken" }
func (failingSource) Colormaps() ([]Colormap, error) {
	return nil, errors.New("no data")
}

func names(cms []Colormap) []string {
	out := make([]string, len(cms))
	for i, cm := range cms {
		out[i] = cm.Name()
	}
	return out
}

func testRegistry() *Registry {
	return NewRegistry(
		NewStaticSource("one", NewListed("Red", []RGB{{255, 0, 0}}), grayRamp("Gray")),
		NewStaticSource("two", grayRamp("Ramp")),
	)
}

func TestRegistrySelect(t *testing.T) {
	r := testRegistry()
	tests := []struct {
		selectors []string
		want      []string
	}{
		{[]string{"one"}, []string{"Red", "Gray"}},
		{[]string{"two", "one:red"}, []string{"Ramp", "Red"}},
		{[]string{"all"}, []string{"Red", "Gray", "Ramp"}},
		{[]string{" one:GRAY ", ""}, []string{"Gray"}},
		{[]string{"one:gray_r"}, []string{"Gray_r"}},
		{[]string{"one", "one:red"}, []string{"Red", "Gray", "Red"}},
	}
	for _, tc := range tests {
		cms, err := r.Select(tc.selectors...)
		if err != nil {
			t.Errorf("Select(%q): %v", tc.selectors, err)
			continue
		}
		if diff := cmp.Diff(tc.want, names(cms)); diff != "" {
			t.Errorf("Select(%q) mismatch (-want +got):\n%s", tc.selectors, diff)
		}
	}
}

func TestRegistrySelectErrors(t *testing.T) {
	r := testRegistry()
	if _, err := r.Select("three"); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("Expected ErrUnknownSource, got %v", err)
	}
	if _, err := r.Select("one:blue"); !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("Expected ErrUnknownColormap, got %v", err)
	}
	r.Register(failingSource{})
	if _, err := r.Select("broken"); err == nil {
		t.Error("Expected the source error to propagate")
	}
	if _, err := r.All(); err == nil {
		t.Error("Expected All to fail with a broken source")
	}
}

func TestRegistryDuplicatesReachTableBuilding(t *testing.T) {
	r := testRegistry()
	cms, err := r.Select("one", "one:red")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := BuildTables(cms, 4); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestRegistryRegisterAndUnregister(t *testing.T) {
	r := testRegistry()
	r.Register(NewStaticSource("one", grayRamp("Replaced")))
	r.Register(NewStaticSource("three"))
	if diff := cmp.Diff([]string{"one", "two", "three"}, r.Sources()); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}
	cms, err := r.Select("one")
	if err != nil || len(cms) != 1 || cms[0].Name() != "Replaced" {
		t.Errorf("Expected the replaced source, got %v, %v", names(cms), err)
	}

	r.Unregister("two")
	if _, err := r.Source("two"); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("Expected ErrUnknownSource after unregistering, got %v", err)
	}
}
