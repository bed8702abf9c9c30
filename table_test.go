package cmaptables

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"
)

func grayRamp(name string) *FuncColormap {
	return NewFunc(name, func(t float64) colorful.Color {
		return colorful.Color{R: t, G: t, B: t}
	})
}

func TestLinspace(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{0, nil},
		{1, []float64{0}},
		{2, []float64{0, 1}},
		{5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, Linspace(0, 1, tc.n)); diff != "" {
			t.Errorf("Linspace(0, 1, %d) mismatch (-want +got):\n%s", tc.n, diff)
		}
	}

	ts := Linspace(0, 1, DefaultSampleCount)
	if len(ts) != DefaultSampleCount || ts[0] != 0 || ts[len(ts)-1] != 1 {
		t.Errorf("Expected %d points from 0 to 1, got %d points from %v to %v",
			DefaultSampleCount, len(ts), ts[0], ts[len(ts)-1])
	}
}

func TestBuildTableContinuous(t *testing.T) {
	jet := jetForTest(t)
	table, err := BuildTable(jet, 512)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if len(table.Colors) != 512 {
		t.Fatalf("Expected 512 colors, got %d", len(table.Colors))
	}
	if table.Colors[0] != QuantizeColor(jet.At(0)) {
		t.Errorf("First entry should be jet(0), got %v", table.Colors[0])
	}
	if table.Colors[511] != QuantizeColor(jet.At(1)) {
		t.Errorf("Last entry should be jet(1), got %v", table.Colors[511])
	}
}

func TestBuildTableSamplesContinuousAndLowercases(t *testing.T) {
	table, err := BuildTable(grayRamp("GrayRamp"), 3)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	want := Table{Name: "grayramp", Colors: []RGB{{0, 0, 0}, {128, 128, 128}, {255, 255, 255}}}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("Table mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTableListedIgnoresSampleCount(t *testing.T) {
	colors := []RGB{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}
	for _, n := range []int{0, 2, 512} {
		table, err := BuildTable(NewListed("l", colors), n)
		if err != nil {
			t.Fatalf("BuildTable(n=%d): %v", n, err)
		}
		if diff := cmp.Diff(colors, table.Colors); diff != "" {
			t.Errorf("n=%d: listed colors should be unchanged (-want +got):\n%s", n, diff)
		}
	}
}

func TestBuildTableSampleCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := BuildTable(grayRamp("g"), n); !errors.Is(err, ErrSampleCount) {
			t.Errorf("n=%d: expected ErrSampleCount, got %v", n, err)
		}
	}
}

type namedOnly string

func (n namedOnly) Name() string { return string(n) }

func TestBuildTableRejectsUnknownKind(t *testing.T) {
	if _, err := BuildTable(namedOnly("odd"), 8); !errors.Is(err, ErrInvalidColormap) {
		t.Errorf("Expected ErrInvalidColormap, got %v", err)
	}
}

func TestBuildTablesDuplicateNames(t *testing.T) {
	cms := []Colormap{
		grayRamp("Magma"),
		NewListed("other", []RGB{{1, 1, 1}}),
		grayRamp("MAGMA"),
	}
	tables, err := BuildTables(cms, 16)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}
	if tables != nil {
		t.Errorf("No tables should be built on error, got %d", len(tables))
	}
}

func TestBuildTablesInvalidName(t *testing.T) {
	for _, name := range []string{"2cool", "with-dash", "int", "float", "colormaps", ""} {
		_, err := BuildTables([]Colormap{grayRamp(name)}, 4)
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("%q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestBuildTablesDuplicateReportedBeforeInvalidName(t *testing.T) {
	cms := []Colormap{grayRamp("bad-name"), grayRamp("x"), grayRamp("X")}
	if _, err := BuildTables(cms, 4); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestBuildTablesOrder(t *testing.T) {
	cms := []Colormap{
		NewListed("Zeta", []RGB{{1, 2, 3}}),
		grayRamp("alpha"),
		NewListed("Mid", []RGB{{4, 5, 6}, {7, 8, 9}}),
	}
	tables, err := BuildTables(cms, 4)
	if err != nil {
		t.Fatalf("BuildTables: %v", err)
	}
	var names []string
	var sizes []int
	for _, table := range tables {
		names = append(names, table.Name)
		sizes = append(sizes, len(table.Colors))
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, names); diff != "" {
		t.Errorf("Table order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 4, 2}, sizes); diff != "" {
		t.Errorf("Table sizes mismatch (-want +got):\n%s", diff)
	}
}
