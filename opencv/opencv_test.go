package opencv

import (
	"errors"
	"strings"
	"testing"

	"gocv.io/x/gocv"

	"github.com/wbrown/cmaptables"
)

func TestRgbFromVecb(t *testing.T) {
	got := rgbFromVecb(gocv.Vecb{3, 2, 1})
	if got != (cmaptables.RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("Expected BGR to be swapped to RGB, got %v", got)
	}
}

func TestSourceColormaps(t *testing.T) {
	cms, err := NewSource().Colormaps()
	if err != nil {
		t.Fatalf("Colormaps: %v", err)
	}
	if len(cms) != len(Colormaps) {
		t.Fatalf("Expected %d colormaps, got %d", len(Colormaps), len(cms))
	}
	for i, cm := range cms {
		if !strings.HasPrefix(cm.Name(), Prefix) {
			t.Errorf("Colormap %s lacks the %s prefix", cm.Name(), Prefix)
		}
		if cm.Name() != Prefix+Colormaps[i].Name {
			t.Errorf("Colormap %d: expected %s, got %s", i, Prefix+Colormaps[i].Name, cm.Name())
		}
		listed, ok := cm.(cmaptables.Listed)
		if !ok {
			t.Fatalf("%s should be listed, got %T", cm.Name(), cm)
		}
		if n := len(listed.Colors()); n != 256 {
			t.Errorf("%s: expected 256 entries, got %d", cm.Name(), n)
		}
	}
}

func TestJetRunsBlueToRed(t *testing.T) {
	ramp := gocv.NewMatWithSize(1, 256, gocv.MatTypeCV8U)
	defer ramp.Close()
	for i := 0; i < 256; i++ {
		ramp.SetUCharAt(0, i, uint8(i))
	}
	lut := LookupTable(ramp, gocv.ColormapJet)
	first, last := lut[0], lut[len(lut)-1]
	if first.B <= first.R || first.B <= first.G {
		t.Errorf("jet should start blue, got %v", first)
	}
	if last.R <= last.G || last.R <= last.B {
		t.Errorf("jet should end red, got %v", last)
	}
}

func TestTablesIgnoreSampleCount(t *testing.T) {
	registry := cmaptables.NewRegistry(cmaptables.NewBuiltinSource(), NewSource())
	cms, err := registry.Select("builtin", "opencv")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	tables, err := cmaptables.BuildTables(cms, 512)
	if err != nil {
		t.Fatalf("OpenCV names should not clash with builtin names: %v", err)
	}
	for _, table := range tables {
		if strings.HasPrefix(table.Name, Prefix) && len(table.Colors) != 256 {
			t.Errorf("%s: expected 256 entries, got %d", table.Name, len(table.Colors))
		}
	}

	// Without the prefix, cv jet and builtin jet collide.
	jet := cmaptables.NewListed("JET", make([]cmaptables.RGB, 256))
	cms = append(cms, jet)
	if _, err := cmaptables.BuildTables(cms, 512); !errors.Is(err, cmaptables.ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}
