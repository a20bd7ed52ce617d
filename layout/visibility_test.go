package layout

import (
	"math"
	"testing"
)

func TestRemaining(t *testing.T) {
	tests := []struct {
		width int
		open  bool
		want  float64
	}{
		{1200, true, 289.6},
		{1300, true, 389.6},
		{1200, false, 589.6},
		{0, false, -610.4},
		{-50, true, -910.4},
	}
	for _, tt := range tests {
		got := Remaining(tt.width, tt.open)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Remaining(%d, %v) = %v, want %v", tt.width, tt.open, got, tt.want)
		}
	}
}

func TestShowAuxiliaryScenarios(t *testing.T) {
	if ShowAuxiliary(1200, true) {
		t.Error("1200px with sidebar open should hide the panel")
	}
	if !ShowAuxiliary(1300, true) {
		t.Error("1300px with sidebar open should show the panel")
	}
	if !ShowAuxiliary(1200, false) {
		t.Error("1200px with sidebar closed should show the panel")
	}
	if ShowAuxiliary(0, false) {
		t.Error("unmeasured viewport should hide the panel")
	}
}

func TestShowAuxiliaryMatchesThreshold(t *testing.T) {
	for _, open := range []bool{true, false} {
		prev := math.Inf(-1)
		for w := 0; w <= 2500; w += 7 {
			r := Remaining(w, open)
			if r < prev {
				t.Fatalf("Remaining decreased at width %d (open=%v)", w, open)
			}
			prev = r
			if got, want := ShowAuxiliary(w, open), r >= ContentThreshold; got != want {
				t.Fatalf("ShowAuxiliary(%d, %v) = %v, want %v", w, open, got, want)
			}
		}
	}
}

func TestIsMobile(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{0, false},
		{375, true},
		{767, true},
		{768, false},
		{1440, false},
	}
	for _, tt := range tests {
		if got := IsMobile(tt.width); got != tt.want {
			t.Errorf("IsMobile(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestViewportRecomputesOnlyOnDependencyChange(t *testing.T) {
	v := NewViewport()
	if v.ShowAuxiliary() {
		t.Fatal("new viewport should hide the panel")
	}

	v = v.Resize(1300)
	if v.Generation() != 1 || !v.ShowAuxiliary() {
		t.Fatalf("after resize: gen=%d show=%v", v.Generation(), v.ShowAuxiliary())
	}

	v = v.Resize(1300)
	v = v.SetSidebarOpen(false)
	if v.Generation() != 1 {
		t.Fatalf("unchanged dependencies recomputed: gen=%d", v.Generation())
	}

	v = v.SetSidebarOpen(true)
	if v.Generation() != 2 || !v.ShowAuxiliary() {
		t.Fatalf("after open: gen=%d show=%v", v.Generation(), v.ShowAuxiliary())
	}

	v = v.Resize(1200)
	if v.Generation() != 3 || v.ShowAuxiliary() {
		t.Fatalf("after shrink: gen=%d show=%v", v.Generation(), v.ShowAuxiliary())
	}
}

func TestViewportIsValue(t *testing.T) {
	a := NewViewport()
	b := a.Resize(1400)
	if a.Width() != 0 || b.Width() != 1400 {
		t.Fatalf("Resize mutated receiver: a=%d b=%d", a.Width(), b.Width())
	}
}

func TestRestoreViewport(t *testing.T) {
	v := RestoreViewport(1300, true)
	if !v.ShowAuxiliary() || v.Generation() != 0 {
		t.Fatalf("restore: show=%v gen=%d", v.ShowAuxiliary(), v.Generation())
	}
	if RestoreViewport(-3, false).Width() != 0 {
		t.Fatal("negative width should clamp to 0")
	}
}
