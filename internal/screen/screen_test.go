package screen

import (
	"testing"

	"inputtap/pkg/input"
)

func TestSingleScreenLayout(t *testing.T) {
	l := NewLayout([]input.Screen{
		{Number: 0, X: 0, Y: 0, Width: 1920, Height: 1080},
	})

	if left, top := l.Offset(); left != 0 || top != 0 {
		t.Errorf("offset = (%d,%d), want (0,0)", left, top)
	}
	if w, h := l.Size(); w != 1920 || h != 1080 {
		t.Errorf("size = (%d,%d), want (1920,1080)", w, h)
	}

	if x, y := l.Normalize(0, 0); x != 0 || y != 0 {
		t.Errorf("origin normalized to (%d,%d)", x, y)
	}
	if x, y := l.Normalize(1920, 1080); x != AbsoluteMax || y != AbsoluteMax {
		t.Errorf("far corner normalized to (%d,%d)", x, y)
	}
	// Center rounds to the middle of the space.
	x, y := l.Normalize(960, 540)
	if x < AbsoluteMax/2-1 || x > AbsoluteMax/2+1 || y < AbsoluteMax/2-1 || y > AbsoluteMax/2+1 {
		t.Errorf("center normalized to (%d,%d)", x, y)
	}
}

// A monitor left of and above the primary puts the virtual desktop
// origin in negative space; (0,0) of the normalized space must be the
// top-left of that monitor, not of the primary.
func TestNegativeOriginNormalization(t *testing.T) {
	l := NewLayout([]input.Screen{
		{Number: 0, X: 0, Y: 0, Width: 1920, Height: 1080},
		{Number: 1, X: -1280, Y: -1024, Width: 1280, Height: 1024},
	})

	left, top := l.Offset()
	if left != -1280 || top != -1024 {
		t.Fatalf("offset = (%d,%d), want (-1280,-1024)", left, top)
	}
	if w, h := l.Size(); w != 3200 || h != 2104 {
		t.Fatalf("size = (%d,%d), want (3200,2104)", w, h)
	}

	if x, y := l.Normalize(-1280, -1024); x != 0 || y != 0 {
		t.Errorf("virtual top-left normalized to (%d,%d), want (0,0)", x, y)
	}
	if x, y := l.Normalize(1920, 1080); x != AbsoluteMax || y != AbsoluteMax {
		t.Errorf("virtual bottom-right normalized to (%d,%d)", x, y)
	}
	// The primary's origin sits partway into the space.
	if x, _ := l.Normalize(0, 0); x != mulDiv(1280, AbsoluteMax, 3200) {
		t.Errorf("primary origin x = %d", x)
	}
}

func TestNormalizeDegenerateLayout(t *testing.T) {
	l := NewLayout(nil)
	if x, y := l.Normalize(100, 100); x != 0 || y != 0 {
		t.Errorf("empty layout normalized to (%d,%d)", x, y)
	}
}

func TestMulDivRounds(t *testing.T) {
	if got := mulDiv(1, 3, 2); got != 2 {
		t.Errorf("mulDiv(1,3,2) = %d, want 2", got)
	}
	if got := mulDiv(-1, 3, 2); got != -2 {
		t.Errorf("mulDiv(-1,3,2) = %d, want -2", got)
	}
	if got := mulDiv(5, 0, 7); got != 0 {
		t.Errorf("mulDiv(5,0,7) = %d, want 0", got)
	}
}
