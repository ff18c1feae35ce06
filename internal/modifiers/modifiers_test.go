package modifiers

import (
	"testing"

	"inputtap/pkg/input"
)

func TestHoldModifiersSetAndClear(t *testing.T) {
	tr := NewTracker(0)

	tr.KeyDown(input.VcShiftL)
	if tr.Current() != input.MaskShiftL {
		t.Errorf("after shift-l down: got %v, want shift-l", tr.Current())
	}

	tr.KeyDown(input.VcControlR)
	want := input.MaskShiftL | input.MaskCtrlR
	if tr.Current() != want {
		t.Errorf("after ctrl-r down: got %v, want %v", tr.Current(), want)
	}

	tr.KeyUp(input.VcShiftL)
	if tr.Current() != input.MaskCtrlR {
		t.Errorf("after shift-l up: got %v, want ctrl-r", tr.Current())
	}

	tr.KeyUp(input.VcControlR)
	if tr.Current() != 0 {
		t.Errorf("after all released: got %v, want none", tr.Current())
	}
}

func TestLockKeysToggleOnPressOnly(t *testing.T) {
	tr := NewTracker(0)

	tr.KeyDown(input.VcCapsLock)
	if tr.Current()&input.MaskCapsLock == 0 {
		t.Error("caps lock press should set the lock bit")
	}

	// Release must not change lock state.
	tr.KeyUp(input.VcCapsLock)
	if tr.Current()&input.MaskCapsLock == 0 {
		t.Error("caps lock release cleared the lock bit")
	}

	tr.KeyDown(input.VcCapsLock)
	if tr.Current()&input.MaskCapsLock != 0 {
		t.Error("second caps lock press should clear the lock bit")
	}
}

func TestButtonBits(t *testing.T) {
	tr := NewTracker(0)

	tr.ButtonDown(input.Button1)
	tr.ButtonDown(input.Button5)
	want := input.MaskButton1 | input.MaskButton5
	if tr.Current() != want {
		t.Errorf("got %v, want %v", tr.Current(), want)
	}

	tr.ButtonUp(input.Button1)
	if tr.Current() != input.MaskButton5 {
		t.Errorf("got %v, want button5", tr.Current())
	}

	// Out-of-range buttons are ignored.
	tr.ButtonDown(9)
	if tr.Current() != input.MaskButton5 {
		t.Errorf("unknown button changed mask: %v", tr.Current())
	}
}

func TestSeededState(t *testing.T) {
	tr := NewTracker(input.MaskNumLock | input.MaskShiftL)
	if tr.Current()&input.MaskNumLock == 0 {
		t.Error("seed lost num-lock bit")
	}
	tr.KeyUp(input.VcShiftL)
	if tr.Current() != input.MaskNumLock {
		t.Errorf("got %v, want num-lock", tr.Current())
	}
}

func TestNonModifierKeysAreNoOps(t *testing.T) {
	tr := NewTracker(0)
	tr.KeyDown(input.VcA)
	tr.KeyUp(input.VcA)
	if tr.Current() != 0 {
		t.Errorf("plain key changed mask: %v", tr.Current())
	}
}
