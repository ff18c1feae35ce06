// Package modifiers tracks the virtual modifier mask across hook events.
// The hook backend owns a single Tracker per session, seeds it from live OS
// state at install, and applies each key or button transition before the
// event it belongs to is dispatched, so the mask on an event always reflects
// the state after that event.
package modifiers

import "inputtap/pkg/input"

// Tracker holds the current modifier mask. It is not safe for concurrent
// use; all mutation happens on the hook backend's event thread.
type Tracker struct {
	mask input.Mask
}

// NewTracker returns a tracker seeded with the given mask.
func NewTracker(seed input.Mask) *Tracker {
	return &Tracker{mask: seed}
}

// Current returns the mask as of the last transition.
func (t *Tracker) Current() input.Mask {
	return t.mask
}

// Set raises the given bits.
func (t *Tracker) Set(m input.Mask) {
	t.mask |= m
}

// Unset clears the given bits.
func (t *Tracker) Unset(m input.Mask) {
	t.mask &^= m
}

// Toggle flips the given bits. Lock keys use this on press.
func (t *Tracker) Toggle(m input.Mask) {
	t.mask ^= m
}

// KeyDown applies the press transition for a key. Hold modifiers set their
// bit, lock keys toggle theirs, everything else is a no-op.
func (t *Tracker) KeyDown(code input.Keycode) {
	if m := holdMask(code); m != 0 {
		t.Set(m)
		return
	}
	if m := lockMask(code); m != 0 {
		t.Toggle(m)
	}
}

// KeyUp applies the release transition for a key. Lock bits are unaffected
// by release.
func (t *Tracker) KeyUp(code input.Keycode) {
	if m := holdMask(code); m != 0 {
		t.Unset(m)
	}
}

// ButtonDown applies the press transition for a mouse button.
func (t *Tracker) ButtonDown(button uint16) {
	t.Set(input.ButtonMask(button))
}

// ButtonUp applies the release transition for a mouse button.
func (t *Tracker) ButtonUp(button uint16) {
	t.Unset(input.ButtonMask(button))
}

func holdMask(code input.Keycode) input.Mask {
	switch code {
	case input.VcShiftL:
		return input.MaskShiftL
	case input.VcShiftR:
		return input.MaskShiftR
	case input.VcControlL:
		return input.MaskCtrlL
	case input.VcControlR:
		return input.MaskCtrlR
	case input.VcAltL:
		return input.MaskAltL
	case input.VcAltR:
		return input.MaskAltR
	case input.VcMetaL:
		return input.MaskMetaL
	case input.VcMetaR:
		return input.MaskMetaR
	}
	return 0
}

func lockMask(code input.Keycode) input.Mask {
	switch code {
	case input.VcNumLock:
		return input.MaskNumLock
	case input.VcCapsLock:
		return input.MaskCapsLock
	case input.VcScrollLock:
		return input.MaskScrollLock
	}
	return 0
}
