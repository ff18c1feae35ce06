//go:build darwin && cgo

package hook

/*
#include "tap_darwin.h"
*/
import "C"

import "time"

// MultiClickTime returns the double-click threshold preference, which
// macOS stores in seconds.
func MultiClickTime() time.Duration {
	v := float64(C.input_tap_click_time())
	if v <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(v * float64(time.Second))
}

func AutoRepeatRate() (int, bool) {
	v := float64(C.input_tap_key_repeat())
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// AutoRepeatDelay converts the InitialKeyRepeat preference from its
// 15ms tick unit.
func AutoRepeatDelay() (time.Duration, bool) {
	v := float64(C.input_tap_initial_key_repeat())
	if v < 0 {
		return 0, false
	}
	return time.Duration(v*15) * time.Millisecond, true
}

func PointerSensitivity() (int, bool) {
	v := float64(C.input_tap_mouse_scaling())
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// PointerAcceleration reports the mouse scaling preference as the
// multiplier; macOS has no separate threshold.
func PointerAcceleration() (multiplier, threshold int, ok bool) {
	v := float64(C.input_tap_mouse_scaling())
	if v < 0 {
		return 0, 0, false
	}
	return int(v), 0, true
}
