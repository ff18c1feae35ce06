//go:build linux && cgo

package hook

/*
#include "xrecord_linux.h"
*/
import "C"

import "time"

// MultiClickTime returns the conventional X double-click interval.
// Core X11 has no server-side setting; toolkits default to 500ms.
func MultiClickTime() time.Duration {
	return 500 * time.Millisecond
}

func AutoRepeatRate() (int, bool) {
	var delay, interval C.uint
	if C.xrecord_repeat_rate(&delay, &interval) == 0 {
		return 0, false
	}
	return int(interval), true
}

func AutoRepeatDelay() (time.Duration, bool) {
	var delay, interval C.uint
	if C.xrecord_repeat_rate(&delay, &interval) == 0 {
		return 0, false
	}
	return time.Duration(delay) * time.Millisecond, true
}

func PointerSensitivity() (int, bool) {
	var num, denom, threshold C.int
	if C.xrecord_pointer_control(&num, &denom, &threshold) == 0 {
		return 0, false
	}
	if denom == 0 {
		return 0, false
	}
	return int(num) / int(denom), true
}

func PointerAcceleration() (multiplier, threshold int, ok bool) {
	var num, denom, th C.int
	if C.xrecord_pointer_control(&num, &denom, &th) == 0 {
		return 0, 0, false
	}
	if denom != 0 {
		multiplier = int(num) / int(denom)
	}
	return multiplier, int(th), true
}
