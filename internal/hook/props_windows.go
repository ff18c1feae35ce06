//go:build windows

package hook

import (
	"time"
	"unsafe"
)

const (
	spiGetKeyboardSpeed = 0x000A
	spiGetKeyboardDelay = 0x0016
	spiGetMouse         = 0x0003
	spiGetMouseSpeed    = 0x0070
)

func spiUint(spi uintptr) (uint32, bool) {
	var v uint32
	r, _, _ := procSystemParametersInfo.Call(spi, 0, uintptr(unsafe.Pointer(&v)), 0)
	return v, r != 0
}

// MultiClickTime returns the system double-click time.
func MultiClickTime() time.Duration {
	r, _, _ := procGetDoubleClickTime.Call()
	if r == 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(r) * time.Millisecond
}

func AutoRepeatRate() (int, bool) {
	v, ok := spiUint(spiGetKeyboardSpeed)
	return int(v), ok
}

// AutoRepeatDelay maps the 0..3 keyboard delay setting onto its
// documented 250ms steps.
func AutoRepeatDelay() (time.Duration, bool) {
	v, ok := spiUint(spiGetKeyboardDelay)
	if !ok {
		return 0, false
	}
	return time.Duration(v+1) * 250 * time.Millisecond, true
}

func PointerSensitivity() (int, bool) {
	v, ok := spiUint(spiGetMouseSpeed)
	return int(v), ok
}

// PointerAcceleration returns the SPI_GETMOUSE multiplier and first
// threshold.
func PointerAcceleration() (multiplier, threshold int, ok bool) {
	var mouse [3]uint32
	r, _, _ := procSystemParametersInfo.Call(spiGetMouse, 0, uintptr(unsafe.Pointer(&mouse[0])), 0)
	if r == 0 {
		return 0, 0, false
	}
	return int(mouse[2]), int(mouse[0]), true
}
