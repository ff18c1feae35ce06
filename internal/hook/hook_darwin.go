//go:build darwin && cgo

package hook

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation

#include "tap_darwin.h"
*/
import "C"

import (
	"context"
	"runtime"
	"sync"
	"time"

	"inputtap/internal/keycode"
	"inputtap/internal/textres"
	"inputtap/pkg/input"
)

// CGEventType values the tap callback reports.
const (
	cgLeftMouseDown     = 1
	cgLeftMouseUp       = 2
	cgRightMouseDown    = 3
	cgRightMouseUp      = 4
	cgMouseMoved        = 5
	cgLeftMouseDragged  = 6
	cgRightMouseDragged = 7
	cgKeyDown           = 10
	cgKeyUp             = 11
	cgFlagsChanged      = 12
	cgScrollWheel       = 22
	cgOtherMouseDown    = 25
	cgOtherMouseUp      = 26
	cgOtherMouseDragged = 27
)

// Device-dependent CGEventFlags bits, one per physical modifier key.
// Caps lock only has the device-independent alpha-shift bit.
var darwinFlagBits = map[uint16]uint64{
	0x38: 0x00000002, // left shift
	0x3C: 0x00000004, // right shift
	0x3B: 0x00000001, // left control
	0x3E: 0x00002000, // right control
	0x3A: 0x00000020, // left option
	0x3D: 0x00000040, // right option
	0x37: 0x00000008, // left command
	0x36: 0x00000010, // right command
	0x39: 0x00010000, // caps lock (alpha shift)
}

const darwinAlphaShift = 0x00010000

type darwinBackend struct {
	ctx  context.Context
	proc *processor
}

// The tap and its C-side state are process-global, so only one backend
// may run at a time. The callback reads this without locking: it is set
// before the run loop starts and cleared after it returns.
var (
	darwinMu     sync.Mutex
	darwinActive *darwinBackend
)

// runBackend creates a listen-only session event tap and services its
// run loop on a locked OS thread until the context is cancelled.
func runBackend(ctx context.Context, opts Options, proc *processor, _ *textres.Coordinator) error {
	if C.input_tap_ax_trusted(0) == 0 {
		return ErrAXAPIDisabled
	}

	darwinMu.Lock()
	if darwinActive != nil {
		darwinMu.Unlock()
		return ErrAlreadyRunning
	}
	b := &darwinBackend{ctx: ctx, proc: proc}
	darwinActive = b
	darwinMu.Unlock()

	defer func() {
		darwinMu.Lock()
		darwinActive = nil
		darwinMu.Unlock()
	}()

	switch C.input_tap_create(cbool(opts.Keyboard), cbool(opts.Mouse)) {
	case -1:
		return ErrCreateEventPort
	case -2:
		return ErrCreateRunLoopSource
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		C.input_tap_run()
	}()

	select {
	case <-ctx.Done():
		C.input_tap_stop()
		<-done
		return nil
	case <-done:
		// Run loop exited without Stop, typically a revoked grant.
		return ErrFailure
	}
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

//export tapDispatch
func tapDispatch(typ C.int, kc C.int64_t, flags C.uint64_t, x, y C.double, button, axis1, axis2 C.int64_t, continuous C.int) {
	b := darwinActive
	if b == nil {
		return
	}

	now := time.Now()
	px, py := int16(x), int16(y)

	switch typ {
	case cgKeyDown, cgKeyUp:
		raw := uint16(kc)
		b.proc.Key(b.ctx, typ == cgKeyDown, keycode.DarwinToVcode(raw), raw, 0, now)

	case cgFlagsChanged:
		raw := uint16(kc)
		bit, ok := darwinFlagBits[raw]
		if !ok {
			return
		}
		vc := keycode.DarwinToVcode(raw)
		if bit == darwinAlphaShift {
			// Caps lock reports one flags change per toggle; surface it
			// as a press and release pair either way.
			b.proc.Key(b.ctx, true, vc, raw, 0, now)
			b.proc.Key(b.ctx, false, vc, raw, 0, now)
			return
		}
		b.proc.Key(b.ctx, uint64(flags)&bit != 0, vc, raw, 0, now)

	case cgLeftMouseDown:
		b.proc.Button(true, input.Button1, px, py, now)
	case cgLeftMouseUp:
		b.proc.Button(false, input.Button1, px, py, now)
	case cgRightMouseDown:
		b.proc.Button(true, input.Button2, px, py, now)
	case cgRightMouseUp:
		b.proc.Button(false, input.Button2, px, py, now)
	case cgOtherMouseDown, cgOtherMouseUp:
		b.proc.Button(typ == cgOtherMouseDown, otherButton(int64(button)), px, py, now)

	case cgMouseMoved, cgLeftMouseDragged, cgRightMouseDragged, cgOtherMouseDragged:
		b.proc.Motion(px, py, now)

	case cgScrollWheel:
		// Trackpads scroll continuously in pixel units; wheels report
		// whole lines per notch.
		scrollType := uint8(input.BlockScroll)
		if continuous != 0 {
			scrollType = input.UnitScroll
		}
		rotation, direction := int16(axis1), uint8(input.VerticalDirection)
		if axis1 == 0 && axis2 != 0 {
			rotation, direction = int16(axis2), input.HorizontalDirection
		}
		b.proc.Wheel(px, py, scrollType, 1, rotation, direction, now)
	}
}

// otherButton maps CGMouseEventButtonNumber (2 is middle, then counting
// up) onto portable button numbers. Extras past button 5 keep their
// place in the sequence.
func otherButton(n int64) uint16 {
	if n < 0 {
		return input.NoButton
	}
	if n == 2 {
		return input.Button3
	}
	return uint16(n) + 1
}

// seedModifiers reads the combined session state so keys and buttons
// held before the tap was installed are reflected in the mask.
func seedModifiers() input.Mask {
	flags := uint64(C.input_tap_flags_state())

	var mask input.Mask
	for raw, bit := range darwinFlagBits {
		if flags&bit == 0 {
			continue
		}
		switch raw {
		case 0x38:
			mask |= input.MaskShiftL
		case 0x3C:
			mask |= input.MaskShiftR
		case 0x3B:
			mask |= input.MaskCtrlL
		case 0x3E:
			mask |= input.MaskCtrlR
		case 0x3A:
			mask |= input.MaskAltL
		case 0x3D:
			mask |= input.MaskAltR
		case 0x37:
			mask |= input.MaskMetaL
		case 0x36:
			mask |= input.MaskMetaR
		case 0x39:
			mask |= input.MaskCapsLock
		}
	}

	buttons := uint32(C.input_tap_pressed_buttons())
	for i := uint16(0); i < 5; i++ {
		if buttons&(1<<i) != 0 {
			mask |= input.ButtonMask(i + 1)
		}
	}
	return mask
}

// AccessibilityTrusted reports whether the process may observe input,
// optionally raising the system permission prompt.
func AccessibilityTrusted(prompt bool) bool {
	return C.input_tap_ax_trusted(cbool(prompt)) == 1
}
