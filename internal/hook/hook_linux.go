//go:build linux && cgo

package hook

/*
#cgo LDFLAGS: -lX11 -lXtst

#include <stdlib.h>
#include "xrecord_linux.h"
*/
import "C"

import (
	"context"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"inputtap/internal/keycode"
	"inputtap/internal/textres"
	"inputtap/pkg/input"
)

// Core protocol event types delivered through the record callback.
const (
	xKeyPress      = 2
	xKeyRelease    = 3
	xButtonPress   = 4
	xButtonRelease = 5
	xMotionNotify  = 6
)

type x11Backend struct {
	ctx   context.Context
	proc  *processor
	table *keycode.X11Table
}

// The record callback has no closure pointer we control from Go, so the
// active backend is process-global like the C display state it fronts.
var (
	x11Mu     sync.Mutex
	x11Active *x11Backend
)

// runBackend captures through the XRecord extension: a control display
// owns the context while a second display blocks inside
// XRecordEnableContext feeding the callback. Keyboard layout changes
// signalled over dbus invalidate the text resolver.
func runBackend(ctx context.Context, opts Options, proc *processor, resolver *textres.Coordinator) error {
	x11Mu.Lock()
	if x11Active != nil {
		x11Mu.Unlock()
		return ErrAlreadyRunning
	}
	b := &x11Backend{ctx: ctx, proc: proc, table: keycode.NewX11Table()}
	x11Active = b
	x11Mu.Unlock()

	defer func() {
		x11Mu.Lock()
		x11Active = nil
		x11Mu.Unlock()
	}()

	switch C.xrecord_open(cbool(opts.Keyboard), cbool(opts.Mouse)) {
	case -1:
		return ErrXOpenDisplay
	case -2:
		return ErrXRecordNotFound
	case -3:
		return ErrXRecordAllocRange
	case -4:
		return ErrXRecordCreateContext
	}
	defer C.xrecord_close()

	b.table.Load(resolveKeyName())

	if resolver != nil {
		// Best effort: without a session bus the resolver just keeps
		// its initial layout.
		_ = textres.WatchLayoutChanges(ctx, func(string) {
			resolver.Invalidate()
		})
	}

	done := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		if C.xrecord_run() != 0 {
			done <- ErrXRecordEnableContext
			return
		}
		done <- nil
	}()

	select {
	case <-ctx.Done():
		C.xrecord_stop()
		<-done
		return nil
	case err := <-done:
		if err == nil {
			err = ErrFailure
		}
		return err
	}
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// resolveKeyName builds the symbolic-name lookup from the server's xkb
// key names, scanned once over the keycode range.
func resolveKeyName() func(name string) uint8 {
	byName := make(map[string]uint8)
	min, max := int(C.xrecord_min_keycode()), int(C.xrecord_max_keycode())

	buf := (*C.char)(C.malloc(C.size_t(5)))
	defer C.free(unsafe.Pointer(buf))

	for code := min; code <= max && code < 256; code++ {
		if C.xrecord_key_name(C.int(code), buf) == 0 {
			continue
		}
		name := C.GoString(buf)
		if _, dup := byName[name]; !dup {
			byName[name] = uint8(code)
		}
	}
	return func(name string) uint8 {
		return byName[name]
	}
}

//export recordDispatch
func recordDispatch(typ, detail C.int, rootX, rootY C.int) {
	b := x11Active
	if b == nil {
		return
	}

	now := time.Now()
	x, y := int16(rootX), int16(rootY)

	switch typ {
	case xKeyPress, xKeyRelease:
		raw := uint16(detail)
		b.proc.Key(b.ctx, typ == xKeyPress, b.table.ToVcode(uint8(detail)), raw, 0, now)

	case xButtonPress:
		if wheelDetail(int(detail)) {
			rotation, direction := wheelFor(int(detail))
			b.proc.Wheel(x, y, input.UnitScroll, 3, rotation, direction, now)
			return
		}
		b.proc.Button(true, xButton(int(detail)), x, y, now)

	case xButtonRelease:
		if wheelDetail(int(detail)) {
			return
		}
		b.proc.Button(false, xButton(int(detail)), x, y, now)

	case xMotionNotify:
		b.proc.Motion(x, y, now)
	}
}

func wheelDetail(detail int) bool {
	return detail >= 4 && detail <= 7
}

// wheelFor maps the scroll pseudo-buttons: 4 up, 5 down, 6 left,
// 7 right. Up and right rotate positive, matching the windows wheel
// sign convention.
func wheelFor(detail int) (int16, uint8) {
	switch detail {
	case 4:
		return 1, input.VerticalDirection
	case 5:
		return -1, input.VerticalDirection
	case 6:
		return -1, input.HorizontalDirection
	default:
		return 1, input.HorizontalDirection
	}
}

// xButton maps core button numbers to portable ones. X puts middle on
// 2 and right on 3; buttons past the scroll range restart at 8, so
// 8 and 9 become buttons 4 and 5 and higher extras keep counting up
// from there.
func xButton(detail int) uint16 {
	switch detail {
	case 1:
		return input.Button1
	case 2:
		return input.Button3
	case 3:
		return input.Button2
	default:
		if detail >= 8 {
			return uint16(detail) - 4
		}
		return input.NoButton
	}
}

// X core modifier and button state bits.
const (
	xShiftMask   = 1 << 0
	xControlMask = 1 << 2
	xMod1Mask    = 1 << 3
	xMod4Mask    = 1 << 6
	xButton1Mask = 1 << 8
)

// seedModifiers reads pointer state and lock indicators before capture
// starts. Core state cannot tell left from right, so held modifiers
// seed the left-hand bits.
func seedModifiers() input.Mask {
	state := uint32(C.xrecord_seed_state())
	pointer := state & 0xFFFF
	locks := state >> 16

	var mask input.Mask
	if pointer&xShiftMask != 0 {
		mask |= input.MaskShiftL
	}
	if pointer&xControlMask != 0 {
		mask |= input.MaskCtrlL
	}
	if pointer&xMod1Mask != 0 {
		mask |= input.MaskAltL
	}
	if pointer&xMod4Mask != 0 {
		mask |= input.MaskMetaL
	}
	for i := uint16(0); i < 5; i++ {
		if pointer&(xButton1Mask<<i) != 0 {
			mask |= input.ButtonMask(i + 1)
		}
	}

	if locks&0x01 != 0 {
		mask |= input.MaskCapsLock
	}
	if locks&0x02 != 0 {
		mask |= input.MaskNumLock
	}
	if locks&0x04 != 0 {
		mask |= input.MaskScrollLock
	}
	return mask
}
