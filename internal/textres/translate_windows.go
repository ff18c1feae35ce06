//go:build windows

package textres

import (
	"context"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procGetForegroundWindow        = moduser32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId   = moduser32.NewProc("GetWindowThreadProcessId")
	procGetKeyboardLayout          = moduser32.NewProc("GetKeyboardLayout")
	procGetKeyboardState           = moduser32.NewProc("GetKeyboardState")
	procGetKeyState                = moduser32.NewProc("GetKeyState")
	procToUnicodeEx                = moduser32.NewProc("ToUnicodeEx")
)

// ToUnicodeEx flags: bit 0 disables Alt handling so editors do not see
// characters on Alt+Arrow chords, bit 2 keeps the kernel-side keyboard
// state untouched (Windows 10 1607+).
const toUnicodeFlags = (1 << 0) | (1 << 2)

// PlatformMode reports how the translator must be driven on this OS.
// ToUnicodeEx is safe from the hook thread, so no marshalling is needed.
func PlatformMode() Mode { return Direct }

// NewPlatform returns the coordinator for this OS.
func NewPlatform() *Coordinator {
	return NewCoordinator(PlatformMode(), translateWindows)
}

// translateWindows resolves a key against the layout of the window that
// currently has focus, not this process's layout; a hook receives keys
// for every application.
func translateWindows(ctx context.Context, req Request) ([]uint16, error) {
	if !req.KeyDown {
		return nil, nil
	}

	hwnd, _, _ := procGetForegroundWindow.Call()
	var layout uintptr
	if hwnd != 0 {
		tid, _, _ := procGetWindowThreadProcessId.Call(hwnd, 0)
		layout, _, _ = procGetKeyboardLayout.Call(tid)
	}
	if layout == 0 {
		layout, _, _ = procGetKeyboardLayout.Call(0)
	}
	if layout == 0 {
		return nil, nil
	}

	// GetKeyState forces GetKeyboardState to refresh from the input queue.
	procGetKeyState.Call(0) //nolint:errcheck

	var state [256]byte
	ok, _, err := procGetKeyboardState.Call(uintptr(unsafe.Pointer(&state[0])))
	if ok == 0 {
		return nil, err
	}

	var buf [4]uint16
	n, _, _ := procToUnicodeEx.Call(
		uintptr(req.Keycode),
		uintptr(req.Raw),
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		toUnicodeFlags,
		layout,
	)
	// Negative results flag a dead key; the system keeps that state, so
	// there is nothing to emit yet.
	if int(n) <= 0 {
		return nil, nil
	}
	out := make([]uint16, int(n))
	copy(out, buf[:int(n)])
	return out, nil
}
