//go:build windows

package hook

import (
	"context"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"inputtap/internal/keycode"
	"inputtap/internal/screen"
	"inputtap/internal/textres"
	"inputtap/pkg/input"
)

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetWindowsHookExW    = moduser32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx  = moduser32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx       = moduser32.NewProc("CallNextHookEx")
	procGetMessageW          = moduser32.NewProc("GetMessageW")
	procDispatchMessageW     = moduser32.NewProc("DispatchMessageW")
	procPostThreadMessageW   = moduser32.NewProc("PostThreadMessageW")
	procGetKeyState          = moduser32.NewProc("GetKeyState")
	procGetDoubleClickTime   = moduser32.NewProc("GetDoubleClickTime")
	procSystemParametersInfo = moduser32.NewProc("SystemParametersInfoW")
	procRegisterClassExW     = moduser32.NewProc("RegisterClassExW")
	procUnregisterClassW     = moduser32.NewProc("UnregisterClassW")
	procCreateWindowExW      = moduser32.NewProc("CreateWindowExW")
	procDestroyWindow        = moduser32.NewProc("DestroyWindow")
	procDefWindowProcW       = moduser32.NewProc("DefWindowProcW")

	procGetModuleHandleW   = modkernel32.NewProc("GetModuleHandleW")
	procGetCurrentThreadId = modkernel32.NewProc("GetCurrentThreadId")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmKeyDown       = 0x0100
	wmKeyUp         = 0x0101
	wmSysKeyDown    = 0x0104
	wmSysKeyUp      = 0x0105
	wmMouseMove     = 0x0200
	wmLButtonDown   = 0x0201
	wmLButtonUp     = 0x0202
	wmRButtonDown   = 0x0204
	wmRButtonUp     = 0x0205
	wmMButtonDown   = 0x0207
	wmMButtonUp     = 0x0208
	wmMouseWheel    = 0x020A
	wmXButtonDown   = 0x020B
	wmXButtonUp     = 0x020C
	wmMouseHWheel   = 0x020E
	wmQuit          = 0x0012
	wmDisplayChange = 0x007E

	llkhfExtended = 0x01

	wheelDelta      = 120
	wheelPageScroll = 0xFFFFFFFF

	spiGetWheelScrollLines = 0x0068
	spiGetWheelScrollChars = 0x006C
)

type kbdllHookStruct struct {
	VkCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type winPoint struct {
	X, Y int32
}

type msllHookStruct struct {
	Pt        winPoint
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type winMsg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      winPoint
}

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

type winBackend struct {
	ctx  context.Context
	opts Options
	proc *processor
}

// runBackend installs WH_KEYBOARD_LL and WH_MOUSE_LL on a locked OS
// thread and pumps messages until the context is cancelled. A hidden
// message-only window picks up WM_DISPLAYCHANGE so the monitor layout
// cache stays current.
func runBackend(ctx context.Context, opts Options, proc *processor, _ *textres.Coordinator) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	b := &winBackend{ctx: ctx, opts: opts, proc: proc}

	hmod, _, _ := procGetModuleHandleW.Call(0)
	if hmod == 0 {
		return fmt.Errorf("%w: %v", ErrGetModuleHandle, windows.GetLastError())
	}

	var hooks []uintptr
	unhookAll := func() {
		for _, h := range hooks {
			procUnhookWindowsHookEx.Call(h) //nolint:errcheck
		}
	}

	if opts.Keyboard {
		h, _, err := procSetWindowsHookExW.Call(whKeyboardLL, windows.NewCallback(b.keyboardProc), hmod, 0)
		if h == 0 {
			return fmt.Errorf("%w: keyboard: %v", ErrSetWindowsHook, err)
		}
		hooks = append(hooks, h)
	}
	if opts.Mouse {
		h, _, err := procSetWindowsHookExW.Call(whMouseLL, windows.NewCallback(b.mouseProc), hmod, 0)
		if h == 0 {
			unhookAll()
			return fmt.Errorf("%w: mouse: %v", ErrSetWindowsHook, err)
		}
		hooks = append(hooks, h)
	}
	defer unhookAll()

	hwnd, cleanup := createDisplayWatchWindow(hmod)
	defer cleanup()
	_ = hwnd

	threadID, _, _ := procGetCurrentThreadId.Call()
	go func() {
		<-ctx.Done()
		procPostThreadMessageW.Call(threadID, wmQuit, 0, 0) //nolint:errcheck
	}()

	screen.Refresh()

	var m winMsg
	for {
		r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(r) <= 0 {
			break
		}
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m))) //nolint:errcheck
	}
	return nil
}

// createDisplayWatchWindow registers a message-only window whose only
// job is refreshing the screen cache on WM_DISPLAYCHANGE. Failure is
// not fatal: capture works without it, normalization just goes stale
// until the next run.
func createDisplayWatchWindow(hmod uintptr) (uintptr, func()) {
	className, err := windows.UTF16PtrFromString("InputTapDisplayWatch")
	if err != nil {
		return 0, func() {}
	}

	wndProc := windows.NewCallback(func(hwnd, msg, wParam, lParam uintptr) uintptr {
		if msg == wmDisplayChange {
			screen.Refresh()
			return 0
		}
		r, _, _ := procDefWindowProcW.Call(hwnd, msg, wParam, lParam)
		return r
	})

	wc := wndClassEx{
		Size:      uint32(unsafe.Sizeof(wndClassEx{})),
		WndProc:   wndProc,
		Instance:  hmod,
		ClassName: className,
	}
	atom, _, _ := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return 0, func() {}
	}

	// HWND_MESSAGE parent keeps the window out of the desktop entirely.
	hwndMessage := ^uintptr(2)
	hwnd, _, _ := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		0,
		0,
		0, 0, 0, 0,
		hwndMessage,
		0,
		hmod,
		0,
	)
	return hwnd, func() {
		if hwnd != 0 {
			procDestroyWindow.Call(hwnd) //nolint:errcheck
		}
		procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), hmod) //nolint:errcheck
	}
}

func (b *winBackend) keyboardProc(nCode, wParam, lParam uintptr) uintptr {
	if int32(nCode) == 0 {
		kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
		extended := kb.Flags&llkhfExtended != 0
		vc := keycode.WindowsToVcode(uint16(kb.VkCode), extended)

		switch wParam {
		case wmKeyDown, wmSysKeyDown:
			b.proc.Key(b.ctx, true, vc, uint16(kb.VkCode), uint16(kb.ScanCode), time.Now())
		case wmKeyUp, wmSysKeyUp:
			b.proc.Key(b.ctx, false, vc, uint16(kb.VkCode), uint16(kb.ScanCode), time.Now())
		}
	}
	r, _, _ := procCallNextHookEx.Call(0, nCode, wParam, lParam)
	return r
}

func (b *winBackend) mouseProc(nCode, wParam, lParam uintptr) uintptr {
	if int32(nCode) == 0 {
		ms := (*msllHookStruct)(unsafe.Pointer(lParam))
		x, y := int16(ms.Pt.X), int16(ms.Pt.Y)
		now := time.Now()

		switch wParam {
		case wmMouseMove:
			b.proc.Motion(x, y, now)
		case wmLButtonDown:
			b.proc.Button(true, input.Button1, x, y, now)
		case wmLButtonUp:
			b.proc.Button(false, input.Button1, x, y, now)
		case wmRButtonDown:
			b.proc.Button(true, input.Button2, x, y, now)
		case wmRButtonUp:
			b.proc.Button(false, input.Button2, x, y, now)
		case wmMButtonDown:
			b.proc.Button(true, input.Button3, x, y, now)
		case wmMButtonUp:
			b.proc.Button(false, input.Button3, x, y, now)
		case wmXButtonDown, wmXButtonUp:
			// XBUTTON1/XBUTTON2 live in the high word of MouseData.
			button := uint16(ms.MouseData>>16) + 3
			b.proc.Button(wParam == wmXButtonDown, button, x, y, now)
		case wmMouseWheel:
			rotation := int16(ms.MouseData>>16) / wheelDelta
			scrollType, amount := wheelParams(spiGetWheelScrollLines)
			b.proc.Wheel(x, y, scrollType, amount, rotation, input.VerticalDirection, now)
		case wmMouseHWheel:
			rotation := int16(ms.MouseData>>16) / wheelDelta
			scrollType, amount := wheelParams(spiGetWheelScrollChars)
			b.proc.Wheel(x, y, scrollType, amount, rotation, input.HorizontalDirection, now)
		}
	}
	r, _, _ := procCallNextHookEx.Call(0, nCode, wParam, lParam)
	return r
}

// wheelParams maps the system scroll setting onto the wheel payload:
// WHEEL_PAGESCROLL means page-at-a-time block scrolling, anything else
// is that many lines (or chars) per notch.
func wheelParams(spi uintptr) (uint8, uint16) {
	var lines uint32
	r, _, _ := procSystemParametersInfo.Call(spi, 0, uintptr(unsafe.Pointer(&lines)), 0)
	if r == 0 {
		return input.UnitScroll, 3
	}
	if lines == wheelPageScroll {
		return input.BlockScroll, 1
	}
	return input.UnitScroll, uint16(lines)
}

// seedModifiers reads the asynchronous key and button state so the mask
// is correct even for keys held before the hook was installed.
func seedModifiers() input.Mask {
	held := func(vk uintptr) bool {
		r, _, _ := procGetKeyState.Call(vk)
		return uint16(r)&0x8000 != 0
	}
	toggled := func(vk uintptr) bool {
		r, _, _ := procGetKeyState.Call(vk)
		return uint16(r)&0x0001 != 0
	}

	var mask input.Mask
	for _, m := range []struct {
		vk  uintptr
		bit input.Mask
	}{
		{0xA0, input.MaskShiftL}, {0xA1, input.MaskShiftR},
		{0xA2, input.MaskCtrlL}, {0xA3, input.MaskCtrlR},
		{0xA4, input.MaskAltL}, {0xA5, input.MaskAltR},
		{0x5B, input.MaskMetaL}, {0x5C, input.MaskMetaR},
		{0x01, input.MaskButton1}, {0x02, input.MaskButton2},
		{0x04, input.MaskButton3}, {0x05, input.MaskButton4},
		{0x06, input.MaskButton5},
	} {
		if held(m.vk) {
			mask |= m.bit
		}
	}
	for _, m := range []struct {
		vk  uintptr
		bit input.Mask
	}{
		{0x14, input.MaskCapsLock}, {0x90, input.MaskNumLock}, {0x91, input.MaskScrollLock},
	} {
		if toggled(m.vk) {
			mask |= m.bit
		}
	}
	return mask
}
