//go:build windows

package post

import (
	"context"
	"fmt"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"

	"inputtap/internal/keycode"
	"inputtap/internal/screen"
	"inputtap/pkg/input"
)

// SendInput delivers immediately; no settle delay is needed.
const defaultTextDelay = 0

var (
	moduser32     = windows.NewLazySystemDLL("user32.dll")
	procSendInput = moduser32.NewProc("SendInput")
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
	keyeventfUnicode     = 0x0004

	mouseeventfMove        = 0x0001
	mouseeventfLeftDown    = 0x0002
	mouseeventfLeftUp      = 0x0004
	mouseeventfRightDown   = 0x0008
	mouseeventfRightUp     = 0x0010
	mouseeventfMiddleDown  = 0x0020
	mouseeventfMiddleUp    = 0x0040
	mouseeventfXDown       = 0x0080
	mouseeventfXUp         = 0x0100
	mouseeventfWheel       = 0x0800
	mouseeventfHWheel      = 0x1000
	mouseeventfVirtualDesk = 0x4000
	mouseeventfAbsolute    = 0x8000

	wheelDelta = 120
)

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// winInput is the INPUT struct: a type tag followed by a union large
// enough for MOUSEINPUT, its biggest member.
type winInput struct {
	Type  uint32
	_     uint32
	Union [32]byte
}

func keyboardInput(ki keybdInput) winInput {
	in := winInput{Type: inputKeyboard}
	*(*keybdInput)(unsafe.Pointer(&in.Union[0])) = ki
	return in
}

func mouseInputOf(mi mouseInput) winInput {
	in := winInput{Type: inputMouse}
	*(*mouseInput)(unsafe.Pointer(&in.Union[0])) = mi
	return in
}

func send(inputs []winInput) error {
	n, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(winInput{}),
	)
	if int(n) != len(inputs) {
		return fmt.Errorf("%w: SendInput sent %d of %d: %v", ErrFailedSend, n, len(inputs), err)
	}
	return nil
}

func postKey(_ context.Context, ev *input.Event) error {
	vk, extended, ok := keycode.WindowsToNative(ev.Key.Code)
	if !ok {
		return fmt.Errorf("%w: keycode %#04x has no virtual key", ErrUnsupported, uint16(ev.Key.Code))
	}

	var flags uint32
	if extended {
		flags |= keyeventfExtendedKey
	}
	if ev.Kind == input.KeyReleased {
		flags |= keyeventfKeyUp
	}
	return send([]winInput{keyboardInput(keybdInput{Vk: vk, Flags: flags})})
}

func postText(_ context.Context, text string) error {
	if text == "" {
		return ErrEmptyText
	}

	units := utf16.Encode([]rune(text))
	inputs := make([]winInput, 0, len(units)*2)
	for _, unit := range units {
		inputs = append(inputs,
			keyboardInput(keybdInput{Scan: unit, Flags: keyeventfUnicode}),
			keyboardInput(keybdInput{Scan: unit, Flags: keyeventfUnicode | keyeventfKeyUp}),
		)
	}
	return send(inputs)
}

func postButton(_ context.Context, ev *input.Event, ignoreCoords bool) error {
	down := ev.Kind == input.MousePressed || ev.Kind == input.MousePressedIgnoreCoords

	var flags, data uint32
	switch ev.Mouse.Button {
	case input.Button1:
		flags = mouseeventfLeftDown
		if !down {
			flags = mouseeventfLeftUp
		}
	case input.Button2:
		flags = mouseeventfRightDown
		if !down {
			flags = mouseeventfRightUp
		}
	case input.Button3:
		flags = mouseeventfMiddleDown
		if !down {
			flags = mouseeventfMiddleUp
		}
	case input.Button4, input.Button5:
		flags = mouseeventfXDown
		if !down {
			flags = mouseeventfXUp
		}
		data = uint32(ev.Mouse.Button) - 3 // XBUTTON1 or XBUTTON2
	default:
		return fmt.Errorf("%w: button %d", ErrUnsupported, ev.Mouse.Button)
	}

	mi := mouseInput{MouseData: data, Flags: flags}
	if !ignoreCoords {
		nx, ny := screen.Current().Normalize(int(ev.Mouse.X), int(ev.Mouse.Y))
		mi.Dx = int32(nx)
		mi.Dy = int32(ny)
		mi.Flags |= mouseeventfMove | mouseeventfAbsolute | mouseeventfVirtualDesk
	}
	return send([]winInput{mouseInputOf(mi)})
}

func postMotion(_ context.Context, ev *input.Event, relative bool) error {
	mi := mouseInput{Flags: mouseeventfMove}
	if relative {
		mi.Dx = int32(ev.Mouse.X)
		mi.Dy = int32(ev.Mouse.Y)
	} else {
		nx, ny := screen.Current().Normalize(int(ev.Mouse.X), int(ev.Mouse.Y))
		mi.Dx = int32(nx)
		mi.Dy = int32(ny)
		mi.Flags |= mouseeventfAbsolute | mouseeventfVirtualDesk
	}
	return send([]winInput{mouseInputOf(mi)})
}

func postWheel(_ context.Context, ev *input.Event) error {
	flags := uint32(mouseeventfWheel)
	if ev.Wheel.Direction == input.HorizontalDirection {
		flags = mouseeventfHWheel
	}

	nx, ny := screen.Current().Normalize(int(ev.Wheel.X), int(ev.Wheel.Y))
	mi := mouseInput{
		Dx:        int32(nx),
		Dy:        int32(ny),
		MouseData: uint32(int32(ev.Wheel.Rotation) * wheelDelta),
		Flags:     flags,
	}
	return send([]winInput{mouseInputOf(mi)})
}
