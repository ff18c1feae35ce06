//go:build windows

package screen

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"inputtap/pkg/input"
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procEnumDisplayMonitors = moduser32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = moduser32.NewProc("GetMonitorInfoW")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type monitorInfo struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
}

func enumerate() []input.Screen {
	var screens []input.Screen

	cb := windows.NewCallback(func(hMonitor, hdc, lpRect, lParam uintptr) uintptr {
		mi := monitorInfo{Size: uint32(unsafe.Sizeof(monitorInfo{}))}
		ok, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ok != 0 {
			screens = append(screens, input.Screen{
				Number: uint8(len(screens)),
				X:      int16(mi.Monitor.Left),
				Y:      int16(mi.Monitor.Top),
				Width:  uint16(mi.Monitor.Right - mi.Monitor.Left),
				Height: uint16(mi.Monitor.Bottom - mi.Monitor.Top),
			})
		}
		return 1 // continue enumeration
	})

	procEnumDisplayMonitors.Call(0, 0, cb, 0) //nolint:errcheck
	return screens
}
