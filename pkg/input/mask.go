package input

import "strings"

// Mask is the virtual modifier state attached to every event. Bits 0..7 are
// the left and right modifier keys, 8..12 the mouse buttons, 13..15 the lock
// keys. The layout matches the journal format.
type Mask uint16

const (
	MaskShiftL Mask = 1 << 0
	MaskCtrlL  Mask = 1 << 1
	MaskMetaL  Mask = 1 << 2
	MaskAltL   Mask = 1 << 3

	MaskShiftR Mask = 1 << 4
	MaskCtrlR  Mask = 1 << 5
	MaskMetaR  Mask = 1 << 6
	MaskAltR   Mask = 1 << 7

	MaskShift = MaskShiftL | MaskShiftR
	MaskCtrl  = MaskCtrlL | MaskCtrlR
	MaskMeta  = MaskMetaL | MaskMetaR
	MaskAlt   = MaskAltL | MaskAltR

	MaskButton1 Mask = 1 << 8
	MaskButton2 Mask = 1 << 9
	MaskButton3 Mask = 1 << 10
	MaskButton4 Mask = 1 << 11
	MaskButton5 Mask = 1 << 12

	MaskButtonAny = MaskButton1 | MaskButton2 | MaskButton3 | MaskButton4 | MaskButton5

	MaskNumLock    Mask = 1 << 13
	MaskCapsLock   Mask = 1 << 14
	MaskScrollLock Mask = 1 << 15
)

// ButtonMask returns the mask bit for a mouse button number, or 0 for
// buttons outside 1..5.
func ButtonMask(button uint16) Mask {
	if button < Button1 || button > Button5 {
		return 0
	}
	return MaskButton1 << (button - Button1)
}

var maskNames = []struct {
	bit  Mask
	name string
}{
	{MaskShiftL, "shift-l"},
	{MaskCtrlL, "ctrl-l"},
	{MaskMetaL, "meta-l"},
	{MaskAltL, "alt-l"},
	{MaskShiftR, "shift-r"},
	{MaskCtrlR, "ctrl-r"},
	{MaskMetaR, "meta-r"},
	{MaskAltR, "alt-r"},
	{MaskButton1, "button1"},
	{MaskButton2, "button2"},
	{MaskButton3, "button3"},
	{MaskButton4, "button4"},
	{MaskButton5, "button5"},
	{MaskNumLock, "num-lock"},
	{MaskCapsLock, "caps-lock"},
	{MaskScrollLock, "scroll-lock"},
}

func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, mn := range maskNames {
		if m&mn.bit != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}
