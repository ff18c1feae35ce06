package keycode

import "inputtap/pkg/input"

// Windows virtual-key numbers used by the table. Only keys the table needs
// are defined; values are from winuser.h.
const (
	vkCancel     = 0x03
	vkBack       = 0x08
	vkTab        = 0x09
	vkClear      = 0x0C
	vkReturn     = 0x0D
	vkShift      = 0x10
	vkControl    = 0x11
	vkMenu       = 0x12
	vkPause      = 0x13
	vkCapital    = 0x14
	vkKana       = 0x15
	vkHangul     = 0x15
	vkImeOn      = 0x16
	vkJunja      = 0x17
	vkFinal      = 0x18
	vkHanja      = 0x19
	vkKanji      = 0x19
	vkImeOff     = 0x1A
	vkEscape     = 0x1B
	vkConvert    = 0x1C
	vkNonConvert = 0x1D
	vkAccept     = 0x1E
	vkModeChange = 0x1F
	vkSpace      = 0x20
	vkPrior      = 0x21
	vkNext       = 0x22
	vkEnd        = 0x23
	vkHome       = 0x24
	vkLeft       = 0x25
	vkUp         = 0x26
	vkRight      = 0x27
	vkDown       = 0x28
	vkSelect     = 0x29
	vkPrint      = 0x2A
	vkExecute    = 0x2B
	vkSnapshot   = 0x2C
	vkInsert     = 0x2D
	vkDelete     = 0x2E
	vkHelp       = 0x2F

	vkLWin  = 0x5B
	vkRWin  = 0x5C
	vkApps  = 0x5D
	vkSleep = 0x5F

	vkNumpad0   = 0x60
	vkNumpad1   = 0x61
	vkNumpad2   = 0x62
	vkNumpad3   = 0x63
	vkNumpad4   = 0x64
	vkNumpad5   = 0x65
	vkNumpad6   = 0x66
	vkNumpad7   = 0x67
	vkNumpad8   = 0x68
	vkNumpad9   = 0x69
	vkMultiply  = 0x6A
	vkAdd       = 0x6B
	vkSeparator = 0x6C
	vkSubtract  = 0x6D
	vkDecimal   = 0x6E
	vkDivide    = 0x6F

	vkF1  = 0x70
	vkF2  = 0x71
	vkF3  = 0x72
	vkF4  = 0x73
	vkF5  = 0x74
	vkF6  = 0x75
	vkF7  = 0x76
	vkF8  = 0x77
	vkF9  = 0x78
	vkF10 = 0x79
	vkF11 = 0x7A
	vkF12 = 0x7B
	vkF13 = 0x7C
	vkF14 = 0x7D
	vkF15 = 0x7E
	vkF16 = 0x7F
	vkF17 = 0x80
	vkF18 = 0x81
	vkF19 = 0x82
	vkF20 = 0x83
	vkF21 = 0x84
	vkF22 = 0x85
	vkF23 = 0x86
	vkF24 = 0x87

	vkNumLock      = 0x90
	vkScroll       = 0x91
	vkNumpadEquals = 0x92

	vkLShift   = 0xA0
	vkRShift   = 0xA1
	vkLControl = 0xA2
	vkRControl = 0xA3
	vkLMenu    = 0xA4
	vkRMenu    = 0xA5

	vkBrowserBack      = 0xA6
	vkBrowserForward   = 0xA7
	vkBrowserRefresh   = 0xA8
	vkBrowserStop      = 0xA9
	vkBrowserSearch    = 0xAA
	vkBrowserFavorites = 0xAB
	vkBrowserHome      = 0xAC

	vkVolumeMute = 0xAD
	vkVolumeDown = 0xAE
	vkVolumeUp   = 0xAF

	vkMediaNextTrack    = 0xB0
	vkMediaPrevTrack    = 0xB1
	vkMediaStop         = 0xB2
	vkMediaPlayPause    = 0xB3
	vkLaunchMail        = 0xB4
	vkLaunchMediaSelect = 0xB5
	vkLaunchApp1        = 0xB6
	vkLaunchApp2        = 0xB7

	vkOem1      = 0xBA
	vkOemPlus   = 0xBB
	vkOemComma  = 0xBC
	vkOemMinus  = 0xBD
	vkOemPeriod = 0xBE
	vkOem2      = 0xBF
	vkOem3      = 0xC0
	vkOem4      = 0xDB
	vkOem5      = 0xDC
	vkOem6      = 0xDD
	vkOem7      = 0xDE
	vkOem8      = 0xDF
	vkOem102    = 0xE2
	vkProcess   = 0xE5

	vkAttn     = 0xF6
	vkCrSel    = 0xF7
	vkExSel    = 0xF8
	vkErEOF    = 0xF9
	vkPlay     = 0xFA
	vkZoom     = 0xFB
	vkNoName   = 0xFC
	vkPa1      = 0xFD
	vkOemClear = 0xFE
)

var windowsPairs = []Pair{
	{input.VcCancel, vkCancel},
	{input.VcBackspace, vkBack},
	{input.VcTab, vkTab},
	{input.VcKpClear, vkClear},
	{input.VcKpClear, vkOemClear},
	{input.VcEnter, vkReturn},
	{input.VcKpEnter, vkReturn},
	{input.VcShiftL, vkLShift},
	{input.VcShiftR, vkRShift},
	{input.VcShiftL, vkShift},
	{input.VcControlL, vkLControl},
	{input.VcControlR, vkRControl},
	{input.VcControlL, vkControl},
	{input.VcAltL, vkLMenu},
	{input.VcAltR, vkRMenu},
	{input.VcAltL, vkMenu},
	{input.VcPause, vkPause},
	{input.VcCapsLock, vkCapital},
	{input.VcKana, vkKana},
	{input.VcHangul, vkHangul},
	{input.VcImeOn, vkImeOn},
	{input.VcJunja, vkJunja},
	{input.VcFinal, vkFinal},
	{input.VcHanja, vkHanja},
	{input.VcKanji, vkKanji},
	{input.VcImeOff, vkImeOff},
	{input.VcEscape, vkEscape},
	{input.VcConvert, vkConvert},
	{input.VcNonConvert, vkNonConvert},
	{input.VcAccept, vkAccept},
	{input.VcModeChange, vkModeChange},
	{input.VcSpace, vkSpace},
	{input.VcPageUp, vkPrior},
	{input.VcPageDown, vkNext},
	{input.VcEnd, vkEnd},
	{input.VcHome, vkHome},
	{input.VcLeft, vkLeft},
	{input.VcUp, vkUp},
	{input.VcRight, vkRight},
	{input.VcDown, vkDown},
	{input.VcSelect, vkSelect},
	{input.VcPrint, vkPrint},
	{input.VcExecute, vkExecute},
	{input.VcPrintScreen, vkSnapshot},
	{input.VcInsert, vkInsert},
	{input.VcDelete, vkDelete},
	{input.VcHelp, vkHelp},
	{input.Vc0, 0x30},
	{input.Vc1, 0x31},
	{input.Vc2, 0x32},
	{input.Vc3, 0x33},
	{input.Vc4, 0x34},
	{input.Vc5, 0x35},
	{input.Vc6, 0x36},
	{input.Vc7, 0x37},
	{input.Vc8, 0x38},
	{input.Vc9, 0x39},
	{input.VcA, 0x41},
	{input.VcB, 0x42},
	{input.VcC, 0x43},
	{input.VcD, 0x44},
	{input.VcE, 0x45},
	{input.VcF, 0x46},
	{input.VcG, 0x47},
	{input.VcH, 0x48},
	{input.VcI, 0x49},
	{input.VcJ, 0x4A},
	{input.VcK, 0x4B},
	{input.VcL, 0x4C},
	{input.VcM, 0x4D},
	{input.VcN, 0x4E},
	{input.VcO, 0x4F},
	{input.VcP, 0x50},
	{input.VcQ, 0x51},
	{input.VcR, 0x52},
	{input.VcS, 0x53},
	{input.VcT, 0x54},
	{input.VcU, 0x55},
	{input.VcV, 0x56},
	{input.VcW, 0x57},
	{input.VcX, 0x58},
	{input.VcY, 0x59},
	{input.VcZ, 0x5A},
	{input.VcMetaL, vkLWin},
	{input.VcMetaR, vkRWin},
	{input.VcContextMenu, vkApps},
	{input.VcSleep, vkSleep},
	{input.VcKp0, vkNumpad0},
	{input.VcKp1, vkNumpad1},
	{input.VcKp2, vkNumpad2},
	{input.VcKp3, vkNumpad3},
	{input.VcKp4, vkNumpad4},
	{input.VcKp5, vkNumpad5},
	{input.VcKp6, vkNumpad6},
	{input.VcKp7, vkNumpad7},
	{input.VcKp8, vkNumpad8},
	{input.VcKp9, vkNumpad9},
	{input.VcKpMultiply, vkMultiply},
	{input.VcKpAdd, vkAdd},
	{input.VcKpSeparator, vkSeparator},
	{input.VcKpSubtract, vkSubtract},
	{input.VcKpDecimal, vkDecimal},
	{input.VcKpDivide, vkDivide},
	{input.VcF1, vkF1},
	{input.VcF2, vkF2},
	{input.VcF3, vkF3},
	{input.VcF4, vkF4},
	{input.VcF5, vkF5},
	{input.VcF6, vkF6},
	{input.VcF7, vkF7},
	{input.VcF8, vkF8},
	{input.VcF9, vkF9},
	{input.VcF10, vkF10},
	{input.VcF11, vkF11},
	{input.VcF12, vkF12},
	{input.VcF13, vkF13},
	{input.VcF14, vkF14},
	{input.VcF15, vkF15},
	{input.VcF16, vkF16},
	{input.VcF17, vkF17},
	{input.VcF18, vkF18},
	{input.VcF19, vkF19},
	{input.VcF20, vkF20},
	{input.VcF21, vkF21},
	{input.VcF22, vkF22},
	{input.VcF23, vkF23},
	{input.VcF24, vkF24},
	{input.VcNumLock, vkNumLock},
	{input.VcScrollLock, vkScroll},
	{input.VcKpEquals, vkNumpadEquals},
	{input.VcBrowserBack, vkBrowserBack},
	{input.VcBrowserForward, vkBrowserForward},
	{input.VcBrowserRefresh, vkBrowserRefresh},
	{input.VcBrowserStop, vkBrowserStop},
	{input.VcBrowserSearch, vkBrowserSearch},
	{input.VcBrowserFavorites, vkBrowserFavorites},
	{input.VcBrowserHome, vkBrowserHome},
	{input.VcVolumeMute, vkVolumeMute},
	{input.VcVolumeDown, vkVolumeDown},
	{input.VcVolumeUp, vkVolumeUp},
	{input.VcMediaNext, vkMediaNextTrack},
	{input.VcMediaPrevious, vkMediaPrevTrack},
	{input.VcMediaStop, vkMediaStop},
	{input.VcMediaPlay, vkMediaPlayPause},
	{input.VcAppMail, vkLaunchMail},
	{input.VcMediaSelect, vkLaunchMediaSelect},
	{input.VcApp1, vkLaunchApp1},
	{input.VcApp2, vkLaunchApp2},
	{input.VcSemicolon, vkOem1},
	{input.VcEquals, vkOemPlus},
	{input.VcComma, vkOemComma},
	{input.VcMinus, vkOemMinus},
	{input.VcPeriod, vkOemPeriod},
	{input.VcSlash, vkOem2},
	{input.VcBackQuote, vkOem3},
	{input.VcOpenBracket, vkOem4},
	{input.VcBackSlash, vkOem5},
	{input.VcCloseBracket, vkOem6},
	{input.VcQuote, vkOem7},
	{input.VcMisc, vkOem8},
	{input.Vc102, vkOem102},
	{input.VcProcess, vkProcess},
	{input.VcAttn, vkAttn},
	{input.VcCrSel, vkCrSel},
	{input.VcExSel, vkExSel},
	{input.VcEraseEOF, vkErEOF},
	{input.VcPlay, vkPlay},
	{input.VcZoom, vkZoom},
	{input.VcNoName, vkNoName},
	{input.VcPa1, vkPa1},
}

var windowsTable = NewTable(windowsPairs)

// Windows returns the shared windows lookup table.
func Windows() *Table { return windowsTable }

// WindowsToVcode resolves a virtual-key number to a portable keycode.
// VK_RETURN is shared by the main enter and the keypad enter; the extended
// flag on the hook event tells them apart.
func WindowsToVcode(vk uint16, extended bool) input.Keycode {
	vc := windowsTable.ToVcode(vk)
	if vc == input.VcEnter && extended {
		vc = input.VcKpEnter
	}
	return vc
}

// WindowsToNative resolves a portable keycode to a virtual-key number plus
// the extended flag to inject it with. VcKpEnter maps to VK_RETURN with the
// extended flag set, mirroring WindowsToVcode.
func WindowsToNative(vc input.Keycode) (vk uint16, extended bool, ok bool) {
	if vc == input.VcKpEnter {
		return vkReturn, true, true
	}
	vk, ok = windowsTable.ToNative(vc)
	return vk, false, ok
}
