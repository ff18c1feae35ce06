package keycode

import "inputtap/pkg/input"

// DarwinUndefined is the injected key number used when a portable keycode
// has no hardware key on macOS.
const DarwinUndefined = 0xFF

// Carbon virtual-key numbers, plus the NX special-key numbers the hook
// synthesizes from system-defined events (0xE0 | NX key type).
const (
	kVKReturn        = 0x24
	kVKNXPower       = 0xE6
	kVKNXEject       = 0xEE
	kVKMediaPlay     = 0xF0
	kVKMediaNext     = 0xF1
	kVKMediaPrevious = 0xF2
)

var darwinPairs = []Pair{
	{input.VcA, 0x00},
	{input.VcS, 0x01},
	{input.VcD, 0x02},
	{input.VcF, 0x03},
	{input.VcH, 0x04},
	{input.VcG, 0x05},
	{input.VcZ, 0x06},
	{input.VcX, 0x07},
	{input.VcC, 0x08},
	{input.VcV, 0x09},
	{input.Vc102, 0x0A}, // ISO section key
	{input.VcB, 0x0B},
	{input.VcQ, 0x0C},
	{input.VcW, 0x0D},
	{input.VcE, 0x0E},
	{input.VcR, 0x0F},
	{input.VcY, 0x10},
	{input.VcT, 0x11},
	{input.Vc1, 0x12},
	{input.Vc2, 0x13},
	{input.Vc3, 0x14},
	{input.Vc4, 0x15},
	{input.Vc6, 0x16},
	{input.Vc5, 0x17},
	{input.VcEquals, 0x18},
	{input.Vc9, 0x19},
	{input.Vc7, 0x1A},
	{input.VcMinus, 0x1B},
	{input.Vc8, 0x1C},
	{input.Vc0, 0x1D},
	{input.VcCloseBracket, 0x1E},
	{input.VcO, 0x1F},
	{input.VcU, 0x20},
	{input.VcOpenBracket, 0x21},
	{input.VcI, 0x22},
	{input.VcP, 0x23},
	{input.VcEnter, kVKReturn},
	{input.VcL, 0x25},
	{input.VcJ, 0x26},
	{input.VcQuote, 0x27},
	{input.VcK, 0x28},
	{input.VcSemicolon, 0x29},
	{input.VcBackSlash, 0x2A},
	{input.VcComma, 0x2B},
	{input.VcSlash, 0x2C},
	{input.VcN, 0x2D},
	{input.VcM, 0x2E},
	{input.VcPeriod, 0x2F},
	{input.VcTab, 0x30},
	{input.VcSpace, 0x31},
	{input.VcBackQuote, 0x32},
	{input.VcBackspace, 0x33},
	{input.VcEscape, 0x35},
	{input.VcMetaR, 0x36},
	{input.VcMetaL, 0x37},
	{input.VcShiftL, 0x38},
	{input.VcCapsLock, 0x39},
	{input.VcAltL, 0x3A},
	{input.VcControlL, 0x3B},
	{input.VcShiftR, 0x3C},
	{input.VcAltR, 0x3D},
	{input.VcControlR, 0x3E},
	{input.VcFunction, 0x3F},
	{input.VcF17, 0x40},
	{input.VcKpDecimal, 0x41},
	{input.VcKpMultiply, 0x43},
	{input.VcKpAdd, 0x45},
	{input.VcKpClear, 0x47},
	{input.VcVolumeUp, 0x48},
	{input.VcVolumeDown, 0x49},
	{input.VcVolumeMute, 0x4A},
	{input.VcKpDivide, 0x4B},
	{input.VcKpEnter, 0x4C},
	{input.VcKpSubtract, 0x4E},
	{input.VcF18, 0x4F},
	{input.VcF19, 0x50},
	{input.VcKpEquals, 0x51},
	{input.VcKp0, 0x52},
	{input.VcKp1, 0x53},
	{input.VcKp2, 0x54},
	{input.VcKp3, 0x55},
	{input.VcKp4, 0x56},
	{input.VcKp5, 0x57},
	{input.VcKp6, 0x58},
	{input.VcKp7, 0x59},
	{input.VcF20, 0x5A},
	{input.VcKp8, 0x5B},
	{input.VcKp9, 0x5C},
	{input.VcYen, 0x5D},
	{input.VcUnderscore, 0x5E},
	{input.VcJpComma, 0x5F},
	{input.VcF5, 0x60},
	{input.VcF6, 0x61},
	{input.VcF7, 0x62},
	{input.VcF3, 0x63},
	{input.VcF8, 0x64},
	{input.VcF9, 0x65},
	{input.VcAlphanumeric, 0x66},
	{input.VcF11, 0x67},
	{input.VcKana, 0x68},
	{input.VcF13, 0x69},
	{input.VcF16, 0x6A},
	{input.VcF14, 0x6B},
	{input.VcF10, 0x6D},
	{input.VcContextMenu, 0x6E},
	{input.VcF12, 0x6F},
	{input.VcF15, 0x71},
	{input.VcHelp, 0x72},
	{input.VcHome, 0x73},
	{input.VcPageUp, 0x74},
	{input.VcDelete, 0x75},
	{input.VcF4, 0x76},
	{input.VcEnd, 0x77},
	{input.VcF2, 0x78},
	{input.VcPageDown, 0x79},
	{input.VcF1, 0x7A},
	{input.VcLeft, 0x7B},
	{input.VcRight, 0x7C},
	{input.VcDown, 0x7D},
	{input.VcUp, 0x7E},
	{input.VcPower, kVKNXPower},
	{input.VcMediaEject, kVKNXEject},
	{input.VcMediaPlay, kVKMediaPlay},
	{input.VcMediaNext, kVKMediaNext},
	{input.VcMediaPrevious, kVKMediaPrevious},
	{input.VcChangeInputSource, 0xB3},
}

var darwinTable = NewTable(darwinPairs)

// Darwin returns the shared macOS lookup table.
func Darwin() *Table { return darwinTable }

// DarwinToVcode resolves a macOS key number to a portable keycode.
func DarwinToVcode(kv uint16) input.Keycode {
	return darwinTable.ToVcode(kv)
}

// DarwinToNative resolves a portable keycode to a macOS key number, or
// DarwinUndefined when no key exists.
func DarwinToNative(vc input.Keycode) uint16 {
	if kv, ok := darwinTable.ToNative(vc); ok {
		return kv
	}
	return DarwinUndefined
}
