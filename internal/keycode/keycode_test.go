package keycode

import (
	"testing"

	"inputtap/pkg/input"
)

// Round-trip: duplicate rows make exact identity too strong, so the
// property checked is that one forward plus one reverse lookup reaches a
// fixed point: vc -> native -> vc' -> native again.
func roundTrip(t *testing.T, tbl *Table) {
	t.Helper()
	for _, row := range tbl.Rows() {
		n1, ok := tbl.ToNative(row.Vc)
		if !ok {
			t.Errorf("vcode %#04x has a row but no native mapping", uint16(row.Vc))
			continue
		}
		vc := tbl.ToVcode(n1)
		if vc == input.VcUndefined {
			t.Errorf("native %#04x maps forward but not back", n1)
			continue
		}
		if n2, ok := tbl.ToNative(vc); !ok || n2 != n1 {
			t.Errorf("native %#04x: round trip drifted to %#04x", n1, n2)
		}
	}
}

func TestWindowsRoundTrip(t *testing.T) { roundTrip(t, Windows()) }
func TestDarwinRoundTrip(t *testing.T)  { roundTrip(t, Darwin()) }

func TestLookupsAreDeterministic(t *testing.T) {
	for _, tbl := range []*Table{Windows(), Darwin()} {
		for _, row := range tbl.Rows() {
			a := tbl.ToVcode(row.Native)
			for i := 0; i < 3; i++ {
				if b := tbl.ToVcode(row.Native); b != a {
					t.Fatalf("native %#04x: lookup changed between calls (%#04x vs %#04x)",
						row.Native, uint16(a), uint16(b))
				}
			}
		}
	}
}

func TestWindowsDuplicateNativesResolveToFirstRow(t *testing.T) {
	// VK_RETURN is shared between enter and keypad enter; the plain lookup
	// must pick the earlier row.
	if vc := Windows().ToVcode(vkReturn); vc != input.VcEnter {
		t.Errorf("VK_RETURN resolved to %#04x, want VcEnter", uint16(vc))
	}
	// VK_KANJI and VK_HANJA share a value; first row wins.
	if vc := Windows().ToVcode(vkKanji); vc != input.VcHanja {
		t.Errorf("0x19 resolved to %#04x, want VcHanja (first row)", uint16(vc))
	}
}

func TestWindowsEnterExtendedFlag(t *testing.T) {
	if vc := WindowsToVcode(vkReturn, false); vc != input.VcEnter {
		t.Errorf("plain return: got %#04x", uint16(vc))
	}
	if vc := WindowsToVcode(vkReturn, true); vc != input.VcKpEnter {
		t.Errorf("extended return: got %#04x", uint16(vc))
	}

	// Injection side mirrors the capture side.
	vk, ext, ok := WindowsToNative(input.VcKpEnter)
	if !ok || vk != vkReturn || !ext {
		t.Errorf("VcKpEnter: got vk=%#04x ext=%v ok=%v", vk, ext, ok)
	}
	vk, ext, ok = WindowsToNative(input.VcEnter)
	if !ok || vk != vkReturn || ext {
		t.Errorf("VcEnter: got vk=%#04x ext=%v ok=%v", vk, ext, ok)
	}
}

func TestWindowsMissReturnsUndefined(t *testing.T) {
	if vc := Windows().ToVcode(0xE8); vc != input.VcUndefined {
		t.Errorf("unassigned vk resolved to %#04x", uint16(vc))
	}
	if _, ok := Windows().ToNative(input.VcRfKill); ok {
		t.Error("linux-only vcode mapped to a windows key")
	}
}

func TestDarwinMissReturnsUndefinedKey(t *testing.T) {
	if kv := DarwinToNative(input.VcRfKill); kv != DarwinUndefined {
		t.Errorf("got %#04x, want DarwinUndefined", kv)
	}
}

func TestX11LazyLoad(t *testing.T) {
	tbl := NewX11Table()

	// Before load nothing matches.
	if vc := tbl.ToVcode(38); vc != input.VcUndefined {
		t.Errorf("unloaded table matched keycode: %#04x", uint16(vc))
	}
	if _, ok := tbl.ToNative(input.VcA); ok {
		t.Error("unloaded table produced a native keycode")
	}

	// A server name map in the common evdev numbering, partial on purpose.
	codes := map[string]uint8{
		"ESC": 9, "AE01": 10, "AC01": 38, "RTRN": 36, "LFSH": 50,
		"LWIN": 133, "KPEN": 104,
	}
	tbl.Load(func(name string) uint8 { return codes[name] })

	if !tbl.Loaded() {
		t.Fatal("table not marked loaded")
	}
	if vc := tbl.ToVcode(38); vc != input.VcA {
		t.Errorf("keycode 38: got %#04x, want VcA", uint16(vc))
	}
	if code, ok := tbl.ToNative(input.VcEnter); !ok || code != 36 {
		t.Errorf("VcEnter: got %d ok=%v, want 36", code, ok)
	}

	// Names the server does not define stay unresolved.
	if vc := tbl.ToVcode(0); vc != input.VcUndefined {
		t.Error("keycode 0 matched an unresolved row")
	}
	if _, ok := tbl.ToNative(input.VcRfKill); ok {
		t.Error("unresolved name produced a native keycode")
	}

	// Load is a one-shot; a second resolver must not overwrite.
	tbl.Load(func(string) uint8 { return 1 })
	if code, _ := tbl.ToNative(input.VcEnter); code != 36 {
		t.Error("second Load overwrote the keycode column")
	}
}

func TestX11MultiNameCodesPickFirstLoadedName(t *testing.T) {
	tbl := NewX11Table()
	// Both LWIN and LMTA resolve; LWIN is the earlier row and must win the
	// reverse lookup.
	codes := map[string]uint8{"LWIN": 133, "LMTA": 205}
	tbl.Load(func(name string) uint8 { return codes[name] })

	if code, ok := tbl.ToNative(input.VcMetaL); !ok || code != 133 {
		t.Errorf("VcMetaL: got %d, want 133", code)
	}
	// Forward direction still accepts both.
	if vc := tbl.ToVcode(205); vc != input.VcMetaL {
		t.Errorf("keycode 205: got %#04x, want VcMetaL", uint16(vc))
	}
}
