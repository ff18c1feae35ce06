// Package keycode maps portable keycodes to and from native platform key
// numbers. The tables are plain data with no platform imports so every
// lookup path can be exercised on any build host; the hook and post
// backends pick the table for the platform they run on.
//
// Tables are ordered and lookups are first match in both directions. Some
// native keys appear under more than one portable code (and the other way
// around); row order decides which one wins, so rows must not be reordered.
package keycode

import "inputtap/pkg/input"

// Pair binds a portable keycode to a native key number.
type Pair struct {
	Vc     input.Keycode
	Native uint16
}

// Table performs first-match linear lookups over an ordered pair list.
type Table struct {
	pairs []Pair
}

// NewTable wraps an ordered pair list. The slice is not copied; callers
// must not mutate it afterwards.
func NewTable(pairs []Pair) *Table {
	return &Table{pairs: pairs}
}

// ToVcode returns the portable keycode for a native key, or VcUndefined.
func (t *Table) ToVcode(native uint16) input.Keycode {
	for _, p := range t.pairs {
		if p.Native == native {
			return p.Vc
		}
	}
	return input.VcUndefined
}

// ToNative returns the native key for a portable keycode. ok is false when
// the platform has no key for this code.
func (t *Table) ToNative(vc input.Keycode) (native uint16, ok bool) {
	for _, p := range t.pairs {
		if p.Vc == vc {
			return p.Native, true
		}
	}
	return 0, false
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.pairs) }

// Rows returns the backing pair list for table-driven tests.
func (t *Table) Rows() []Pair { return t.pairs }
