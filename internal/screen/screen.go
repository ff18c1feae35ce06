// Package screen tracks the monitor arrangement and converts between
// virtual-desktop pixels and the absolute 16-bit coordinate space used
// for injected motion events.
//
// Displays are process-global state, so the package keeps one cached
// layout. The hook backend refreshes it when the OS reports a display
// change; everything else reads the cache.
package screen

import (
	"sync"

	"inputtap/pkg/input"
)

// AbsoluteMax is the top of the normalized coordinate space injected
// motion events use.
const AbsoluteMax = 65535

// Layout is one snapshot of the monitor arrangement.
type Layout struct {
	screens       []input.Screen
	left, top     int // largest negative origin, <= 0
	width, height int // virtual desktop extent
}

// NewLayout computes the virtual-desktop geometry of a set of screens.
// A monitor left of or above the primary gives the desktop a negative
// origin; the layout records it so absolute coordinates can be shifted
// into positive space before scaling.
func NewLayout(screens []input.Screen) *Layout {
	l := &Layout{screens: screens}

	var right, bottom int
	for _, s := range screens {
		if int(s.X) < l.left {
			l.left = int(s.X)
		}
		if int(s.Y) < l.top {
			l.top = int(s.Y)
		}
		if r := int(s.X) + int(s.Width); r > right {
			right = r
		}
		if b := int(s.Y) + int(s.Height); b > bottom {
			bottom = b
		}
	}
	l.width = right - l.left
	l.height = bottom - l.top
	return l
}

// Screens returns the snapshot's monitors.
func (l *Layout) Screens() []input.Screen { return l.screens }

// Offset returns the largest negative origin of the arrangement. Both
// values are zero or negative.
func (l *Layout) Offset() (left, top int) { return l.left, l.top }

// Size returns the virtual desktop extent in pixels.
func (l *Layout) Size() (width, height int) { return l.width, l.height }

// Normalize maps a virtual-desktop pixel position into 0..AbsoluteMax
// space. The desktop's top-left corner, negative origins included, maps
// to (0,0).
func (l *Layout) Normalize(x, y int) (nx, ny int) {
	if l.width <= 0 || l.height <= 0 {
		return 0, 0
	}
	return mulDiv(x-l.left, AbsoluteMax, l.width), mulDiv(y-l.top, AbsoluteMax, l.height)
}

// mulDiv scales with round-to-nearest, like the win32 helper of the same
// name.
func mulDiv(v, num, den int) int {
	if den == 0 {
		return 0
	}
	n := v * num
	if (n < 0) != (den < 0) {
		return (n - den/2) / den
	}
	return (n + den/2) / den
}

var (
	mu      sync.RWMutex
	current *Layout
)

// Current returns the cached layout, enumerating displays on first use.
func Current() *Layout {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}
	return Refresh()
}

// Refresh re-enumerates displays and replaces the cached layout. Called
// by the hook backend on display-change notifications.
func Refresh() *Layout {
	l := NewLayout(enumerate())
	mu.Lock()
	current = l
	mu.Unlock()
	return l
}
