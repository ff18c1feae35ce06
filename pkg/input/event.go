// Package input defines the portable event model shared by the hook and
// synthesis sides of inputtap. Events captured from the OS and events handed
// to the poster use the same types, so a captured event can be replayed
// unchanged.
package input

import (
	"fmt"
	"time"
)

// Kind identifies what an Event describes. The numeric values are part of the
// journal format and must not be reordered.
type Kind uint8

const (
	HookEnabled Kind = iota + 1
	HookDisabled
	KeyTyped
	KeyPressed
	KeyReleased
	MouseClicked
	MousePressed
	MouseReleased
	MouseMoved
	MouseDragged
	MouseWheel

	// Synthesis-only variants. The hook never emits these; the poster accepts
	// them to inject button events without warping the cursor, or to move the
	// pointer relative to its current position.
	MousePressedIgnoreCoords
	MouseReleasedIgnoreCoords
	MouseMovedRelativeToCursor
)

var kindNames = map[Kind]string{
	HookEnabled:                "hook-enabled",
	HookDisabled:               "hook-disabled",
	KeyTyped:                   "key-typed",
	KeyPressed:                 "key-pressed",
	KeyReleased:                "key-released",
	MouseClicked:               "mouse-clicked",
	MousePressed:               "mouse-pressed",
	MouseReleased:              "mouse-released",
	MouseMoved:                 "mouse-moved",
	MouseDragged:               "mouse-dragged",
	MouseWheel:                 "mouse-wheel",
	MousePressedIgnoreCoords:   "mouse-pressed-ignore-coords",
	MouseReleasedIgnoreCoords:  "mouse-released-ignore-coords",
	MouseMovedRelativeToCursor: "mouse-moved-relative",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsKeyboard reports whether events of this kind carry a Key payload.
func (k Kind) IsKeyboard() bool {
	switch k {
	case KeyTyped, KeyPressed, KeyReleased:
		return true
	}
	return false
}

// IsMouse reports whether events of this kind carry a Mouse payload.
func (k Kind) IsMouse() bool {
	switch k {
	case MouseClicked, MousePressed, MouseReleased, MouseMoved, MouseDragged,
		MousePressedIgnoreCoords, MouseReleasedIgnoreCoords, MouseMovedRelativeToCursor:
		return true
	}
	return false
}

// Key is the payload for KeyTyped, KeyPressed and KeyReleased events.
type Key struct {
	Code Keycode // portable keycode
	Raw  uint16  // platform keycode the event arrived with
	Char rune    // resolved character for KeyTyped, CharUndefined otherwise
}

// Mouse is the payload for button and motion events.
type Mouse struct {
	Button uint16
	Clicks uint16
	X, Y   int16
}

// Wheel is the payload for MouseWheel events. Rotation is signed and scaled
// by 100 on platforms with sub-line precision; Amount is the lines (or pages,
// for BlockScroll) covered by one full rotation step.
type Wheel struct {
	Clicks    uint16
	X, Y      int16
	Type      uint8
	Amount    uint16
	Rotation  int16
	Direction uint8
}

const (
	UnitScroll  = 1
	BlockScroll = 2

	VerticalDirection   = 3
	HorizontalDirection = 4
)

// Mouse button identifiers used in Mouse.Button and the Mask button bits.
const (
	NoButton = iota
	Button1  // left
	Button2  // right
	Button3  // middle
	Button4
	Button5
)

// Event is a single captured or synthesized input event. Exactly one of Key,
// Mouse, Wheel is meaningful, selected by Kind; the others are zero.
type Event struct {
	Kind     Kind
	When     time.Time
	Mask     Mask
	Reserved uint16

	Key   Key
	Mouse Mouse
	Wheel Wheel
}

func (e *Event) String() string {
	switch {
	case e.Kind.IsKeyboard():
		return fmt.Sprintf("%s code=%#04x raw=%#04x char=%q mask=%s",
			e.Kind, uint16(e.Key.Code), e.Key.Raw, e.Key.Char, e.Mask)
	case e.Kind == MouseWheel:
		return fmt.Sprintf("%s rotation=%d amount=%d dir=%d at=(%d,%d) mask=%s",
			e.Kind, e.Wheel.Rotation, e.Wheel.Amount, e.Wheel.Direction,
			e.Wheel.X, e.Wheel.Y, e.Mask)
	case e.Kind.IsMouse():
		return fmt.Sprintf("%s button=%d clicks=%d at=(%d,%d) mask=%s",
			e.Kind, e.Mouse.Button, e.Mouse.Clicks, e.Mouse.X, e.Mouse.Y, e.Mask)
	default:
		return e.Kind.String()
	}
}
