// Package post synthesizes input: it injects portable events and types
// text into the running desktop session.
//
// Event posting uses SendInput on windows, CGEventPost on darwin and
// the XTest extension on x11. Text posting types arbitrary strings; on
// x11 this works by temporarily remapping a spare keycode to each
// character's keysym, since XTest can only press keys that exist in the
// current keyboard mapping.
package post

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"inputtap/pkg/input"
)

var (
	// ErrEmptyText is returned when there is nothing to type.
	ErrEmptyText = errors.New("post: empty text")

	// ErrUnsupported is returned for event kinds that cannot be
	// synthesized, such as the hook lifecycle brackets.
	ErrUnsupported = errors.New("post: unsupported event kind")

	// ErrNoSpareKeycode means the keyboard mapping has no unused slot
	// to remap for text posting.
	ErrNoSpareKeycode = errors.New("post: no spare keycode in keyboard mapping")

	// ErrFailedSend means the platform accepted the request but did not
	// inject all of it.
	ErrFailedSend = errors.New("post: event injection failed")

	// ErrNotAvailable means no synthesis backend exists for this build.
	ErrNotAvailable = errors.New("post: synthesis not available on this platform")
)

// textDelay is the settle time between remapping a key and pressing it,
// in nanoseconds. Only x11 needs it: the remap must round-trip through
// the server and any layout-tracking clients before the fake press.
var textDelay atomic.Int64

func init() {
	textDelay.Store(int64(defaultTextDelay))
}

// TextPostingDelay returns the current per-character settle delay.
func TextPostingDelay() time.Duration {
	return time.Duration(textDelay.Load())
}

// SetTextPostingDelay adjusts the per-character settle delay. Zero
// disables the wait; negative values are clamped to zero.
func SetTextPostingDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	textDelay.Store(int64(d))
}

// Post injects one event into the session. The event's modifier mask is
// not applied: callers wanting modified input post the modifier
// transitions themselves, mirroring what real devices produce.
func Post(ctx context.Context, ev *input.Event) error {
	switch ev.Kind {
	case input.KeyPressed, input.KeyReleased:
		return postKey(ctx, ev)
	case input.KeyTyped:
		return postText(ctx, string(ev.Key.Char))
	case input.MousePressed, input.MouseReleased:
		return postButton(ctx, ev, false)
	case input.MousePressedIgnoreCoords, input.MouseReleasedIgnoreCoords:
		return postButton(ctx, ev, true)
	case input.MouseMoved, input.MouseDragged:
		return postMotion(ctx, ev, false)
	case input.MouseMovedRelativeToCursor:
		return postMotion(ctx, ev, true)
	case input.MouseWheel:
		return postWheel(ctx, ev)
	default:
		return ErrUnsupported
	}
}

// PostText types a string into the focused application.
func PostText(ctx context.Context, text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return postText(ctx, text)
}
