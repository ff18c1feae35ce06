// Package hook is the public surface of inputtap: global input capture,
// event and text synthesis, and the system input properties callers need
// to interpret what they capture.
//
// The package re-exports the capture session and posting entry points so
// applications depend on a single import. See package input for the
// portable event model the session delivers and Post consumes.
package hook

import (
	"context"
	"time"

	internal "inputtap/internal/hook"
	"inputtap/internal/post"
	"inputtap/internal/screen"
	"inputtap/pkg/input"
)

// Capture errors.
var (
	// ErrAlreadyRunning is returned by Run when the session is active.
	ErrAlreadyRunning = internal.ErrAlreadyRunning

	// ErrNotRunning is returned by Stop when there is nothing to stop.
	ErrNotRunning = internal.ErrNotRunning

	// ErrNotAvailable means no capture backend exists for this build.
	ErrNotAvailable = internal.ErrNotAvailable

	// ErrFailure covers platform failures with no more specific cause.
	ErrFailure = internal.ErrFailure
)

// Platform-specific capture failures, matchable with errors.Is against
// the error Run returns.
var (
	ErrXOpenDisplay         = internal.ErrXOpenDisplay
	ErrXRecordNotFound      = internal.ErrXRecordNotFound
	ErrXRecordAllocRange    = internal.ErrXRecordAllocRange
	ErrXRecordCreateContext = internal.ErrXRecordCreateContext
	ErrXRecordEnableContext = internal.ErrXRecordEnableContext

	ErrSetWindowsHook  = internal.ErrSetWindowsHook
	ErrGetModuleHandle = internal.ErrGetModuleHandle

	ErrAXAPIDisabled       = internal.ErrAXAPIDisabled
	ErrCreateEventPort     = internal.ErrCreateEventPort
	ErrCreateRunLoopSource = internal.ErrCreateRunLoopSource
	ErrGetRunLoop          = internal.ErrGetRunLoop
)

// Posting errors.
var (
	// ErrEmptyText is returned when there is nothing to type.
	ErrEmptyText = post.ErrEmptyText

	// ErrUnsupported is returned for event kinds that cannot be
	// synthesized, such as the hook lifecycle brackets.
	ErrUnsupported = post.ErrUnsupported

	// ErrNoSpareKeycode means the keyboard mapping has no unused slot
	// to remap for text posting.
	ErrNoSpareKeycode = post.ErrNoSpareKeycode

	// ErrFailedSend means the platform accepted the request but did not
	// inject all of it.
	ErrFailedSend = post.ErrFailedSend

	// ErrPostNotAvailable means no synthesis backend exists for this
	// build.
	ErrPostNotAvailable = post.ErrNotAvailable
)

// Dispatcher consumes captured events. It runs on the session's
// dispatch goroutine, never on the capture thread.
type Dispatcher = internal.Dispatcher

// Options configures a capture session.
type Options = internal.Options

// Session is a single capture lifecycle.
type Session = internal.Session

// DefaultOptions captures both device classes with system settings.
func DefaultOptions() Options { return internal.DefaultOptions() }

// NewSession creates a session; capture starts on Run.
func NewSession(opts Options) *Session { return internal.NewSession(opts) }

// Post injects one event into the running desktop session. The event's
// modifier mask is not applied: callers wanting modified input post the
// modifier transitions themselves, mirroring what real devices produce.
func Post(ctx context.Context, ev *input.Event) error {
	return post.Post(ctx, ev)
}

// PostText types a string into the focused application.
func PostText(ctx context.Context, text string) error {
	return post.PostText(ctx, text)
}

// TextPostingDelay returns the settle delay between remapping a key and
// pressing it during text posting.
func TextPostingDelay() time.Duration { return post.TextPostingDelay() }

// SetTextPostingDelay adjusts the per-character settle delay. Zero
// disables the wait; negative values are clamped to zero.
func SetTextPostingDelay(d time.Duration) { post.SetTextPostingDelay(d) }

// AccessibilityTrusted reports whether the process may observe and
// synthesize input. Only darwin gates this; when prompt is true the
// system permission dialog is raised for an untrusted process. Other
// platforms always report true.
func AccessibilityTrusted(prompt bool) bool {
	return internal.AccessibilityTrusted(prompt)
}

// Screens re-enumerates the attached monitors and returns them. The
// first entry is the primary display.
func Screens() []input.Screen {
	return screen.Refresh().Screens()
}

// MultiClickTime returns the system double-click interval, falling back
// to 500ms where the system does not expose one.
func MultiClickTime() time.Duration { return internal.MultiClickTime() }

// AutoRepeatRate returns the keyboard auto-repeat rate in characters
// per second. ok is false when the system does not expose it.
func AutoRepeatRate() (rate int, ok bool) { return internal.AutoRepeatRate() }

// AutoRepeatDelay returns the delay before keyboard auto-repeat starts.
// ok is false when the system does not expose it.
func AutoRepeatDelay() (delay time.Duration, ok bool) { return internal.AutoRepeatDelay() }

// PointerSensitivity returns the system pointer speed setting. ok is
// false when the system does not expose it.
func PointerSensitivity() (sensitivity int, ok bool) { return internal.PointerSensitivity() }

// PointerAcceleration returns the pointer acceleration multiplier and
// the movement threshold at which it kicks in. ok is false when the
// system does not expose them.
func PointerAcceleration() (multiplier, threshold int, ok bool) {
	return internal.PointerAcceleration()
}
