package hook

import "errors"

// Sentinel errors reported by hook sessions. Platform backends wrap these
// with detail about the failing call so errors.Is keeps working across the
// public surface.
var (
	// ErrFailure covers platform failures with no more specific cause.
	ErrFailure = errors.New("hook: platform failure")

	// ErrAlreadyRunning is returned by Run when the session is active.
	ErrAlreadyRunning = errors.New("hook: session already running")

	// ErrNotRunning is returned by Stop when the session is idle.
	ErrNotRunning = errors.New("hook: session not running")

	// ErrNotAvailable means no capture backend exists for this build.
	ErrNotAvailable = errors.New("hook: capture not available on this platform")

	// X11 backend failures.
	ErrXOpenDisplay         = errors.New("hook: cannot open X display")
	ErrXRecordNotFound      = errors.New("hook: XRecord extension not found")
	ErrXRecordAllocRange    = errors.New("hook: cannot allocate XRecord range")
	ErrXRecordCreateContext = errors.New("hook: cannot create XRecord context")
	ErrXRecordEnableContext = errors.New("hook: cannot enable XRecord context")

	// Windows backend failures.
	ErrSetWindowsHook  = errors.New("hook: SetWindowsHookEx failed")
	ErrGetModuleHandle = errors.New("hook: GetModuleHandle failed")

	// Darwin backend failures.
	ErrAXAPIDisabled       = errors.New("hook: accessibility API disabled")
	ErrCreateEventPort     = errors.New("hook: cannot create event tap port")
	ErrCreateRunLoopSource = errors.New("hook: cannot create run loop source")
	ErrGetRunLoop          = errors.New("hook: cannot obtain run loop")
)
