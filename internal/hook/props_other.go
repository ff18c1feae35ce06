//go:build (darwin && !cgo) || (linux && !cgo) || !(windows || darwin || linux)

package hook

import "time"

func MultiClickTime() time.Duration { return 500 * time.Millisecond }

func AutoRepeatRate() (int, bool) { return 0, false }

func AutoRepeatDelay() (time.Duration, bool) { return 0, false }

func PointerSensitivity() (int, bool) { return 0, false }

func PointerAcceleration() (multiplier, threshold int, ok bool) { return 0, 0, false }
