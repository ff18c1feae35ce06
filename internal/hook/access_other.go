//go:build !darwin || !cgo

package hook

// AccessibilityTrusted reports whether the process may observe input.
// Only darwin gates capture behind a per-process grant; everywhere else
// this is unconditionally true.
func AccessibilityTrusted(prompt bool) bool { return true }
