//go:build (darwin && !cgo) || (linux && !cgo) || !(windows || darwin || linux)

package textres

import "context"

// PlatformMode reports how the translator must be driven on this OS.
func PlatformMode() Mode { return Direct }

// NewPlatform returns a coordinator that resolves every key to no text.
// Builds without the platform toolchain still hook and classify events;
// they just never synthesize key-typed events.
func NewPlatform() *Coordinator {
	return NewCoordinator(Direct, func(ctx context.Context, req Request) ([]uint16, error) {
		return nil, nil
	})
}
