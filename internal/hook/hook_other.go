//go:build (darwin && !cgo) || (linux && !cgo) || !(windows || darwin || linux)

package hook

import (
	"context"

	"inputtap/internal/textres"
	"inputtap/pkg/input"
)

// No capture backend exists for this build.
func runBackend(ctx context.Context, opts Options, proc *processor, _ *textres.Coordinator) error {
	return ErrNotAvailable
}

func seedModifiers() input.Mask { return 0 }
