//go:build (darwin && !cgo) || (linux && !cgo) || !(windows || darwin || linux)

package post

import (
	"context"

	"inputtap/pkg/input"
)

const defaultTextDelay = 0

func postKey(context.Context, *input.Event) error { return ErrNotAvailable }

func postText(_ context.Context, text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return ErrNotAvailable
}

func postButton(context.Context, *input.Event, bool) error { return ErrNotAvailable }

func postMotion(context.Context, *input.Event, bool) error { return ErrNotAvailable }

func postWheel(context.Context, *input.Event) error { return ErrNotAvailable }
