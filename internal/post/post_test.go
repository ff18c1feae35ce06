package post

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inputtap/pkg/input"
)

func TestPostTextEmptyString(t *testing.T) {
	err := PostText(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestPostRejectsLifecycleKinds(t *testing.T) {
	for _, kind := range []input.Kind{input.HookEnabled, input.HookDisabled, input.MouseClicked} {
		err := Post(context.Background(), &input.Event{Kind: kind})
		assert.ErrorIs(t, err, ErrUnsupported, kind.String())
	}
}

func TestPostDispatchesCoordFreeButtonKinds(t *testing.T) {
	// These kinds reach the platform backend rather than falling
	// through the kind switch. Off a desktop session the backend
	// reports its own error, which must not be the kind rejection.
	for _, kind := range []input.Kind{input.MousePressedIgnoreCoords, input.MouseReleasedIgnoreCoords} {
		ev := &input.Event{Kind: kind, Mouse: input.Mouse{Button: input.Button1}}
		err := Post(context.Background(), ev)
		assert.NotErrorIs(t, err, ErrUnsupported, kind.String())
	}
}

func TestDragButtonSurvivesOverlappingPresses(t *testing.T) {
	var s heldSet

	s.press(input.Button1)
	s.press(input.Button2)
	assert.Equal(t, uint16(input.Button1), s.dragButton())

	s.release(input.Button2)
	assert.Equal(t, uint16(input.Button1), s.dragButton(), "first press still held")

	s.release(input.Button1)
	assert.Equal(t, uint16(input.NoButton), s.dragButton())
}

func TestTextPostingDelayClampsNegative(t *testing.T) {
	old := TextPostingDelay()
	defer SetTextPostingDelay(old)

	SetTextPostingDelay(-time.Second)
	assert.Equal(t, time.Duration(0), TextPostingDelay())

	SetTextPostingDelay(25 * time.Millisecond)
	assert.Equal(t, 25*time.Millisecond, TextPostingDelay())
}
