package hook

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtap/pkg/input"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.Keyboard)
	assert.True(t, opts.Mouse)
	assert.Zero(t, opts.QueueSize, "queue size resolved at session construction")
}

func TestSessionBeforeRun(t *testing.T) {
	s := NewSession(DefaultOptions())
	require.NotNil(t, s)

	assert.False(t, s.Running())
	assert.Zero(t, s.Dropped())
	assert.ErrorIs(t, s.Stop(), ErrNotRunning)

	// A nil dispatcher discards events rather than panicking.
	s.SetDispatcher(nil)
}

func TestPostRejectsLifecycleKinds(t *testing.T) {
	ctx := context.Background()
	for _, kind := range []input.Kind{input.HookEnabled, input.HookDisabled, input.MouseClicked} {
		ev := &input.Event{Kind: kind, When: time.Now()}
		assert.ErrorIs(t, Post(ctx, ev), ErrUnsupported, "kind %v", kind)
	}
}

func TestPostTextEmpty(t *testing.T) {
	assert.ErrorIs(t, PostText(context.Background(), ""), ErrEmptyText)
}

func TestTextPostingDelayClamped(t *testing.T) {
	orig := TextPostingDelay()
	defer SetTextPostingDelay(orig)

	SetTextPostingDelay(25 * time.Millisecond)
	assert.Equal(t, 25*time.Millisecond, TextPostingDelay())

	SetTextPostingDelay(-time.Second)
	assert.Equal(t, time.Duration(0), TextPostingDelay())
}

func TestMultiClickTimePositive(t *testing.T) {
	assert.Positive(t, MultiClickTime())
}
