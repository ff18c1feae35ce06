package hook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtap/pkg/input"
)

func TestStopWhenIdle(t *testing.T) {
	s := NewSession(DefaultOptions())
	assert.ErrorIs(t, s.Stop(), ErrNotRunning)
	assert.False(t, s.Running())
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession(Options{})
	assert.Equal(t, 512, s.opts.QueueSize)
	assert.Positive(t, s.opts.ClickInterval)
}

func TestEnqueueDropsOnOverflowWithoutBlocking(t *testing.T) {
	s := NewSession(Options{QueueSize: 2})
	s.queue = make(chan input.Event, 2)

	for i := 0; i < 5; i++ {
		done := make(chan struct{})
		go func() {
			s.enqueue(&input.Event{Kind: input.MouseMoved})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("enqueue blocked on a full queue")
		}
	}

	assert.Equal(t, uint64(3), s.Dropped())
}

func TestDispatchLoopDeliversInOrderAndDrains(t *testing.T) {
	s := NewSession(Options{QueueSize: 8})
	s.queue = make(chan input.Event, 8)

	var got []input.Kind
	s.SetDispatcher(func(ev *input.Event) {
		got = append(got, ev.Kind)
	})

	drained := make(chan struct{})
	go s.dispatchLoop(drained)

	s.enqueue(&input.Event{Kind: input.HookEnabled})
	s.enqueue(&input.Event{Kind: input.KeyPressed})
	s.enqueue(&input.Event{Kind: input.HookDisabled})
	close(s.queue)

	select {
	case <-drained:
	case <-time.After(time.Second):
		t.Fatal("dispatch loop did not drain")
	}
	require.Equal(t, []input.Kind{input.HookEnabled, input.KeyPressed, input.HookDisabled}, got)
}

func TestNilDispatcherDiscards(t *testing.T) {
	s := NewSession(Options{QueueSize: 4})
	s.queue = make(chan input.Event, 4)
	s.SetDispatcher(nil)

	drained := make(chan struct{})
	go s.dispatchLoop(drained)

	s.enqueue(&input.Event{Kind: input.MouseMoved})
	close(s.queue)

	select {
	case <-drained:
	case <-time.After(time.Second):
		t.Fatal("dispatch loop did not drain")
	}
	assert.Equal(t, uint64(0), s.Dropped())
}
