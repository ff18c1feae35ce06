package textres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalledResolveRunsOnCoordinator(t *testing.T) {
	calls := make(chan Request, 1)
	c := NewCoordinator(Marshalled, func(ctx context.Context, req Request) ([]uint16, error) {
		calls <- req
		return []uint16{'a'}, nil
	})
	defer c.Close()

	units, err := c.Resolve(context.Background(), Request{Keycode: 30, KeyDown: true})
	require.NoError(t, err)
	assert.Equal(t, []uint16{'a'}, units)

	select {
	case req := <-calls:
		assert.Equal(t, uint16(30), req.Keycode)
	default:
		t.Fatal("translator never ran")
	}
}

// A translator that itself needs a translation (the platform pumps a
// nested event through the session) must not deadlock on its own queue.
func TestResolveFromCoordinatorShortCircuits(t *testing.T) {
	var c *Coordinator
	depth := 0
	c = NewCoordinator(Marshalled, func(ctx context.Context, req Request) ([]uint16, error) {
		depth++
		if depth == 1 {
			return c.Resolve(ctx, Request{Keycode: req.Keycode + 1})
		}
		return []uint16{uint16(req.Keycode)}, nil
	})
	defer c.Close()

	done := make(chan struct{})
	var units []uint16
	var err error
	go func() {
		units, err = c.Resolve(context.Background(), Request{Keycode: 10})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nested resolve deadlocked")
	}
	require.NoError(t, err)
	assert.Equal(t, []uint16{11}, units)
}

func TestDirectModeNeverBlocks(t *testing.T) {
	c := NewCoordinator(Direct, func(ctx context.Context, req Request) ([]uint16, error) {
		return []uint16{'x'}, nil
	})
	defer c.Close()

	// No goroutine services the task channel in direct mode; Resolve must
	// still complete.
	units, err := c.Resolve(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []uint16{'x'}, units)
}

func TestResolveAfterClose(t *testing.T) {
	c := NewCoordinator(Marshalled, func(ctx context.Context, req Request) ([]uint16, error) {
		return nil, nil
	})
	c.Close()
	c.Close() // idempotent

	_, err := c.Resolve(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestResolveHonorsContextCancel(t *testing.T) {
	block := make(chan struct{})
	c := NewCoordinator(Marshalled, func(ctx context.Context, req Request) ([]uint16, error) {
		<-block
		return nil, nil
	})
	defer func() { close(block); c.Close() }()

	// Occupy the coordinator so the second request queues.
	go c.Resolve(context.Background(), Request{}) //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Resolve(ctx, Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFilterControl(t *testing.T) {
	for _, u := range []uint16{0x01, 0x04, 0x05, 0x10, 0x0B, 0x0C, 0x1F} {
		assert.Nil(t, FilterControl([]uint16{u}), "unit %#02x should filter", u)
	}
	assert.Equal(t, []uint16{'a'}, FilterControl([]uint16{'a'}))
	// Multi-unit results pass through even when they start with a control.
	assert.Equal(t, []uint16{0x01, 'b'}, FilterControl([]uint16{0x01, 'b'}))
}

func TestFoldUpper(t *testing.T) {
	assert.Equal(t, UTF16FromString("ÉA"), FoldUpper(UTF16FromString("éa")))
	// Surrogate pairs survive the fold.
	assert.Equal(t, UTF16FromString("𝔘"), FoldUpper(UTF16FromString("𝔘")))
	assert.Equal(t, UTF16FromString("𐐀"), FoldUpper(UTF16FromString("𐐨")))
}

func TestUTF16SurrogatePairs(t *testing.T) {
	units := UTF16FromString("𝔘")
	require.Len(t, units, 2)
	assert.True(t, units[0] >= 0xD800 && units[0] <= 0xDBFF)
	assert.True(t, units[1] >= 0xDC00 && units[1] <= 0xDFFF)
}

func TestDeadKeySlotResetsOnLayoutChange(t *testing.T) {
	var dk DeadKey

	state := dk.Enter("com.apple.keylayout.US-International")
	*state = 0x1234 // translator recorded a pending dead key
	require.True(t, dk.Pending())

	// Same layout: the slot persists for the combining character.
	state = dk.Enter("com.apple.keylayout.US-International")
	assert.Equal(t, uint32(0x1234), *state)

	// Layout switch invalidates the pending state.
	state = dk.Enter("com.apple.keylayout.French")
	assert.Equal(t, uint32(0), *state)
	assert.False(t, dk.Pending())
}
