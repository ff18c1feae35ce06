package post

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records every mapping and key operation so the remap
// choreography can be asserted without an X server.
type fakeConn struct {
	min, max uint8
	bound    map[uint8]uint32 // current non-empty bindings
	ops      []string
	remaps   []uint32

	sendErr    error // returned from the failDownAt-th press
	failDownAt int
	downs      int
}

func newFakeConn(min, max uint8, used map[uint8]uint32) *fakeConn {
	bound := make(map[uint8]uint32, len(used))
	for code, sym := range used {
		bound[code] = sym
	}
	return &fakeConn{min: min, max: max, bound: bound}
}

func (f *fakeConn) KeycodeRange() (uint8, uint8) { return f.min, f.max }

func (f *fakeConn) Keysyms(code uint8) ([]uint32, error) {
	if sym, ok := f.bound[code]; ok {
		return []uint32{sym, sym, sym, sym}, nil
	}
	return []uint32{noSymbol, noSymbol, noSymbol, noSymbol}, nil
}

func (f *fakeConn) Remap(code uint8, sym uint32) error {
	if sym == noSymbol {
		delete(f.bound, code)
		f.ops = append(f.ops, "restore")
		return nil
	}
	f.bound[code] = sym
	f.remaps = append(f.remaps, sym)
	f.ops = append(f.ops, "remap")
	return nil
}

func (f *fakeConn) SendKey(code uint8, down bool) error {
	if _, ok := f.bound[code]; !ok {
		// Pressing an unmapped keycode types nothing.
		f.ops = append(f.ops, "press-unmapped")
		return nil
	}
	if down {
		f.downs++
		if f.failDownAt != 0 && f.downs == f.failDownAt {
			f.ops = append(f.ops, "down-failed")
			return f.sendErr
		}
		f.ops = append(f.ops, "down")
	} else {
		f.ops = append(f.ops, "up")
	}
	return nil
}

func (f *fakeConn) Sync() error {
	f.ops = append(f.ops, "sync")
	return nil
}

func TestPostTextRunsOneRemapCyclePerChar(t *testing.T) {
	conn := newFakeConn(8, 255, map[uint8]uint32{10: 'a'})
	r := newRemapper(conn)
	r.delay = func() time.Duration { return 0 }

	require.NoError(t, r.postText(context.Background(), "héllo"))

	cycle := []string{"remap", "sync", "down", "up", "sync", "restore", "sync"}
	var want []string
	for i := 0; i < 5; i++ {
		want = append(want, cycle...)
	}
	assert.Equal(t, want, conn.ops)
	_, stillBound := conn.bound[255]
	assert.False(t, stillBound, "mapping restored after the last character")
}

func TestPostTextKeysyms(t *testing.T) {
	conn := newFakeConn(8, 255, nil)
	r := newRemapper(conn)
	r.delay = func() time.Duration { return 0 }

	require.NoError(t, r.postText(context.Background(), "Aé→𝔘"))

	assert.Equal(t, []uint32{
		'A',                  // ASCII is its own keysym
		0xE9,                 // Latin-1 stays direct
		0x01000000 | 0x2192,  // BMP beyond Latin-1
		0x01000000 | 0x1D518, // outside the BMP
	}, conn.remaps)
}

func TestSpareKeycodeScansHighToLow(t *testing.T) {
	used := map[uint8]uint32{}
	for code := 200; code <= 255; code++ {
		used[uint8(code)] = 'x'
	}
	conn := newFakeConn(8, 255, used)

	code, err := newRemapper(conn).spareKeycode()
	require.NoError(t, err)
	assert.Equal(t, uint8(199), code)
}

func TestPostTextFailsWhenMappingIsFull(t *testing.T) {
	used := map[uint8]uint32{}
	for code := 8; code <= 255; code++ {
		used[uint8(code)] = 'x'
	}
	conn := newFakeConn(8, 255, used)

	err := newRemapper(conn).postText(context.Background(), "a")
	assert.ErrorIs(t, err, ErrNoSpareKeycode)
}

func TestPostTextEmpty(t *testing.T) {
	conn := newFakeConn(8, 255, nil)
	err := newRemapper(conn).postText(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Empty(t, conn.ops)
}

func TestPostTextStopsAtMidSequenceFailure(t *testing.T) {
	conn := newFakeConn(8, 255, nil)
	conn.sendErr = errors.New("send failed")
	conn.failDownAt = 3
	r := newRemapper(conn)
	r.delay = func() time.Duration { return 0 }

	err := r.postText(context.Background(), "abcde")
	require.ErrorIs(t, err, conn.sendErr)
	assert.Contains(t, err.Error(), "'c'", "error names the character that failed")

	// The first two characters went out in full; nothing after the
	// failure was attempted.
	cycle := []string{"remap", "sync", "down", "up", "sync", "restore", "sync"}
	var want []string
	for i := 0; i < 2; i++ {
		want = append(want, cycle...)
	}
	want = append(want, "remap", "sync", "down-failed", "restore", "sync")
	assert.Equal(t, want, conn.ops)

	_, stillBound := conn.bound[255]
	assert.False(t, stillBound, "binding cleared after the failure")
}

func TestPostTextHonorsCancellation(t *testing.T) {
	conn := newFakeConn(8, 255, nil)
	r := newRemapper(conn)
	r.delay = func() time.Duration { return time.Hour }

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := r.postText(ctx, "ab")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, conn.ops, "down", "no press after cancellation")
	assert.Equal(t, "restore", conn.ops[len(conn.ops)-2], "binding cleared on the way out")
}
