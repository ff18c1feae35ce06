// Package textres resolves key events to the UTF-16 text they produce
// under the active keyboard layout.
//
// Translation has to consult layout state that some platforms only expose
// on one particular thread, while hook callbacks arrive on another. The
// Coordinator owns that state on a dedicated goroutine and marshals
// requests to it over a channel; platforms whose translation calls are
// safe from any thread skip the marshalling entirely. Which path applies
// is decided once, when the session starts, not per event.
package textres

import (
	"context"
	"errors"
	"unicode"
	"unicode/utf16"

	"inputtap/pkg/input"
)

// Request carries one key event to the platform translator.
type Request struct {
	Keycode uint16 // native keycode
	Raw     uint16
	Mask    input.Mask
	KeyDown bool
}

// TranslateFunc performs the platform translation. Implementations may
// keep layout state between calls; the Coordinator guarantees all calls
// happen on one goroutine.
type TranslateFunc func(ctx context.Context, req Request) ([]uint16, error)

// ErrClosed is returned by Resolve after Close.
var ErrClosed = errors.New("textres: coordinator closed")

// Mode selects how requests reach the translator.
type Mode int

const (
	// Direct calls the translator inline on the caller's goroutine. Used
	// when the platform's translation API is thread safe.
	Direct Mode = iota
	// Marshalled forwards every request to the coordinator goroutine.
	Marshalled
)

type task struct {
	ctx   context.Context
	req   Request
	reply chan result
}

type result struct {
	units []uint16
	err   error
}

// Coordinator owns layout state and serializes access to the translator.
type Coordinator struct {
	mode      Mode
	translate TranslateFunc
	reset     func()
	tasks     chan task
	resets    chan struct{}
	closed    chan struct{}
}

type ctxKey struct{}

// onCoordinator marks a context as executing inside the coordinator
// goroutine, so nested Resolve calls run the translator directly instead
// of deadlocking on their own queue.
func onCoordinator(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, true)
}

func isOnCoordinator(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKey{}).(bool)
	return v
}

// NewCoordinator starts a coordinator in the given mode. Marshalled mode
// spawns the owning goroutine immediately.
func NewCoordinator(mode Mode, translate TranslateFunc) *Coordinator {
	c := &Coordinator{
		mode:      mode,
		translate: translate,
		tasks:     make(chan task),
		resets:    make(chan struct{}, 1),
		closed:    make(chan struct{}),
	}
	if mode == Marshalled {
		go c.run()
	}
	return c
}

// SetResetFunc installs the translator's layout-state reset. Must be set
// before the first Invalidate.
func (c *Coordinator) SetResetFunc(fn func()) { c.reset = fn }

// Invalidate asks the translator to drop layout-dependent state, for
// example after an external layout-change notification. The reset runs on
// the coordinator goroutine like any other work.
func (c *Coordinator) Invalidate() {
	if c.reset == nil {
		return
	}
	if c.mode == Direct {
		c.reset()
		return
	}
	select {
	case c.resets <- struct{}{}:
	default: // one pending reset is enough
	}
}

func (c *Coordinator) run() {
	for {
		select {
		case t := <-c.tasks:
			units, err := c.translate(onCoordinator(t.ctx), t.req)
			t.reply <- result{units: units, err: err}
		case <-c.resets:
			if c.reset != nil {
				c.reset()
			}
		case <-c.closed:
			return
		}
	}
}

// Resolve translates one key event. In Marshalled mode the call blocks
// until the coordinator goroutine has produced the reply; calls that are
// already executing on the coordinator run the translator inline.
func (c *Coordinator) Resolve(ctx context.Context, req Request) ([]uint16, error) {
	if c.mode == Direct || isOnCoordinator(ctx) {
		return c.translate(ctx, req)
	}

	t := task{ctx: ctx, req: req, reply: make(chan result, 1)}
	select {
	case c.tasks <- t:
	case <-c.closed:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-t.reply:
		return r.units, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the coordinator goroutine. Pending Resolve calls fail with
// ErrClosed.
func (c *Coordinator) Close() {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
}

// Control characters that some layouts emit for modifier chords. The
// original hook contract treats these single-unit results as no text.
var controlDenylist = map[uint16]bool{
	0x01: true, // home
	0x04: true, // end
	0x05: true, // help
	0x10: true, // function
	0x0B: true, // page up
	0x0C: true, // page down
	0x1F: true, // down arrow
}

// FilterControl drops single-unit results that are navigation control
// characters rather than text.
func FilterControl(units []uint16) []uint16 {
	if len(units) == 1 && controlDenylist[units[0]] {
		return nil
	}
	return units
}

// FoldUpper uppercases a UTF-16 result. Used when caps lock was stripped
// from the modifier state before translation so the base character comes
// back lowercase.
func FoldUpper(units []uint16) []uint16 {
	runes := utf16.Decode(units)
	for i, r := range runes {
		runes[i] = unicode.ToUpper(r)
	}
	return utf16.Encode(runes)
}

// UTF16FromString converts UTF-8 to UTF-16 code units, producing
// surrogate pairs for characters outside the basic plane.
func UTF16FromString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
