package hook

import (
	"context"
	"time"

	"inputtap/internal/modifiers"
	"inputtap/internal/textres"
	"inputtap/pkg/input"
)

// emitFunc receives fully classified events from a processor.
type emitFunc func(*input.Event)

// processor turns raw platform reports into the portable event stream.
// It owns modifier state, consecutive-click counting and drag
// classification, and synthesizes KeyTyped events from resolved text.
// Backends call it from their capture thread; it is not safe for
// concurrent use.
type processor struct {
	tracker  *modifiers.Tracker
	resolver *textres.Coordinator
	emit     emitFunc

	clickInterval time.Duration
	clickCount    uint16
	clickButton   uint16
	clickTime     time.Time
	dragged       bool

	// held covers every pressed button, including the extras past
	// button 5 that have no mask bit.
	held map[uint16]struct{}
}

func newProcessor(tracker *modifiers.Tracker, resolver *textres.Coordinator, clickInterval time.Duration, emit emitFunc) *processor {
	if clickInterval <= 0 {
		clickInterval = 500 * time.Millisecond
	}
	return &processor{
		tracker:       tracker,
		resolver:      resolver,
		emit:          emit,
		clickInterval: clickInterval,
		held:          make(map[uint16]struct{}),
	}
}

// Key reports a key transition. raw is the platform keycode; scan is
// the hardware scan code on platforms that report one separately, zero
// elsewhere. The modifier mask is updated before the event is emitted,
// so the mask always reflects the state after the transition. A key
// press is followed by one KeyTyped event per UTF-16 unit of the
// resolved text.
func (p *processor) Key(ctx context.Context, down bool, code input.Keycode, raw, scan uint16, when time.Time) {
	if down {
		p.tracker.KeyDown(code)
		mask := p.tracker.Current()
		p.emit(&input.Event{
			Kind: input.KeyPressed,
			When: when,
			Mask: mask,
			Key:  input.Key{Code: code, Raw: raw, Char: input.CharUndefined},
		})
		p.typed(ctx, raw, scan, mask, when)
		return
	}

	p.tracker.KeyUp(code)
	p.emit(&input.Event{
		Kind: input.KeyReleased,
		When: when,
		Mask: p.tracker.Current(),
		Key:  input.Key{Code: code, Raw: raw, Char: input.CharUndefined},
	})
}

// typed resolves the pressed key to text and emits one KeyTyped per
// UTF-16 unit. The translators work in platform keycodes, so they get
// the raw code, not the portable one. Dead keys and unmapped keys
// resolve to nothing.
func (p *processor) typed(ctx context.Context, raw, scan uint16, mask input.Mask, when time.Time) {
	if p.resolver == nil {
		return
	}
	units, err := p.resolver.Resolve(ctx, textres.Request{
		Keycode: raw,
		Raw:     scan,
		Mask:    mask,
		KeyDown: true,
	})
	if err != nil {
		return
	}
	for _, unit := range units {
		p.emit(&input.Event{
			Kind: input.KeyTyped,
			When: when,
			Mask: mask,
			Key:  input.Key{Code: input.VcUndefined, Raw: raw, Char: rune(unit)},
		})
	}
}

// Button reports a button transition. Presses within the multi-click
// interval on the same button accumulate the click count; a release
// that was not preceded by a drag also emits MouseClicked.
func (p *processor) Button(down bool, button uint16, x, y int16, when time.Time) {
	if down {
		if button != p.clickButton || when.Sub(p.clickTime) > p.clickInterval {
			p.clickCount = 0
		}
		p.clickCount++
		p.clickButton = button
		p.clickTime = when
		p.dragged = false

		p.held[button] = struct{}{}
		p.tracker.ButtonDown(button)
		p.emit(&input.Event{
			Kind:  input.MousePressed,
			When:  when,
			Mask:  p.tracker.Current(),
			Mouse: input.Mouse{Button: button, Clicks: p.clickCount, X: x, Y: y},
		})
		return
	}

	delete(p.held, button)
	p.tracker.ButtonUp(button)
	mask := p.tracker.Current()
	p.emit(&input.Event{
		Kind:  input.MouseReleased,
		When:  when,
		Mask:  mask,
		Mouse: input.Mouse{Button: button, Clicks: p.clickCount, X: x, Y: y},
	})
	if !p.dragged {
		p.emit(&input.Event{
			Kind:  input.MouseClicked,
			When:  when,
			Mask:  mask,
			Mouse: input.Mouse{Button: button, Clicks: p.clickCount, X: x, Y: y},
		})
	}
}

// Motion reports pointer movement. Movement with any button held is a
// drag; movement outside the multi-click interval resets the click run.
func (p *processor) Motion(x, y int16, when time.Time) {
	if p.clickCount != 0 && when.Sub(p.clickTime) > p.clickInterval {
		p.clickCount = 0
	}

	// The mask check picks up buttons held before the hook was
	// installed; the held set covers the extras with no mask bit.
	mask := p.tracker.Current()
	p.dragged = len(p.held) != 0 || mask&input.MaskButtonAny != 0

	kind := input.MouseMoved
	if p.dragged {
		kind = input.MouseDragged
	}
	p.emit(&input.Event{
		Kind:  kind,
		When:  when,
		Mask:  mask,
		Mouse: input.Mouse{Button: input.NoButton, Clicks: p.clickCount, X: x, Y: y},
	})
}

// Wheel reports scroll activity. Scrolls participate in the click run
// the same way presses do, without changing the pressed button.
func (p *processor) Wheel(x, y int16, scrollType uint8, amount uint16, rotation int16, direction uint8, when time.Time) {
	if when.Sub(p.clickTime) > p.clickInterval || p.clickCount == 0 {
		p.clickCount = 1
	}
	p.clickTime = when

	p.emit(&input.Event{
		Kind: input.MouseWheel,
		When: when,
		Mask: p.tracker.Current(),
		Wheel: input.Wheel{
			Clicks:    p.clickCount,
			X:         x,
			Y:         y,
			Type:      scrollType,
			Amount:    amount,
			Rotation:  rotation,
			Direction: direction,
		},
	})
}
