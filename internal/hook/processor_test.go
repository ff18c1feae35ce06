package hook

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtap/internal/modifiers"
	"inputtap/internal/textres"
	"inputtap/pkg/input"
)

func collectProcessor(t *testing.T, translate textres.TranslateFunc) (*processor, *[]input.Event) {
	t.Helper()

	var resolver *textres.Coordinator
	if translate != nil {
		resolver = textres.NewCoordinator(textres.Direct, translate)
		t.Cleanup(resolver.Close)
	}

	events := &[]input.Event{}
	p := newProcessor(modifiers.NewTracker(0), resolver, 500*time.Millisecond, func(ev *input.Event) {
		*events = append(*events, *ev)
	})
	return p, events
}

func TestKeyPressEmitsTypedPerUTF16Unit(t *testing.T) {
	p, events := collectProcessor(t, func(ctx context.Context, req textres.Request) ([]uint16, error) {
		// A surrogate pair, the way a non-BMP character resolves.
		return []uint16{0xD835, 0xDD18}, nil
	})

	p.Key(context.Background(), true, input.VcA, 30, 0, time.Now())

	require.Len(t, *events, 3)
	assert.Equal(t, input.KeyPressed, (*events)[0].Kind)
	assert.Equal(t, input.VcA, (*events)[0].Key.Code)
	assert.Equal(t, input.CharUndefined, (*events)[0].Key.Char)

	assert.Equal(t, input.KeyTyped, (*events)[1].Kind)
	assert.Equal(t, input.VcUndefined, (*events)[1].Key.Code)
	assert.Equal(t, rune(0xD835), (*events)[1].Key.Char)
	assert.Equal(t, rune(0xDD18), (*events)[2].Key.Char)
}

func TestResolverReceivesPlatformKeycode(t *testing.T) {
	var got textres.Request
	p, _ := collectProcessor(t, func(ctx context.Context, req textres.Request) ([]uint16, error) {
		got = req
		return []uint16{'a'}, nil
	})

	// VcA arrives as X keycode 38; the translators work in platform
	// codes, not portable ones.
	p.Key(context.Background(), true, input.VcA, 38, 30, time.Now())

	assert.Equal(t, uint16(38), got.Keycode)
	assert.Equal(t, uint16(30), got.Raw, "scan code passed through for layouts that need it")
	assert.True(t, got.KeyDown)
}

func TestDeadKeyPressEmitsNoTyped(t *testing.T) {
	p, events := collectProcessor(t, func(ctx context.Context, req textres.Request) ([]uint16, error) {
		return nil, nil
	})

	p.Key(context.Background(), true, input.VcA, 30, 0, time.Now())
	p.Key(context.Background(), false, input.VcA, 30, 0, time.Now())

	require.Len(t, *events, 2)
	assert.Equal(t, input.KeyPressed, (*events)[0].Kind)
	assert.Equal(t, input.KeyReleased, (*events)[1].Kind)
}

func TestModifierMaskReflectsPostTransitionState(t *testing.T) {
	p, events := collectProcessor(t, nil)

	p.Key(context.Background(), true, input.VcShiftL, 42, 0, time.Now())
	p.Key(context.Background(), false, input.VcShiftL, 42, 0, time.Now())

	require.Len(t, *events, 2)
	assert.Equal(t, input.MaskShiftL, (*events)[0].Mask, "press carries the bit")
	assert.Equal(t, input.Mask(0), (*events)[1].Mask, "release already dropped it")
}

func TestClickCountAccumulatesWithinInterval(t *testing.T) {
	p, events := collectProcessor(t, nil)
	base := time.Now()

	p.Button(true, input.Button1, 10, 10, base)
	p.Button(false, input.Button1, 10, 10, base.Add(20*time.Millisecond))
	p.Button(true, input.Button1, 10, 10, base.Add(100*time.Millisecond))
	p.Button(false, input.Button1, 10, 10, base.Add(120*time.Millisecond))

	var presses []input.Event
	for _, ev := range *events {
		if ev.Kind == input.MousePressed {
			presses = append(presses, ev)
		}
	}
	require.Len(t, presses, 2)
	assert.Equal(t, uint16(1), presses[0].Mouse.Clicks)
	assert.Equal(t, uint16(2), presses[1].Mouse.Clicks)
}

func TestClickCountResetsAfterIntervalAndOnButtonChange(t *testing.T) {
	p, events := collectProcessor(t, nil)
	base := time.Now()

	p.Button(true, input.Button1, 0, 0, base)
	p.Button(false, input.Button1, 0, 0, base.Add(time.Millisecond))

	// Past the interval: the run restarts.
	p.Button(true, input.Button1, 0, 0, base.Add(time.Second))
	p.Button(false, input.Button1, 0, 0, base.Add(time.Second+time.Millisecond))

	// Different button within the interval: also restarts.
	p.Button(true, input.Button2, 0, 0, base.Add(time.Second+10*time.Millisecond))

	var clicks []uint16
	for _, ev := range *events {
		if ev.Kind == input.MousePressed {
			clicks = append(clicks, ev.Mouse.Clicks)
		}
	}
	assert.Equal(t, []uint16{1, 1, 1}, clicks)
}

func TestReleaseWithoutDragEmitsClicked(t *testing.T) {
	p, events := collectProcessor(t, nil)
	now := time.Now()

	p.Button(true, input.Button1, 5, 5, now)
	p.Button(false, input.Button1, 5, 5, now.Add(10*time.Millisecond))

	kinds := eventKinds(*events)
	assert.Equal(t, []input.Kind{input.MousePressed, input.MouseReleased, input.MouseClicked}, kinds)
}

func TestDraggedReleaseSuppressesClicked(t *testing.T) {
	p, events := collectProcessor(t, nil)
	now := time.Now()

	p.Button(true, input.Button1, 5, 5, now)
	p.Motion(50, 50, now.Add(10*time.Millisecond))
	p.Button(false, input.Button1, 50, 50, now.Add(20*time.Millisecond))

	kinds := eventKinds(*events)
	assert.Equal(t, []input.Kind{input.MousePressed, input.MouseDragged, input.MouseReleased}, kinds)
}

func TestMotionClassification(t *testing.T) {
	p, events := collectProcessor(t, nil)
	now := time.Now()

	p.Motion(1, 1, now)
	p.Button(true, input.Button3, 1, 1, now)
	p.Motion(2, 2, now.Add(time.Millisecond))
	p.Button(false, input.Button3, 2, 2, now.Add(2*time.Millisecond))
	p.Motion(3, 3, now.Add(3*time.Millisecond))

	var motions []input.Kind
	for _, ev := range *events {
		if ev.Kind == input.MouseMoved || ev.Kind == input.MouseDragged {
			motions = append(motions, ev.Kind)
		}
	}
	assert.Equal(t, []input.Kind{input.MouseMoved, input.MouseDragged, input.MouseMoved}, motions)
}

func TestExtraButtonMotionIsDragged(t *testing.T) {
	p, events := collectProcessor(t, nil)
	now := time.Now()

	// Button 6 has no modifier-mask bit but still holds a drag.
	p.Button(true, 6, 1, 1, now)
	p.Motion(5, 5, now.Add(time.Millisecond))
	p.Button(false, 6, 5, 5, now.Add(2*time.Millisecond))
	p.Motion(9, 9, now.Add(3*time.Millisecond))

	var motions []input.Kind
	for _, ev := range *events {
		if ev.Kind == input.MouseMoved || ev.Kind == input.MouseDragged {
			motions = append(motions, ev.Kind)
		}
	}
	assert.Equal(t, []input.Kind{input.MouseDragged, input.MouseMoved}, motions)
}

func TestWheelCarriesPayloadAndMask(t *testing.T) {
	p, events := collectProcessor(t, nil)

	p.Key(context.Background(), true, input.VcControlL, 29, 0, time.Now())
	p.Wheel(100, 200, input.UnitScroll, 3, -1, input.VerticalDirection, time.Now())

	require.NotEmpty(t, *events)
	ev := (*events)[len(*events)-1]
	require.Equal(t, input.MouseWheel, ev.Kind)
	assert.Equal(t, uint8(input.UnitScroll), ev.Wheel.Type)
	assert.Equal(t, uint16(3), ev.Wheel.Amount)
	assert.Equal(t, int16(-1), ev.Wheel.Rotation)
	assert.Equal(t, uint8(input.VerticalDirection), ev.Wheel.Direction)
	assert.Equal(t, int16(100), ev.Wheel.X)
	assert.Equal(t, int16(200), ev.Wheel.Y)
	assert.Equal(t, input.MaskCtrlL, ev.Mask)
}

func eventKinds(events []input.Event) []input.Kind {
	kinds := make([]input.Kind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	return kinds
}
