//go:build darwin && cgo

package post

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation

#include <ApplicationServices/ApplicationServices.h>

static int post_key_event(uint16_t keycode, int down) {
    CGEventRef ev = CGEventCreateKeyboardEvent(NULL, (CGKeyCode) keycode, down ? true : false);
    if (ev == NULL) {
        return -1;
    }
    CGEventPost(kCGHIDEventTap, ev);
    CFRelease(ev);
    return 0;
}

static int post_mouse_event(int type, double x, double y, int button) {
    CGEventRef ev = CGEventCreateMouseEvent(NULL, (CGEventType) type,
                                            CGPointMake(x, y), (CGMouseButton) button);
    if (ev == NULL) {
        return -1;
    }
    CGEventPost(kCGHIDEventTap, ev);
    CFRelease(ev);
    return 0;
}

static int post_wheel_event(int vertical, int horizontal) {
    CGEventRef ev = CGEventCreateScrollWheelEvent(NULL, kCGScrollEventUnitLine, 2,
                                                  (int32_t) vertical, (int32_t) horizontal);
    if (ev == NULL) {
        return -1;
    }
    CGEventPost(kCGHIDEventTap, ev);
    CFRelease(ev);
    return 0;
}

static int post_text_units(const UniChar *units, int count) {
    CGEventRef down = CGEventCreateKeyboardEvent(NULL, 0, true);
    CGEventRef up = CGEventCreateKeyboardEvent(NULL, 0, false);
    if (down == NULL || up == NULL) {
        if (down != NULL) CFRelease(down);
        if (up != NULL) CFRelease(up);
        return -1;
    }
    CGEventKeyboardSetUnicodeString(down, (UniCharCount) count, units);
    CGEventKeyboardSetUnicodeString(up, (UniCharCount) count, units);
    CGEventPost(kCGHIDEventTap, down);
    CGEventPost(kCGHIDEventTap, up);
    CFRelease(down);
    CFRelease(up);
    return 0;
}

static void current_pointer(double *x, double *y) {
    CGEventRef ev = CGEventCreate(NULL);
    if (ev == NULL) {
        *x = 0;
        *y = 0;
        return;
    }
    CGPoint loc = CGEventGetLocation(ev);
    *x = loc.x;
    *y = loc.y;
    CFRelease(ev);
}
*/
import "C"

import (
	"context"
	"fmt"
	"unicode/utf16"
	"unsafe"

	"inputtap/internal/keycode"
	"inputtap/pkg/input"
)

// CGEventPost delivers synchronously; no settle delay is needed.
const defaultTextDelay = 0

// CGEventType values used for synthesis.
const (
	cgPostLeftDown     = 1
	cgPostLeftUp       = 2
	cgPostRightDown    = 3
	cgPostRightUp      = 4
	cgPostMouseMoved   = 5
	cgPostLeftDragged  = 6
	cgPostRightDragged = 7
	cgPostOtherDown    = 25
	cgPostOtherUp      = 26
	cgPostOtherDragged = 27
)

// held tracks posted presses so synthesized motion while buttons are
// down becomes the dragged event type the session expects.
var held heldSet

func postKey(_ context.Context, ev *input.Event) error {
	native := keycode.DarwinToNative(ev.Key.Code)
	if native == keycode.DarwinUndefined {
		return fmt.Errorf("%w: keycode %#04x has no darwin key", ErrUnsupported, uint16(ev.Key.Code))
	}
	down := 0
	if ev.Kind == input.KeyPressed {
		down = 1
	}
	if C.post_key_event(C.uint16_t(native), C.int(down)) != 0 {
		return ErrFailedSend
	}
	return nil
}

func postText(_ context.Context, text string) error {
	if text == "" {
		return ErrEmptyText
	}
	units := utf16.Encode([]rune(text))
	if C.post_text_units((*C.UniChar)(unsafe.Pointer(&units[0])), C.int(len(units))) != 0 {
		return ErrFailedSend
	}
	return nil
}

// cgButton maps a portable button onto the CG event type and button
// number for a press or release.
func cgButton(button uint16, down bool) (int, int, error) {
	switch button {
	case input.Button1:
		if down {
			return cgPostLeftDown, 0, nil
		}
		return cgPostLeftUp, 0, nil
	case input.Button2:
		if down {
			return cgPostRightDown, 1, nil
		}
		return cgPostRightUp, 1, nil
	case input.Button3, input.Button4, input.Button5:
		number := int(button) - 1 // middle is CG button 2, then counting up
		if down {
			return cgPostOtherDown, number, nil
		}
		return cgPostOtherUp, number, nil
	default:
		return 0, 0, fmt.Errorf("%w: button %d", ErrUnsupported, button)
	}
}

func postButton(_ context.Context, ev *input.Event, ignoreCoords bool) error {
	down := ev.Kind == input.MousePressed || ev.Kind == input.MousePressedIgnoreCoords
	typ, number, err := cgButton(ev.Mouse.Button, down)
	if err != nil {
		return err
	}

	if down {
		held.press(ev.Mouse.Button)
	} else {
		held.release(ev.Mouse.Button)
	}

	x, y := float64(ev.Mouse.X), float64(ev.Mouse.Y)
	if ignoreCoords {
		var cx, cy C.double
		C.current_pointer(&cx, &cy)
		x, y = float64(cx), float64(cy)
	}
	if C.post_mouse_event(C.int(typ), C.double(x), C.double(y), C.int(number)) != 0 {
		return ErrFailedSend
	}
	return nil
}

func postMotion(_ context.Context, ev *input.Event, relative bool) error {
	x, y := float64(ev.Mouse.X), float64(ev.Mouse.Y)
	if relative {
		var cx, cy C.double
		C.current_pointer(&cx, &cy)
		x += float64(cx)
		y += float64(cy)
	}

	typ, number := cgPostMouseMoved, 0
	switch button := held.dragButton(); button {
	case input.Button1:
		typ = cgPostLeftDragged
	case input.Button2:
		typ, number = cgPostRightDragged, 1
	case input.NoButton:
	default:
		typ, number = cgPostOtherDragged, int(button)-1
	}

	if C.post_mouse_event(C.int(typ), C.double(x), C.double(y), C.int(number)) != 0 {
		return ErrFailedSend
	}
	return nil
}

func postWheel(_ context.Context, ev *input.Event) error {
	vertical, horizontal := int(ev.Wheel.Rotation), 0
	if ev.Wheel.Direction == input.HorizontalDirection {
		vertical, horizontal = 0, int(ev.Wheel.Rotation)
	}
	if C.post_wheel_event(C.int(vertical), C.int(horizontal)) != 0 {
		return ErrFailedSend
	}
	return nil
}
