//go:build linux && cgo

package textres

/*
#cgo LDFLAGS: -lX11

#include <stdlib.h>
#include <string.h>
#include <X11/Xlib.h>
#include <X11/Xutil.h>

// The lookup connection is separate from the hook's record connection; a
// display inside XRecord's data callback cannot issue regular requests.
static XIM xr_im = NULL;
static XIC xr_ic = NULL;

static Display *xr_open(void) {
    Display *disp = XOpenDisplay(NULL);
    if (disp == NULL) {
        return NULL;
    }

    xr_im = XOpenIM(disp, NULL, NULL, NULL);
    if (xr_im != NULL) {
        xr_ic = XCreateIC(xr_im,
            XNInputStyle, XIMPreeditNothing | XIMStatusNothing,
            NULL);
    }
    return disp;
}

// Recreate the input context after a layout change so stale compose
// state from the previous layout cannot leak into the next lookup.
static void xr_reset(void) {
    if (xr_ic != NULL) {
        XDestroyIC(xr_ic);
        xr_ic = NULL;
    }
    if (xr_im != NULL) {
        xr_ic = XCreateIC(xr_im,
            XNInputStyle, XIMPreeditNothing | XIMStatusNothing,
            NULL);
    }
}

static int xr_lookup(Display *disp, unsigned int keycode, unsigned int state, char *buf, int size) {
    XKeyPressedEvent event;
    memset(&event, 0, sizeof(event));
    event.type = KeyPress;
    event.display = disp;
    event.keycode = keycode;
    event.state = state;
    event.same_screen = True;

    if (xr_ic != NULL) {
        Status status;
        int n = Xutf8LookupString(xr_ic, &event, buf, size, NULL, &status);
        if (status == XLookupChars || status == XLookupBoth) {
            return n;
        }
        return 0;
    }

    KeySym keysym;
    return XLookupString(&event, buf, size, &keysym, NULL);
}
*/
import "C"

import (
	"context"
	"errors"
	"unsafe"

	"inputtap/pkg/input"
)

// X modifier state bits for the synthesized lookup event.
const (
	xShiftMask   = 1 << 0
	xLockMask    = 1 << 1
	xControlMask = 1 << 2
	xMod1Mask    = 1 << 3 // alt
	xMod2Mask    = 1 << 4 // num lock
	xMod4Mask    = 1 << 6 // super
)

// PlatformMode reports how the translator must be driven on this OS. The
// input-method connection is not thread safe, so requests are marshalled
// to the goroutine that opened it.
func PlatformMode() Mode { return Marshalled }

// NewPlatform returns the coordinator for this OS. The lookup display and
// input method are opened lazily by the first request, on the coordinator
// goroutine, and stay open for the life of the process.
func NewPlatform() *Coordinator {
	t := &x11Translator{}
	c := NewCoordinator(PlatformMode(), t.translate)
	c.SetResetFunc(t.reset)
	return c
}

type x11Translator struct {
	disp   unsafe.Pointer
	failed bool
}

var errNoDisplay = errors.New("textres: cannot open X display")

func (t *x11Translator) reset() {
	if t.disp != nil {
		C.xr_reset()
	}
}

func (t *x11Translator) translate(ctx context.Context, req Request) ([]uint16, error) {
	if !req.KeyDown {
		return nil, nil
	}
	if t.disp == nil {
		if t.failed {
			return nil, errNoDisplay
		}
		t.disp = unsafe.Pointer(C.xr_open())
		if t.disp == nil {
			t.failed = true
			return nil, errNoDisplay
		}
	}

	var buf [16]C.char
	n := C.xr_lookup((*C.Display)(t.disp), C.uint(req.Keycode), C.uint(xStateFromMask(req.Mask)),
		&buf[0], C.int(len(buf)))
	if n <= 0 {
		return nil, nil
	}
	// Xutf8LookupString yields UTF-8; recode to UTF-16 so characters
	// outside the basic plane arrive as surrogate pairs like on the
	// other platforms.
	return UTF16FromString(C.GoStringN(&buf[0], n)), nil
}

func xStateFromMask(m input.Mask) uint32 {
	var state uint32
	if m&input.MaskShift != 0 {
		state |= xShiftMask
	}
	if m&input.MaskCtrl != 0 {
		state |= xControlMask
	}
	if m&input.MaskAlt != 0 {
		state |= xMod1Mask
	}
	if m&input.MaskMeta != 0 {
		state |= xMod4Mask
	}
	if m&input.MaskNumLock != 0 {
		state |= xMod2Mask
	}
	if m&input.MaskCapsLock != 0 {
		state |= xLockMask
	}
	return state
}
