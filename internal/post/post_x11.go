//go:build linux && cgo

package post

/*
#cgo LDFLAGS: -lX11 -lXtst

#include <stdlib.h>
#include <string.h>

#include <X11/Xlib.h>
#include <X11/XKBlib.h>
#include <X11/extensions/XTest.h>

static Display *post_open(void) {
    return XOpenDisplay(NULL);
}

static int post_has_xtest(Display *disp) {
    int ev, err, major, minor;
    return XTestQueryExtension(disp, &ev, &err, &major, &minor);
}

static void post_keycode_range(Display *disp, int *min, int *max) {
    XDisplayKeycodes(disp, min, max);
}

// Copies up to max keysyms bound to code into out, returning how many
// levels the server reports.
static int post_keysyms(Display *disp, int code, unsigned long *out, int max) {
    int per = 0;
    KeySym *syms = XGetKeyboardMapping(disp, (KeyCode) code, 1, &per);
    if (syms == NULL) {
        return -1;
    }
    int n = per < max ? per : max;
    for (int i = 0; i < n; i++) {
        out[i] = (unsigned long) syms[i];
    }
    XFree(syms);
    return n;
}

static void post_remap(Display *disp, int code, unsigned long sym) {
    KeySym syms[4] = { (KeySym) sym, (KeySym) sym, (KeySym) sym, (KeySym) sym };
    XChangeKeyboardMapping(disp, (KeyCode) code, 4, syms, 1);
}

static void post_fake_key(Display *disp, int code, int down) {
    XTestFakeKeyEvent(disp, (unsigned int) code, down ? True : False, CurrentTime);
}

static void post_fake_button(Display *disp, int button, int down) {
    XTestFakeButtonEvent(disp, (unsigned int) button, down ? True : False, CurrentTime);
}

static void post_fake_motion(Display *disp, int x, int y) {
    XTestFakeMotionEvent(disp, -1, x, y, CurrentTime);
}

static void post_fake_relative_motion(Display *disp, int dx, int dy) {
    XTestFakeRelativeMotionEvent(disp, dx, dy, CurrentTime);
}

static void post_sync(Display *disp) {
    XSync(disp, False);
}

static int post_key_name(Display *disp, int code, char *out) {
    static XkbDescPtr desc = NULL;
    if (desc == NULL) {
        desc = XkbGetMap(disp, 0, XkbUseCoreKbd);
        if (desc != NULL && XkbGetNames(disp, XkbKeyNamesMask, desc) != Success) {
            XkbFreeKeyboard(desc, XkbAllComponentsMask, True);
            desc = NULL;
        }
    }
    if (desc == NULL || desc->names == NULL
            || code < desc->min_key_code || code > desc->max_key_code) {
        return 0;
    }
    memcpy(out, desc->names->keys[code].name, XkbKeyNameLength);
    out[XkbKeyNameLength] = '\0';
    return out[0] != '\0';
}
*/
import "C"

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unsafe"

	"inputtap/internal/keycode"
	"inputtap/pkg/input"
)

// Remapped keycodes have to propagate through the server and any
// layout-tracking clients (IMEs, keyboard indicators) before the fake
// press; 50ms is enough in practice without making typing crawl.
const defaultTextDelay = 50 * time.Millisecond

// The posting display is process-global and opened lazily. All posting
// serializes on the lock: Xlib connections are not thread safe.
var x11Post struct {
	sync.Mutex
	disp   *C.Display
	table  *keycode.X11Table
	failed bool
}

func x11Conn() (*C.Display, *keycode.X11Table, error) {
	x11Post.Lock()
	defer x11Post.Unlock()
	return x11ConnLocked()
}

func x11ConnLocked() (*C.Display, *keycode.X11Table, error) {
	if x11Post.failed {
		return nil, nil, ErrNotAvailable
	}
	if x11Post.disp != nil {
		return x11Post.disp, x11Post.table, nil
	}

	disp := C.post_open()
	if disp == nil {
		x11Post.failed = true
		return nil, nil, fmt.Errorf("%w: cannot open display", ErrNotAvailable)
	}
	if C.post_has_xtest(disp) == 0 {
		C.XCloseDisplay(disp)
		x11Post.failed = true
		return nil, nil, fmt.Errorf("%w: XTest extension missing", ErrNotAvailable)
	}

	table := keycode.NewX11Table()
	table.Load(x11NameResolver(disp))

	x11Post.disp = disp
	x11Post.table = table
	return disp, table, nil
}

func x11NameResolver(disp *C.Display) func(name string) uint8 {
	byName := make(map[string]uint8)
	var min, max C.int
	C.post_keycode_range(disp, &min, &max)

	buf := (*C.char)(C.malloc(5))
	defer C.free(unsafe.Pointer(buf))

	for code := int(min); code <= int(max) && code < 256; code++ {
		if C.post_key_name(disp, C.int(code), buf) == 0 {
			continue
		}
		name := C.GoString(buf)
		if _, dup := byName[name]; !dup {
			byName[name] = uint8(code)
		}
	}
	return func(name string) uint8 {
		return byName[name]
	}
}

func postKey(_ context.Context, ev *input.Event) error {
	x11Post.Lock()
	defer x11Post.Unlock()

	disp, table, err := x11ConnLocked()
	if err != nil {
		return err
	}
	code, ok := table.ToNative(ev.Key.Code)
	if !ok {
		return fmt.Errorf("%w: keycode %#04x is not in the current layout", ErrUnsupported, uint16(ev.Key.Code))
	}

	down := 0
	if ev.Kind == input.KeyPressed {
		down = 1
	}
	C.post_fake_key(disp, C.int(code), C.int(down))
	C.post_sync(disp)
	return nil
}

// xPostButton maps portable buttons onto core button numbers: X puts
// middle on 2 and right on 3, and extra buttons resume at 8 after the
// scroll range.
func xPostButton(button uint16) (int, error) {
	switch button {
	case input.Button1:
		return 1, nil
	case input.Button2:
		return 3, nil
	case input.Button3:
		return 2, nil
	case input.Button4:
		return 8, nil
	case input.Button5:
		return 9, nil
	default:
		return 0, fmt.Errorf("%w: button %d", ErrUnsupported, button)
	}
}

func postButton(_ context.Context, ev *input.Event, ignoreCoords bool) error {
	x11Post.Lock()
	defer x11Post.Unlock()

	disp, _, err := x11ConnLocked()
	if err != nil {
		return err
	}
	button, err := xPostButton(ev.Mouse.Button)
	if err != nil {
		return err
	}

	down := 0
	if ev.Kind == input.MousePressed || ev.Kind == input.MousePressedIgnoreCoords {
		down = 1
	}
	if !ignoreCoords {
		C.post_fake_motion(disp, C.int(ev.Mouse.X), C.int(ev.Mouse.Y))
	}
	C.post_fake_button(disp, C.int(button), C.int(down))
	C.post_sync(disp)
	return nil
}

func postMotion(_ context.Context, ev *input.Event, relative bool) error {
	x11Post.Lock()
	defer x11Post.Unlock()

	disp, _, err := x11ConnLocked()
	if err != nil {
		return err
	}
	if relative {
		C.post_fake_relative_motion(disp, C.int(ev.Mouse.X), C.int(ev.Mouse.Y))
	} else {
		C.post_fake_motion(disp, C.int(ev.Mouse.X), C.int(ev.Mouse.Y))
	}
	C.post_sync(disp)
	return nil
}

// postWheel presses the scroll pseudo-button once per notch.
func postWheel(_ context.Context, ev *input.Event) error {
	x11Post.Lock()
	defer x11Post.Unlock()

	disp, _, err := x11ConnLocked()
	if err != nil {
		return err
	}

	rotation := int(ev.Wheel.Rotation)
	var button int
	if ev.Wheel.Direction == input.HorizontalDirection {
		button = 7 // right
		if rotation < 0 {
			button = 6
		}
	} else {
		button = 4 // up
		if rotation < 0 {
			button = 5
		}
	}
	if rotation < 0 {
		rotation = -rotation
	}

	for i := 0; i < rotation; i++ {
		C.post_fake_button(disp, C.int(button), 1)
		C.post_fake_button(disp, C.int(button), 0)
	}
	C.post_sync(disp)
	return nil
}

// x11KeymapConn adapts the posting display to the remap interface.
type x11KeymapConn struct {
	disp *C.Display
}

func (c *x11KeymapConn) KeycodeRange() (uint8, uint8) {
	var min, max C.int
	C.post_keycode_range(c.disp, &min, &max)
	if max > 255 {
		max = 255
	}
	return uint8(min), uint8(max)
}

func (c *x11KeymapConn) Keysyms(code uint8) ([]uint32, error) {
	var raw [8]C.ulong
	n := int(C.post_keysyms(c.disp, C.int(code), &raw[0], C.int(len(raw))))
	if n < 0 {
		return nil, fmt.Errorf("%w: keysym lookup for keycode %d", ErrFailedSend, code)
	}
	syms := make([]uint32, n)
	for i := 0; i < n; i++ {
		syms[i] = uint32(raw[i])
	}
	return syms, nil
}

func (c *x11KeymapConn) Remap(code uint8, sym uint32) error {
	C.post_remap(c.disp, C.int(code), C.ulong(sym))
	return nil
}

func (c *x11KeymapConn) SendKey(code uint8, down bool) error {
	d := 0
	if down {
		d = 1
	}
	C.post_fake_key(c.disp, C.int(code), C.int(d))
	return nil
}

func (c *x11KeymapConn) Sync() error {
	C.post_sync(c.disp)
	return nil
}

func postText(ctx context.Context, text string) error {
	x11Post.Lock()
	defer x11Post.Unlock()

	disp, _, err := x11ConnLocked()
	if err != nil {
		return err
	}
	return newRemapper(&x11KeymapConn{disp: disp}).postText(ctx, text)
}
