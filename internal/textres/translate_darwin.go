//go:build darwin && cgo

package textres

/*
#cgo LDFLAGS: -framework Carbon -framework CoreFoundation

#include <Carbon/Carbon.h>
#include <dlfcn.h>
#include <stdint.h>

// Translate one key against the current keyboard layout. deadkey is the
// caller's accumulator slot; UCKeyTranslate reads and updates it across
// calls to compose dead-key sequences.
static int tis_translate(uint16_t keycode, uint32_t carbon_modifiers, uint32_t *deadkey, UniChar *buf, int size) {
    TISInputSourceRef src = TISCopyCurrentKeyboardLayoutInputSource();
    if (src == NULL) {
        return -1;
    }

    CFDataRef layout_data = (CFDataRef) TISGetInputSourceProperty(src, kTISPropertyUnicodeKeyLayoutData);
    if (layout_data == NULL) {
        CFRelease(src);
        return -1;
    }
    const UCKeyboardLayout *layout = (const UCKeyboardLayout *) CFDataGetBytePtr(layout_data);

    UniCharCount length = 0;
    OSStatus status = UCKeyTranslate(
        layout,
        keycode,
        kUCKeyActionDown,
        (carbon_modifiers >> 8) & 0xFF,
        LMGetKbdType(),
        0, // keep dead-key processing enabled
        (UInt32 *) deadkey,
        size,
        &length,
        buf
    );

    CFRelease(src);
    if (status != noErr) {
        return -1;
    }
    return (int) length;
}

// Hop to the main dispatch queue when libdispatch is dynamically
// available. Some input sources only answer TIS queries on the main
// queue; when the symbols are missing the caller falls back to running
// the translation on its own serialized thread.
typedef struct {
    uint16_t keycode;
    uint32_t modifiers;
    uint32_t *deadkey;
    UniChar *buf;
    int size;
    int result;
} tis_msg;

static void tis_trampoline(void *ctx) {
    tis_msg *m = (tis_msg *) ctx;
    m->result = tis_translate(m->keycode, m->modifiers, m->deadkey, m->buf, m->size);
}

static void (*dispatch_sync_f_f)(void *, void *, void (*)(void *)) = NULL;
static void *dispatch_main_q = NULL;

static int tis_probe_dispatch(void) {
    *(void **)(&dispatch_sync_f_f) = dlsym(RTLD_DEFAULT, "dispatch_sync_f");
    dispatch_main_q = dlsym(RTLD_DEFAULT, "_dispatch_main_q");
    return dispatch_sync_f_f != NULL && dispatch_main_q != NULL;
}

static int tis_translate_dispatch(uint16_t keycode, uint32_t modifiers, uint32_t *deadkey, UniChar *buf, int size) {
    tis_msg m = { keycode, modifiers, deadkey, buf, size, -1 };
    dispatch_sync_f_f(dispatch_main_q, &m, tis_trampoline);
    return m.result;
}

static int tis_copy_layout_id(char *buf, int size) {
    TISInputSourceRef src = TISCopyCurrentKeyboardLayoutInputSource();
    if (src == NULL) {
        return -1;
    }
    CFStringRef source_id = (CFStringRef) TISGetInputSourceProperty(src, kTISPropertyInputSourceID);
    Boolean ok = source_id != NULL && CFStringGetCString(source_id, buf, size, kCFStringEncodingUTF8);
    CFRelease(src);
    return ok ? 0 : -1;
}
*/
import "C"

import (
	"context"
	"unsafe"

	"inputtap/pkg/input"
)

// Carbon event modifier bits expected by UCKeyTranslate.
const (
	carbonCmdKey    = 0x0100
	carbonShiftKey  = 0x0200
	carbonAlphaLock = 0x0400
	carbonOptionKey = 0x0800
	carbonCtrlKey   = 0x1000
)

// PlatformMode reports how the translator must be driven on this OS. TIS
// and UCKeyTranslate want a single thread, so requests are marshalled.
func PlatformMode() Mode { return Marshalled }

// NewPlatform returns the coordinator for this OS. Whether libdispatch is
// loadable is probed here, once; every later translation takes the path
// the probe selected.
func NewPlatform() *Coordinator {
	t := &darwinTranslator{fastDispatch: C.tis_probe_dispatch() == 1}
	c := NewCoordinator(PlatformMode(), t.translate)
	c.SetResetFunc(t.dead.Reset)
	return c
}

type darwinTranslator struct {
	fastDispatch bool
	dead         DeadKey
}

func (t *darwinTranslator) translate(ctx context.Context, req Request) ([]uint16, error) {
	if !req.KeyDown {
		return nil, nil
	}

	var idbuf [256]C.char
	layoutID := ""
	if C.tis_copy_layout_id(&idbuf[0], C.int(len(idbuf))) == 0 {
		layoutID = C.GoString(&idbuf[0])
	}
	state := t.dead.Enter(layoutID)

	// Caps lock is stripped before translation and reapplied as an
	// uppercase fold afterwards; feeding alphaLock to UCKeyTranslate
	// shifts symbol keys too, which is not what caps lock does.
	carbon := carbonModifiers(req.Mask &^ input.MaskCapsLock)

	var buf [4]C.UniChar
	var n C.int
	if t.fastDispatch {
		n = C.tis_translate_dispatch(C.uint16_t(req.Keycode), C.uint32_t(carbon),
			(*C.uint32_t)(unsafe.Pointer(state)), &buf[0], C.int(len(buf)))
	} else {
		n = C.tis_translate(C.uint16_t(req.Keycode), C.uint32_t(carbon),
			(*C.uint32_t)(unsafe.Pointer(state)), &buf[0], C.int(len(buf)))
	}
	if n <= 0 {
		return nil, nil
	}

	units := make([]uint16, int(n))
	for i := range units {
		units[i] = uint16(buf[i])
	}
	if req.Mask&input.MaskCapsLock != 0 {
		units = FoldUpper(units)
	}
	return FilterControl(units), nil
}

func carbonModifiers(m input.Mask) uint32 {
	var c uint32
	if m&input.MaskShift != 0 {
		c |= carbonShiftKey
	}
	if m&input.MaskCtrl != 0 {
		c |= carbonCtrlKey
	}
	if m&input.MaskAlt != 0 {
		c |= carbonOptionKey
	}
	if m&input.MaskMeta != 0 {
		c |= carbonCmdKey
	}
	if m&input.MaskCapsLock != 0 {
		c |= carbonAlphaLock
	}
	return c
}
