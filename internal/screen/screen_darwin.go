//go:build darwin && cgo

package screen

/*
#cgo LDFLAGS: -framework CoreGraphics

#include <CoreGraphics/CoreGraphics.h>

static int active_displays(CGDirectDisplayID *ids, int max) {
    uint32_t count = 0;
    if (CGGetActiveDisplayList((uint32_t) max, ids, &count) != kCGErrorSuccess) {
        return 0;
    }
    return (int) count;
}

static void display_bounds(CGDirectDisplayID id, int16_t *x, int16_t *y, uint16_t *w, uint16_t *h) {
    CGRect bounds = CGDisplayBounds(id);
    *x = (int16_t) bounds.origin.x;
    *y = (int16_t) bounds.origin.y;
    *w = (uint16_t) bounds.size.width;
    *h = (uint16_t) bounds.size.height;
}
*/
import "C"

import "inputtap/pkg/input"

func enumerate() []input.Screen {
	var ids [16]C.CGDirectDisplayID
	count := int(C.active_displays(&ids[0], C.int(len(ids))))

	screens := make([]input.Screen, 0, count)
	for i := 0; i < count; i++ {
		var x, y C.int16_t
		var w, h C.uint16_t
		C.display_bounds(ids[i], &x, &y, &w, &h)
		screens = append(screens, input.Screen{
			Number: uint8(i),
			X:      int16(x),
			Y:      int16(y),
			Width:  uint16(w),
			Height: uint16(h),
		})
	}
	return screens
}
