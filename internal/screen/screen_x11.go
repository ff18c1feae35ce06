//go:build linux && cgo

package screen

/*
#cgo LDFLAGS: -lX11 -lXinerama

#include <stdlib.h>
#include <X11/Xlib.h>
#include <X11/extensions/Xinerama.h>

typedef struct {
    short x, y;
    unsigned short width, height;
} screen_rect;

// Query per-monitor geometry via Xinerama, falling back to the default
// screen extent when the extension is missing or inactive.
static int query_screens(screen_rect *out, int max) {
    Display *disp = XOpenDisplay(NULL);
    if (disp == NULL) {
        return 0;
    }

    int count = 0;
    int event_base, error_base;
    if (XineramaQueryExtension(disp, &event_base, &error_base) && XineramaIsActive(disp)) {
        int found = 0;
        XineramaScreenInfo *info = XineramaQueryScreens(disp, &found);
        if (info != NULL) {
            for (int i = 0; i < found && i < max; i++) {
                out[i].x = info[i].x_org;
                out[i].y = info[i].y_org;
                out[i].width = info[i].width;
                out[i].height = info[i].height;
            }
            count = found < max ? found : max;
            XFree(info);
        }
    }

    if (count == 0) {
        int screen = DefaultScreen(disp);
        out[0].x = 0;
        out[0].y = 0;
        out[0].width = (unsigned short) DisplayWidth(disp, screen);
        out[0].height = (unsigned short) DisplayHeight(disp, screen);
        count = 1;
    }

    XCloseDisplay(disp);
    return count;
}
*/
import "C"

import "inputtap/pkg/input"

func enumerate() []input.Screen {
	var rects [16]C.screen_rect
	count := int(C.query_screens(&rects[0], C.int(len(rects))))

	screens := make([]input.Screen, 0, count)
	for i := 0; i < count; i++ {
		screens = append(screens, input.Screen{
			Number: uint8(i),
			X:      int16(rects[i].x),
			Y:      int16(rects[i].y),
			Width:  uint16(rects[i].width),
			Height: uint16(rects[i].height),
		})
	}
	return screens
}
