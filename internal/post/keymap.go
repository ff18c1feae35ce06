package post

import (
	"context"
	"fmt"
	"time"
)

// noSymbol is the X NoSymbol keysym.
const noSymbol = 0

// keymapConn is the slice of an X connection that text posting needs.
// The real implementation talks Xlib; tests substitute a fake.
type keymapConn interface {
	// KeycodeRange returns the server's min and max keycodes.
	KeycodeRange() (min, max uint8)

	// Keysyms returns every shift-level keysym bound to a keycode.
	Keysyms(code uint8) ([]uint32, error)

	// Remap binds sym to all shift levels of a keycode. A noSymbol sym
	// clears the binding.
	Remap(code uint8, sym uint32) error

	// SendKey fakes a press or release of a keycode.
	SendKey(code uint8, down bool) error

	// Sync flushes pending requests and waits for the server.
	Sync() error
}

// remapper types text by borrowing an unused keycode: bind the
// character's keysym, let the new mapping settle, press and release,
// then clear the binding again.
type remapper struct {
	conn  keymapConn
	delay func() time.Duration
}

func newRemapper(conn keymapConn) *remapper {
	return &remapper{conn: conn, delay: TextPostingDelay}
}

func (r *remapper) postText(ctx context.Context, text string) error {
	if text == "" {
		return ErrEmptyText
	}

	code, err := r.spareKeycode()
	if err != nil {
		return err
	}

	for _, ch := range text {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.typeRune(ctx, code, ch); err != nil {
			return fmt.Errorf("typing %q: %w", ch, err)
		}
	}
	return nil
}

func (r *remapper) typeRune(ctx context.Context, code uint8, ch rune) error {
	if err := r.conn.Remap(code, keysymForRune(ch)); err != nil {
		return err
	}
	if err := r.conn.Sync(); err != nil {
		return err
	}

	// Give the server and layout-tracking clients time to pick up the
	// new mapping before the fake press refers to it.
	if d := r.delay(); d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			r.restore(code)
			return ctx.Err()
		}
	}

	if err := r.conn.SendKey(code, true); err != nil {
		r.restore(code)
		return err
	}
	if err := r.conn.SendKey(code, false); err != nil {
		r.restore(code)
		return err
	}
	if err := r.conn.Sync(); err != nil {
		r.restore(code)
		return err
	}

	return r.restore(code)
}

func (r *remapper) restore(code uint8) error {
	if err := r.conn.Remap(code, noSymbol); err != nil {
		return err
	}
	return r.conn.Sync()
}

// spareKeycode scans from the top of the keycode range for a slot with
// no keysym bound at any level. High codes are scanned first since
// layouts fill from the bottom.
func (r *remapper) spareKeycode() (uint8, error) {
	min, max := r.conn.KeycodeRange()
	for code := max; code >= min; code-- {
		syms, err := r.conn.Keysyms(code)
		if err != nil {
			return 0, err
		}
		unused := true
		for _, sym := range syms {
			if sym != noSymbol {
				unused = false
				break
			}
		}
		if unused {
			return code, nil
		}
		if code == min {
			break
		}
	}
	return 0, ErrNoSpareKeycode
}

// keysymForRune maps a rune onto its X keysym: Latin-1 printable
// characters are their own keysym, everything else uses the Unicode
// keysym range.
func keysymForRune(ch rune) uint32 {
	if ch >= 0x20 && ch <= 0xFF {
		return uint32(ch)
	}
	return 0x01000000 | uint32(ch)
}
