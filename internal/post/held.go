package post

import (
	"sync"

	"inputtap/pkg/input"
)

// heldSet tracks which synthesized buttons are currently down, so a
// posted motion can be typed as a drag of the right button even when
// several presses overlap.
type heldSet struct {
	mu   sync.Mutex
	down map[uint16]struct{}
}

func (s *heldSet) press(button uint16) {
	s.mu.Lock()
	if s.down == nil {
		s.down = make(map[uint16]struct{})
	}
	s.down[button] = struct{}{}
	s.mu.Unlock()
}

func (s *heldSet) release(button uint16) {
	s.mu.Lock()
	delete(s.down, button)
	s.mu.Unlock()
}

// dragButton returns the lowest button still down, or NoButton when
// nothing is held.
func (s *heldSet) dragButton() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()

	button := uint16(input.NoButton)
	for b := range s.down {
		if button == input.NoButton || b < button {
			button = b
		}
	}
	return button
}
