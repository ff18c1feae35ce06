package input

// Screen describes one attached monitor. X and Y are the top-left corner in
// virtual-desktop coordinates and may be negative on multi-monitor setups
// where a secondary display sits left of or above the primary.
type Screen struct {
	Number uint8
	X, Y   int16
	Width  uint16
	Height uint16
}
