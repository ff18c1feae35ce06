package textres

// DeadKey is the single-slot dead-key accumulator. The slot is only
// meaningful for one keyboard layout; switching layouts mid-sequence
// would feed the stale state into the wrong translation tables, so the
// slot resets whenever the layout identity changes.
type DeadKey struct {
	layout string
	state  uint32
}

// Enter compares the current layout identity against the previous call
// and returns a pointer to the state slot, zeroed if the layout changed.
// The caller passes the pointer to the platform translation routine,
// which reads and updates it in place.
func (d *DeadKey) Enter(layout string) *uint32 {
	if layout != d.layout {
		d.layout = layout
		d.state = 0
	}
	return &d.state
}

// Pending reports whether a dead key is waiting for its combining
// character.
func (d *DeadKey) Pending() bool { return d.state != 0 }

// Reset clears the slot without touching the layout identity.
func (d *DeadKey) Reset() { d.state = 0 }
