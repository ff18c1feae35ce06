package store

import (
	"time"

	"inputtap/pkg/input"
)

// Recording is one capture run journaled to the store. StoppedNs is nil
// while the recording is still open.
type Recording struct {
	ID        int64
	StartedNs int64
	StoppedNs *int64
	Hostname  string
	Note      string
}

// Started returns the recording start as wall time.
func (r *Recording) Started() time.Time {
	return time.Unix(0, r.StartedNs)
}

// Duration returns the recorded span, or the span so far for an open
// recording.
func (r *Recording) Duration() time.Duration {
	if r.StoppedNs == nil {
		return time.Since(r.Started())
	}
	return time.Duration(*r.StoppedNs - r.StartedNs)
}

// JournaledEvent is an event with its position in a recording.
type JournaledEvent struct {
	RecordingID int64
	Seq         uint64
	Event       input.Event
}

// eventRow flattens an event for storage. One row holds every payload
// column; the kind decides which ones are meaningful, mirroring the
// in-memory representation.
type eventRow struct {
	Kind        uint8
	TimestampNs int64
	Mask        uint16
	Keycode     uint16
	Rawcode     uint16
	Keychar     int32
	Button      uint16
	Clicks      uint16
	X           int16
	Y           int16
	WheelType   uint8
	WheelAmount uint16
	WheelRot    int16
	WheelDir    uint8
}

func rowFromEvent(ev *input.Event) eventRow {
	row := eventRow{
		Kind:        uint8(ev.Kind),
		TimestampNs: ev.When.UnixNano(),
		Mask:        uint16(ev.Mask),
	}
	switch {
	case ev.Kind.IsKeyboard():
		row.Keycode = uint16(ev.Key.Code)
		row.Rawcode = ev.Key.Raw
		row.Keychar = int32(ev.Key.Char)
	case ev.Kind == input.MouseWheel:
		row.Clicks = ev.Wheel.Clicks
		row.X = ev.Wheel.X
		row.Y = ev.Wheel.Y
		row.WheelType = ev.Wheel.Type
		row.WheelAmount = ev.Wheel.Amount
		row.WheelRot = ev.Wheel.Rotation
		row.WheelDir = ev.Wheel.Direction
	case ev.Kind.IsMouse():
		row.Button = ev.Mouse.Button
		row.Clicks = ev.Mouse.Clicks
		row.X = ev.Mouse.X
		row.Y = ev.Mouse.Y
	}
	return row
}

func (row *eventRow) toEvent() input.Event {
	ev := input.Event{
		Kind: input.Kind(row.Kind),
		When: time.Unix(0, row.TimestampNs),
		Mask: input.Mask(row.Mask),
	}
	switch {
	case ev.Kind.IsKeyboard():
		ev.Key = input.Key{
			Code: input.Keycode(row.Keycode),
			Raw:  row.Rawcode,
			Char: rune(row.Keychar),
		}
	case ev.Kind == input.MouseWheel:
		ev.Wheel = input.Wheel{
			Clicks:    row.Clicks,
			X:         row.X,
			Y:         row.Y,
			Type:      row.WheelType,
			Amount:    row.WheelAmount,
			Rotation:  row.WheelRot,
			Direction: row.WheelDir,
		}
	case ev.Kind.IsMouse():
		ev.Mouse = input.Mouse{
			Button: row.Button,
			Clicks: row.Clicks,
			X:      row.X,
			Y:      row.Y,
		}
	}
	return ev
}
