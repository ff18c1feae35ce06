package store

import (
	"encoding/json"
	"fmt"
	"io"

	"inputtap/pkg/input"
)

// ExportFormatVersion is the version of the recording export format.
const ExportFormatVersion = 1

// RecordingExport is the portable JSON form of a recording and its
// events, used for inspection and replay outside the journal database.
type RecordingExport struct {
	FormatVersion int             `json:"format_version"`
	Recording     RecordingHeader `json:"recording"`
	Events        []ExportedEvent `json:"events"`
}

// RecordingHeader describes the exported recording.
type RecordingHeader struct {
	ID        int64  `json:"id"`
	StartedNs int64  `json:"started_ns"`
	StoppedNs *int64 `json:"stopped_ns,omitempty"`
	Hostname  string `json:"hostname"`
	Note      string `json:"note,omitempty"`
}

// ExportedEvent is one journaled event in export form. Exactly one of
// the key, mouse, and wheel payloads is present, matching the kind.
type ExportedEvent struct {
	Seq         uint64        `json:"seq"`
	TimestampNs int64         `json:"timestamp_ns"`
	Kind        uint8         `json:"kind"`
	Mask        uint16        `json:"mask"`
	Key         *ExportKey    `json:"key,omitempty"`
	Mouse       *ExportMouse  `json:"mouse,omitempty"`
	Wheel       *ExportWheel  `json:"wheel,omitempty"`
}

// ExportKey is the keyboard payload of an exported event.
type ExportKey struct {
	Code uint16 `json:"code"`
	Raw  uint16 `json:"raw"`
	Char int32  `json:"char"`
}

// ExportMouse is the mouse payload of an exported event.
type ExportMouse struct {
	Button uint16 `json:"button"`
	Clicks uint16 `json:"clicks"`
	X      int16  `json:"x"`
	Y      int16  `json:"y"`
}

// ExportWheel is the wheel payload of an exported event.
type ExportWheel struct {
	Clicks    uint16 `json:"clicks"`
	X         int16  `json:"x"`
	Y         int16  `json:"y"`
	Type      uint8  `json:"type"`
	Amount    uint16 `json:"amount"`
	Rotation  int16  `json:"rotation"`
	Direction uint8  `json:"direction"`
}

// BuildExport assembles the export form of a recording.
func BuildExport(rec *Recording, events []JournaledEvent) *RecordingExport {
	out := &RecordingExport{
		FormatVersion: ExportFormatVersion,
		Recording: RecordingHeader{
			ID:        rec.ID,
			StartedNs: rec.StartedNs,
			StoppedNs: rec.StoppedNs,
			Hostname:  rec.Hostname,
			Note:      rec.Note,
		},
		Events: make([]ExportedEvent, 0, len(events)),
	}

	for i := range events {
		out.Events = append(out.Events, exportEvent(&events[i]))
	}
	return out
}

func exportEvent(je *JournaledEvent) ExportedEvent {
	ev := &je.Event
	exported := ExportedEvent{
		Seq:         je.Seq,
		TimestampNs: ev.When.UnixNano(),
		Kind:        uint8(ev.Kind),
		Mask:        uint16(ev.Mask),
	}

	switch {
	case ev.Kind.IsKeyboard():
		exported.Key = &ExportKey{
			Code: uint16(ev.Key.Code),
			Raw:  ev.Key.Raw,
			Char: int32(ev.Key.Char),
		}
	case ev.Kind == input.MouseWheel:
		exported.Wheel = &ExportWheel{
			Clicks:    ev.Wheel.Clicks,
			X:         ev.Wheel.X,
			Y:         ev.Wheel.Y,
			Type:      ev.Wheel.Type,
			Amount:    ev.Wheel.Amount,
			Rotation:  ev.Wheel.Rotation,
			Direction: ev.Wheel.Direction,
		}
	case ev.Kind.IsMouse():
		exported.Mouse = &ExportMouse{
			Button: ev.Mouse.Button,
			Clicks: ev.Mouse.Clicks,
			X:      ev.Mouse.X,
			Y:      ev.Mouse.Y,
		}
	}
	return exported
}

// Export writes a recording and its events as indented JSON.
func (j *Journal) Export(recordingID int64, w io.Writer) error {
	rec, err := j.Recording(recordingID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("recording %d not found", recordingID)
	}

	events, err := j.Events(recordingID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildExport(rec, events)); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// Import reads an export and journals it as a new recording, returning
// the new recording ID. The original timestamps and note survive; the
// recording ID and hostname are reassigned.
func (j *Journal) Import(r io.Reader) (int64, error) {
	var export RecordingExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return 0, fmt.Errorf("decode export: %w", err)
	}
	if export.FormatVersion != ExportFormatVersion {
		return 0, fmt.Errorf("unsupported export format version %d", export.FormatVersion)
	}

	id, err := j.BeginRecording(export.Recording.Note)
	if err != nil {
		return 0, err
	}

	events := make([]input.Event, 0, len(export.Events))
	for i := range export.Events {
		events = append(events, importEvent(&export.Events[i]))
	}
	if err := j.AppendBatch(id, 0, events); err != nil {
		return 0, err
	}

	if export.Recording.StoppedNs != nil {
		if err := j.EndRecording(id); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func importEvent(exported *ExportedEvent) input.Event {
	row := eventRow{
		Kind:        exported.Kind,
		TimestampNs: exported.TimestampNs,
		Mask:        exported.Mask,
	}
	if exported.Key != nil {
		row.Keycode = exported.Key.Code
		row.Rawcode = exported.Key.Raw
		row.Keychar = exported.Key.Char
	}
	if exported.Mouse != nil {
		row.Button = exported.Mouse.Button
		row.Clicks = exported.Mouse.Clicks
		row.X = exported.Mouse.X
		row.Y = exported.Mouse.Y
	}
	if exported.Wheel != nil {
		row.Clicks = exported.Wheel.Clicks
		row.X = exported.Wheel.X
		row.Y = exported.Wheel.Y
		row.WheelType = exported.Wheel.Type
		row.WheelAmount = exported.Wheel.Amount
		row.WheelRot = exported.Wheel.Rotation
		row.WheelDir = exported.Wheel.Direction
	}
	return row.toEvent()
}
