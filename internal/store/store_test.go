package store

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtap/pkg/input"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordingLifecycle(t *testing.T) {
	j := openTestJournal(t)

	id, err := j.BeginRecording("typing test")
	require.NoError(t, err)
	require.Positive(t, id)

	r, err := j.Recording(id)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Nil(t, r.StoppedNs, "recording still open")
	assert.Equal(t, "typing test", r.Note)

	require.NoError(t, j.EndRecording(id))

	r, err = j.Recording(id)
	require.NoError(t, err)
	require.NotNil(t, r.StoppedNs)
	assert.GreaterOrEqual(t, *r.StoppedNs, r.StartedNs)
}

func TestRecordingMissing(t *testing.T) {
	j := openTestJournal(t)

	r, err := j.Recording(42)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestEventsRoundTripInOrder(t *testing.T) {
	j := openTestJournal(t)

	id, err := j.BeginRecording("")
	require.NoError(t, err)

	when := time.Unix(0, 1700000000000000000)
	recorded := []input.Event{
		{Kind: input.HookEnabled, When: when},
		{
			Kind: input.KeyPressed,
			When: when.Add(time.Millisecond),
			Mask: input.MaskShiftL,
			Key:  input.Key{Code: input.VcA, Raw: 30, Char: input.CharUndefined},
		},
		{
			Kind: input.KeyTyped,
			When: when.Add(time.Millisecond),
			Mask: input.MaskShiftL,
			Key:  input.Key{Code: input.VcUndefined, Raw: 30, Char: 'A'},
		},
		{
			Kind:  input.MousePressed,
			When:  when.Add(2 * time.Millisecond),
			Mask:  input.MaskButton1,
			Mouse: input.Mouse{Button: input.Button1, Clicks: 2, X: -100, Y: 40},
		},
		{
			Kind:  input.MouseWheel,
			When:  when.Add(3 * time.Millisecond),
			Wheel: input.Wheel{Clicks: 1, X: 10, Y: 20, Type: input.UnitScroll, Amount: 3, Rotation: -1, Direction: input.VerticalDirection},
		},
	}
	require.NoError(t, j.AppendBatch(id, 0, recorded))

	events, err := j.Events(id)
	require.NoError(t, err)
	require.Len(t, events, len(recorded))

	for i, je := range events {
		assert.Equal(t, uint64(i), je.Seq)
		assert.Equal(t, recorded[i].Kind, je.Event.Kind)
		assert.Equal(t, recorded[i].Mask, je.Event.Mask)
		assert.True(t, recorded[i].When.Equal(je.Event.When), "timestamp survives")
	}

	assert.Equal(t, recorded[1].Key, events[1].Event.Key)
	assert.Equal(t, recorded[3].Mouse, events[3].Event.Mouse)
	assert.Equal(t, recorded[4].Wheel, events[4].Event.Wheel)

	count, err := j.EventCount(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(recorded)), count)
}

func TestAppendEventSequencesPerRecording(t *testing.T) {
	j := openTestJournal(t)

	first, err := j.BeginRecording("")
	require.NoError(t, err)
	second, err := j.BeginRecording("")
	require.NoError(t, err)

	ev := input.Event{Kind: input.MouseMoved, When: time.Now()}
	require.NoError(t, j.AppendEvent(first, 0, &ev))
	require.NoError(t, j.AppendEvent(second, 0, &ev))
	require.NoError(t, j.AppendEvent(first, 1, &ev))

	// Reusing a position within one recording is rejected.
	assert.Error(t, j.AppendEvent(first, 1, &ev))

	count, err := j.EventCount(first)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

func TestExportImportRoundTrip(t *testing.T) {
	j := openTestJournal(t)

	id, err := j.BeginRecording("round trip")
	require.NoError(t, err)

	when := time.Unix(0, 1700000000000000000)
	events := []input.Event{
		{Kind: input.HookEnabled, When: when},
		{
			Kind: input.KeyPressed,
			When: when.Add(time.Millisecond),
			Mask: input.MaskCtrlL,
			Key:  input.Key{Code: input.VcA, Raw: 30, Char: input.CharUndefined},
		},
		{
			Kind:  input.MouseDragged,
			When:  when.Add(2 * time.Millisecond),
			Mask:  input.MaskButton1,
			Mouse: input.Mouse{Button: input.NoButton, Clicks: 0, X: 5, Y: -5},
		},
	}
	require.NoError(t, j.AppendBatch(id, 0, events))
	require.NoError(t, j.EndRecording(id))

	var buf bytes.Buffer
	require.NoError(t, j.Export(id, &buf))

	copied, err := j.Import(&buf)
	require.NoError(t, err)
	require.NotEqual(t, id, copied)

	rec, err := j.Recording(copied)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "round trip", rec.Note)
	assert.NotNil(t, rec.StoppedNs, "imported recording is closed")

	imported, err := j.Events(copied)
	require.NoError(t, err)
	require.Len(t, imported, len(events))
	for i := range events {
		assert.Equal(t, events[i].Kind, imported[i].Event.Kind)
		assert.Equal(t, events[i].Mask, imported[i].Event.Mask)
		assert.True(t, events[i].When.Equal(imported[i].Event.When))
	}
	assert.Equal(t, events[1].Key, imported[1].Event.Key)
	assert.Equal(t, events[2].Mouse, imported[2].Event.Mouse)
}

func TestExportMissingRecording(t *testing.T) {
	j := openTestJournal(t)

	var buf bytes.Buffer
	assert.Error(t, j.Export(99, &buf))
}

func TestRecordingsNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.BeginRecording("older")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = j.BeginRecording("newer")
	require.NoError(t, err)

	recordings, err := j.Recordings()
	require.NoError(t, err)
	require.Len(t, recordings, 2)
	assert.Equal(t, "newer", recordings[0].Note)
	assert.Equal(t, "older", recordings[1].Note)
}
