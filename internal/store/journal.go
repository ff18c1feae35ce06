// Package store journals captured input events to SQLite so capture
// runs can be inspected and replayed later.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"inputtap/pkg/input"
)

// Schema for the event journal.
const schema = `
CREATE TABLE IF NOT EXISTS recordings (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    started_ns  INTEGER NOT NULL,
    stopped_ns  INTEGER,
    hostname    TEXT NOT NULL DEFAULT '',
    note        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS events (
    recording_id    INTEGER NOT NULL REFERENCES recordings(id),
    seq             INTEGER NOT NULL,
    timestamp_ns    INTEGER NOT NULL,
    kind            INTEGER NOT NULL,
    mask            INTEGER NOT NULL,
    keycode         INTEGER NOT NULL DEFAULT 0,
    rawcode         INTEGER NOT NULL DEFAULT 0,
    keychar         INTEGER NOT NULL DEFAULT 0,
    button          INTEGER NOT NULL DEFAULT 0,
    clicks          INTEGER NOT NULL DEFAULT 0,
    x               INTEGER NOT NULL DEFAULT 0,
    y               INTEGER NOT NULL DEFAULT 0,
    wheel_type      INTEGER NOT NULL DEFAULT 0,
    wheel_amount    INTEGER NOT NULL DEFAULT 0,
    wheel_rotation  INTEGER NOT NULL DEFAULT 0,
    wheel_direction INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (recording_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp_ns);
`

const eventColumns = `recording_id, seq, timestamp_ns, kind, mask, keycode, rawcode, keychar,
	button, clicks, x, y, wheel_type, wheel_amount, wheel_rotation, wheel_direction`

// Journal is the SQLite-backed event journal.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at the given path with a
// 5s busy timeout.
func Open(path string) (*Journal, error) {
	return OpenWithBusyTimeout(path, 5*time.Second)
}

// OpenWithBusyTimeout opens the journal with an explicit SQLite busy
// timeout, for deployments where another process inspects the journal
// while capture is writing.
func OpenWithBusyTimeout(path string, busyTimeout time.Duration) (*Journal, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=%d",
		path, busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Ping verifies the database connection is still usable.
func (j *Journal) Ping(ctx context.Context) error {
	return j.db.PingContext(ctx)
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// BeginRecording opens a new recording and returns its ID.
func (j *Journal) BeginRecording(note string) (int64, error) {
	hostname, _ := os.Hostname()

	result, err := j.db.Exec(`
		INSERT INTO recordings (started_ns, hostname, note)
		VALUES (?, ?, ?)`,
		time.Now().UnixNano(), hostname, note,
	)
	if err != nil {
		return 0, fmt.Errorf("begin recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get recording id: %w", err)
	}
	return id, nil
}

// EndRecording marks a recording as stopped.
func (j *Journal) EndRecording(id int64) error {
	if _, err := j.db.Exec(`
		UPDATE recordings SET stopped_ns = ? WHERE id = ? AND stopped_ns IS NULL`,
		time.Now().UnixNano(), id,
	); err != nil {
		return fmt.Errorf("end recording: %w", err)
	}
	return nil
}

// AppendEvent journals one event at the next position of a recording.
func (j *Journal) AppendEvent(recordingID int64, seq uint64, ev *input.Event) error {
	row := rowFromEvent(ev)
	if _, err := j.db.Exec(`
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recordingID, seq, row.TimestampNs, row.Kind, row.Mask,
		row.Keycode, row.Rawcode, row.Keychar,
		row.Button, row.Clicks, row.X, row.Y,
		row.WheelType, row.WheelAmount, row.WheelRot, row.WheelDir,
	); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// AppendBatch journals a run of events in one transaction, starting at
// startSeq.
func (j *Journal) AppendBatch(recordingID int64, startSeq uint64, events []input.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := range events {
		row := rowFromEvent(&events[i])
		if _, err := stmt.Exec(
			recordingID, startSeq+uint64(i), row.TimestampNs, row.Kind, row.Mask,
			row.Keycode, row.Rawcode, row.Keychar,
			row.Button, row.Clicks, row.X, row.Y,
			row.WheelType, row.WheelAmount, row.WheelRot, row.WheelDir,
		); err != nil {
			return fmt.Errorf("append event %d: %w", startSeq+uint64(i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Recording retrieves a recording by ID, or nil when absent.
func (j *Journal) Recording(id int64) (*Recording, error) {
	var r Recording
	err := j.db.QueryRow(`
		SELECT id, started_ns, stopped_ns, hostname, note
		FROM recordings WHERE id = ?`, id,
	).Scan(&r.ID, &r.StartedNs, &r.StoppedNs, &r.Hostname, &r.Note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recording: %w", err)
	}
	return &r, nil
}

// Recordings lists all recordings, newest first.
func (j *Journal) Recordings() ([]Recording, error) {
	rows, err := j.db.Query(`
		SELECT id, started_ns, stopped_ns, hostname, note
		FROM recordings ORDER BY started_ns DESC`)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	var recordings []Recording
	for rows.Next() {
		var r Recording
		if err := rows.Scan(&r.ID, &r.StartedNs, &r.StoppedNs, &r.Hostname, &r.Note); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		recordings = append(recordings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recordings: %w", err)
	}
	return recordings, nil
}

// Events retrieves a recording's events in journal order.
func (j *Journal) Events(recordingID int64) ([]JournaledEvent, error) {
	rows, err := j.db.Query(`
		SELECT `+eventColumns+`
		FROM events WHERE recording_id = ? ORDER BY seq ASC`, recordingID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []JournaledEvent
	for rows.Next() {
		var je JournaledEvent
		var row eventRow
		if err := rows.Scan(
			&je.RecordingID, &je.Seq, &row.TimestampNs, &row.Kind, &row.Mask,
			&row.Keycode, &row.Rawcode, &row.Keychar,
			&row.Button, &row.Clicks, &row.X, &row.Y,
			&row.WheelType, &row.WheelAmount, &row.WheelRot, &row.WheelDir,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		je.Event = row.toEvent()
		events = append(events, je)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// EventCount returns how many events a recording holds.
func (j *Journal) EventCount(recordingID int64) (uint64, error) {
	var count uint64
	err := j.db.QueryRow(`
		SELECT COUNT(*) FROM events WHERE recording_id = ?`, recordingID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
