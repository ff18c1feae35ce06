package main

import (
	"context"
	"sync"
	"time"

	"inputtap/internal/config"
	"inputtap/internal/logging"
	"inputtap/internal/metrics"
	"inputtap/internal/store"
	"inputtap/pkg/input"
)

// recorder batches captured events into one journal recording. offer
// runs on the session's dispatch goroutine, so it only appends to the
// buffer; the SQLite writes happen on the recorder's own goroutine and
// on synchronous flushes when a batch fills up.
type recorder struct {
	journal *store.Journal
	id      int64
	log     *logging.Logger
	metrics *metrics.HookMetrics

	mu            sync.Mutex
	seq           uint64
	buf           []input.Event
	batchSize     int
	flushInterval time.Duration
	closed        bool
}

func newRecorder(journal *store.Journal, cfg config.RecordingConfig, log *logging.Logger, m *metrics.HookMetrics) (*recorder, error) {
	id, err := journal.BeginRecording(cfg.Note)
	if err != nil {
		return nil, err
	}

	r := &recorder{
		journal: journal,
		id:      id,
		log:     log.WithComponent("recorder"),
		metrics: m,
	}
	r.setBatching(cfg.BatchSize, cfg.FlushIntervalMs)

	m.RecordingStarted()
	r.log.Info("recording started", "recording_id", id)
	return r, nil
}

// setBatching applies batch settings, normalizing out-of-range values.
// Safe to call while recording; a config reload uses it.
func (r *recorder) setBatching(batchSize, flushIntervalMs int) {
	if batchSize <= 0 {
		batchSize = 128
	}
	if flushIntervalMs <= 0 {
		flushIntervalMs = 1000
	}

	r.mu.Lock()
	r.batchSize = batchSize
	r.flushInterval = time.Duration(flushIntervalMs) * time.Millisecond
	r.mu.Unlock()
}

// offer appends an event to the pending batch, flushing when full.
func (r *recorder) offer(ev *input.Event) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.buf = append(r.buf, *ev)
	full := len(r.buf) >= r.batchSize
	r.mu.Unlock()

	if full {
		r.flush()
	}
}

// run flushes partial batches on a timer until the context ends.
func (r *recorder) run(ctx context.Context) {
	for {
		r.mu.Lock()
		interval := r.flushInterval
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			r.flush()
		}
	}
}

// flush writes the pending batch in one transaction.
func (r *recorder) flush() {
	r.mu.Lock()
	if len(r.buf) == 0 {
		r.mu.Unlock()
		return
	}
	batch := r.buf
	start := r.seq
	r.buf = nil
	r.seq += uint64(len(batch))
	r.mu.Unlock()

	began := time.Now()
	if err := r.journal.AppendBatch(r.id, start, batch); err != nil {
		r.log.Error("journal write failed", "recording_id", r.id, "events", len(batch), "error", err)
		r.metrics.RecordError()
		return
	}
	r.metrics.RecordJournalFlush(len(batch), time.Since(began))
}

// stats reports the recording ID and how many events were journaled.
func (r *recorder) stats() (id int64, events uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id, r.seq
}

// close flushes what remains and ends the recording.
func (r *recorder) close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.flush()
	if err := r.journal.EndRecording(r.id); err != nil {
		r.log.Error("end recording failed", "recording_id", r.id, "error", err)
		return
	}
	r.metrics.RecordingStopped()

	r.mu.Lock()
	total := r.seq
	r.mu.Unlock()
	r.log.Info("recording stopped", "recording_id", r.id, "events", total)
}