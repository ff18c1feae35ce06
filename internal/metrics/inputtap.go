package metrics

import (
	"time"
)

// HookMetrics holds the capture and posting metrics for the daemon.
// Only counts and durations are recorded; key identities and resolved
// text never reach the registry.
type HookMetrics struct {
	registry *Registry

	// Counters
	EventsCapturedTotal *Counter
	EventsDroppedTotal  *Counter
	TypedUnitsTotal     *Counter
	ResolutionsTotal    *Counter
	PostsTotal          *Counter
	PostErrorsTotal     *Counter
	JournaledTotal      *Counter
	ErrorsTotal         *Counter

	// Gauges
	HookRunning     *Gauge
	ActiveRecording *Gauge
	UptimeSeconds   *Gauge

	// Histograms
	JournalFlushDuration *Histogram
	PostTextDuration     *Histogram
	EventInterval        *Histogram
}

// startTime records when metrics were initialized.
var startTime = time.Now()

// Registry returns the registry these metrics are registered in.
func (m *HookMetrics) Registry() *Registry {
	return m.registry
}

// NewHookMetrics creates and registers all capture metrics.
func NewHookMetrics(registry *Registry) *HookMetrics {
	if registry == nil {
		registry = Default()
	}

	m := &HookMetrics{
		registry: registry,

		// Counters
		EventsCapturedTotal: registry.RegisterCounter(
			"events_captured_total",
			"Total number of input events captured",
			nil,
		),
		EventsDroppedTotal: registry.RegisterCounter(
			"events_dropped_total",
			"Total number of events dropped from a full dispatch queue",
			nil,
		),
		TypedUnitsTotal: registry.RegisterCounter(
			"typed_units_total",
			"Total number of typed text units emitted",
			nil,
		),
		ResolutionsTotal: registry.RegisterCounter(
			"resolutions_total",
			"Total number of keystroke text resolutions",
			nil,
		),
		PostsTotal: registry.RegisterCounter(
			"posts_total",
			"Total number of synthesized events posted",
			nil,
		),
		PostErrorsTotal: registry.RegisterCounter(
			"post_errors_total",
			"Total number of failed post operations",
			nil,
		),
		JournaledTotal: registry.RegisterCounter(
			"journaled_events_total",
			"Total number of events written to the journal",
			nil,
		),
		ErrorsTotal: registry.RegisterCounter(
			"errors_total",
			"Total number of errors",
			nil,
		),

		// Gauges
		HookRunning: registry.RegisterGauge(
			"hook_running",
			"Whether the capture hook is currently running (0 or 1)",
			nil,
		),
		ActiveRecording: registry.RegisterGauge(
			"active_recording",
			"Whether a journal recording is currently open (0 or 1)",
			nil,
		),
		UptimeSeconds: registry.RegisterGauge(
			"uptime_seconds",
			"Number of seconds the daemon has been running",
			nil,
		),

		// Histograms
		JournalFlushDuration: registry.RegisterHistogram(
			"journal_flush_duration_seconds",
			"Duration of journal batch writes in seconds",
			nil,
			DurationBuckets,
		),
		PostTextDuration: registry.RegisterHistogram(
			"post_text_duration_seconds",
			"Duration of text posting operations in seconds",
			nil,
			DurationBuckets,
		),
		EventInterval: registry.RegisterHistogram(
			"event_interval_seconds",
			"Time between captured events in seconds",
			nil,
			[]float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		),
	}

	return m
}

// RecordCaptured records a captured event.
func (m *HookMetrics) RecordCaptured() {
	m.EventsCapturedTotal.Inc()
}

// RecordEventInterval records the interval between captured events.
func (m *HookMetrics) RecordEventInterval(d time.Duration) {
	m.EventInterval.ObserveDuration(d)
}

// RecordDropped adds newly dropped events to the counter.
func (m *HookMetrics) RecordDropped(n uint64) {
	if n > 0 {
		m.EventsDroppedTotal.Add(n)
	}
}

// RecordTypedUnits records emitted typed text units.
func (m *HookMetrics) RecordTypedUnits(n uint64) {
	m.TypedUnitsTotal.Add(n)
}

// RecordResolution records a keystroke text resolution.
func (m *HookMetrics) RecordResolution() {
	m.ResolutionsTotal.Inc()
}

// RecordPost records a synthesized event post.
func (m *HookMetrics) RecordPost(err error) {
	m.PostsTotal.Inc()
	if err != nil {
		m.PostErrorsTotal.Inc()
		m.ErrorsTotal.Inc()
	}
}

// StartPostTextTimer returns a timer for text posting.
func (m *HookMetrics) StartPostTextTimer() *HistogramTimer {
	return m.PostTextDuration.Timer()
}

// RecordJournalFlush records a journal batch write.
func (m *HookMetrics) RecordJournalFlush(events int, duration time.Duration) {
	m.JournaledTotal.Add(uint64(events))
	m.JournalFlushDuration.ObserveDuration(duration)
}

// RecordError records an error.
func (m *HookMetrics) RecordError() {
	m.ErrorsTotal.Inc()
}

// HookStarted marks the capture hook as running.
func (m *HookMetrics) HookStarted() {
	m.HookRunning.Set(1)
}

// HookStopped marks the capture hook as stopped.
func (m *HookMetrics) HookStopped() {
	m.HookRunning.Set(0)
}

// RecordingStarted marks a journal recording as open.
func (m *HookMetrics) RecordingStarted() {
	m.ActiveRecording.Set(1)
}

// RecordingStopped marks the journal recording as closed.
func (m *HookMetrics) RecordingStopped() {
	m.ActiveRecording.Set(0)
}

// UpdateUptime updates the uptime metric.
func (m *HookMetrics) UpdateUptime() {
	m.UptimeSeconds.Set(int64(time.Since(startTime).Seconds()))
}

// Snapshot returns a snapshot of key metrics.
func (m *HookMetrics) Snapshot() map[string]interface{} {
	m.UpdateUptime()
	return map[string]interface{}{
		"events_captured_total": m.EventsCapturedTotal.Value(),
		"events_dropped_total":  m.EventsDroppedTotal.Value(),
		"typed_units_total":     m.TypedUnitsTotal.Value(),
		"resolutions_total":     m.ResolutionsTotal.Value(),
		"posts_total":           m.PostsTotal.Value(),
		"post_errors_total":     m.PostErrorsTotal.Value(),
		"journaled_total":       m.JournaledTotal.Value(),
		"errors_total":          m.ErrorsTotal.Value(),
		"hook_running":          m.HookRunning.Value(),
		"active_recording":      m.ActiveRecording.Value(),
		"uptime_seconds":        m.UptimeSeconds.Value(),
		"journal_flush_mean":    m.JournalFlushDuration.Mean(),
	}
}

// Global hook metrics instance.
var defaultHookMetrics *HookMetrics

// GetMetrics returns the global hook metrics instance.
func GetMetrics() *HookMetrics {
	if defaultHookMetrics == nil {
		defaultHookMetrics = NewHookMetrics(Default())
	}
	return defaultHookMetrics
}

// InitMetrics initializes the global hook metrics with a custom registry.
func InitMetrics(registry *Registry) *HookMetrics {
	defaultHookMetrics = NewHookMetrics(registry)
	return defaultHookMetrics
}
