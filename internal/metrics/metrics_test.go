package metrics

import (
	"strings"
	"testing"
	"time"
)

func TestCounter(t *testing.T) {
	c := NewCounter("events_total", "test counter", nil)
	c.Inc()
	c.Add(4)
	if c.Value() != 5 {
		t.Errorf("expected 5, got %d", c.Value())
	}
}

func TestGauge(t *testing.T) {
	g := NewGauge("hook_running", "test gauge", nil)
	g.Set(1)
	g.Inc()
	g.Dec()
	if g.Value() != 1 {
		t.Errorf("expected 1, got %d", g.Value())
	}
}

func TestHistogram(t *testing.T) {
	h := NewHistogram("flush_seconds", "test histogram", nil, []float64{0.1, 1, 10})

	h.Observe(0.05)
	h.Observe(0.5)
	h.Observe(100)

	if h.Count() != 3 {
		t.Errorf("expected 3 observations, got %d", h.Count())
	}
	if h.Sum() != 100.55 {
		t.Errorf("expected sum 100.55, got %f", h.Sum())
	}
}

func TestRegistryNamespacing(t *testing.T) {
	r := NewRegistry("inputtap", "hook")
	c := r.RegisterCounter("events_total", "events", nil)

	if c.Name() != "inputtap_hook_events_total" {
		t.Errorf("unexpected full name %q", c.Name())
	}

	// Re-registering returns the same metric
	again := r.RegisterCounter("events_total", "events", nil)
	if again != c {
		t.Error("expected re-registration to return existing counter")
	}
}

func TestWritePrometheus(t *testing.T) {
	r := NewRegistry("inputtap", "")
	r.RegisterCounter("events_captured_total", "captured events", nil).Add(7)
	r.RegisterGauge("hook_running", "hook state", nil).Set(1)

	var sb strings.Builder
	if err := r.WritePrometheus(&sb); err != nil {
		t.Fatalf("WritePrometheus failed: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "inputtap_events_captured_total 7") {
		t.Errorf("missing counter sample in output:\n%s", out)
	}
	if !strings.Contains(out, "# TYPE inputtap_hook_running gauge") {
		t.Errorf("missing gauge type line in output:\n%s", out)
	}
}

func TestHookMetricsSnapshot(t *testing.T) {
	m := NewHookMetrics(NewRegistry("inputtap", ""))

	m.RecordCaptured()
	m.RecordCaptured()
	m.RecordDropped(3)
	m.RecordTypedUnits(2)
	m.RecordPost(nil)
	m.RecordJournalFlush(10, 5*time.Millisecond)
	m.HookStarted()

	snap := m.Snapshot()
	if snap["events_captured_total"] != uint64(2) {
		t.Errorf("expected 2 captured, got %v", snap["events_captured_total"])
	}
	if snap["events_dropped_total"] != uint64(3) {
		t.Errorf("expected 3 dropped, got %v", snap["events_dropped_total"])
	}
	if snap["journaled_total"] != uint64(10) {
		t.Errorf("expected 10 journaled, got %v", snap["journaled_total"])
	}
	if snap["hook_running"] != int64(1) {
		t.Errorf("expected hook running, got %v", snap["hook_running"])
	}
}
