// Package hook captures global keyboard and mouse input and delivers it
// as a portable event stream.
//
// A Session installs the platform capture mechanism (low-level hooks on
// windows, a CGEventTap on darwin, XRecord on x11), classifies raw
// reports into input.Event values and hands them to a dispatcher through
// a bounded queue. The capture thread never runs user code directly:
// when the queue is full, events are dropped and counted rather than
// stalling the hook, which on windows and darwin would get the hook
// evicted by the system.
package hook

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"inputtap/internal/logging"
	"inputtap/internal/modifiers"
	"inputtap/internal/textres"
	"inputtap/pkg/input"
)

// Dispatcher consumes captured events. It runs on the session's dispatch
// goroutine, never on the capture thread, so it may block briefly
// without destabilizing the hook.
type Dispatcher func(*input.Event)

// Options configures a capture session.
type Options struct {
	// Keyboard and Mouse select which device classes to capture. Both
	// default to true; disabling one narrows the platform hook so the
	// other class costs nothing.
	Keyboard bool
	Mouse    bool

	// QueueSize bounds the dispatch queue. Zero means 512.
	QueueSize int

	// ClickInterval is the maximum gap between presses that still counts
	// as a multi-click. Zero means the system double-click time.
	ClickInterval time.Duration

	Logger *logging.Logger
}

// DefaultOptions captures both device classes with system settings.
func DefaultOptions() Options {
	return Options{Keyboard: true, Mouse: true}
}

// Session is a single capture lifecycle. Run may be called again after
// the previous run has fully stopped.
type Session struct {
	opts Options
	log  *logging.Logger

	dispatch atomic.Pointer[Dispatcher]
	dropped  atomic.Uint64

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	queue chan input.Event
}

// NewSession creates a session; capture starts on Run.
func NewSession(opts Options) *Session {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 512
	}
	if opts.ClickInterval <= 0 {
		opts.ClickInterval = MultiClickTime()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	return &Session{
		opts: opts,
		log:  log.WithComponent("hook"),
	}
}

// SetDispatcher replaces the event consumer. May be called at any time,
// including while the session runs; a nil dispatcher discards events.
func (s *Session) SetDispatcher(d Dispatcher) {
	if d == nil {
		s.dispatch.Store(nil)
		return
	}
	s.dispatch.Store(&d)
}

// Dropped reports how many events were discarded on queue overflow.
func (s *Session) Dropped() uint64 {
	return s.dropped.Load()
}

// Running reports whether a capture run is active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Run installs the platform hook and blocks until the context is
// cancelled, Stop is called, or the platform reports a failure. The
// first delivered event is HookEnabled and the last is HookDisabled.
func (s *Session) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})
	s.queue = make(chan input.Event, s.opts.QueueSize)
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.running = false
		close(s.done)
		s.mu.Unlock()
	}()

	var resolver *textres.Coordinator
	if s.opts.Keyboard {
		resolver = textres.NewPlatform()
		defer resolver.Close()
	}

	tracker := modifiers.NewTracker(seedModifiers())
	proc := newProcessor(tracker, resolver, s.opts.ClickInterval, s.enqueue)

	drained := make(chan struct{})
	go s.dispatchLoop(drained)

	s.frame(input.HookEnabled, tracker)
	s.log.Info("capture started",
		"keyboard", s.opts.Keyboard,
		"mouse", s.opts.Mouse,
		"queue_size", s.opts.QueueSize,
		"click_interval", s.opts.ClickInterval,
	)

	err := runBackend(ctx, s.opts, proc, resolver)

	s.frame(input.HookDisabled, tracker)
	close(s.queue)
	<-drained

	if err != nil && ctx.Err() == nil {
		s.log.Error("capture failed", "error", err)
		return err
	}
	s.log.Info("capture stopped", "dropped", s.dropped.Load())
	return nil
}

// Stop cancels the active run and waits for it to unwind.
func (s *Session) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrNotRunning
	}
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done
	return nil
}

// frame emits one of the lifecycle bracket events.
func (s *Session) frame(kind input.Kind, tracker *modifiers.Tracker) {
	s.enqueue(&input.Event{
		Kind: kind,
		When: time.Now(),
		Mask: tracker.Current(),
	})
}

// enqueue hands an event to the dispatch queue without ever blocking
// the capture thread.
func (s *Session) enqueue(ev *input.Event) {
	select {
	case s.queue <- *ev:
	default:
		s.dropped.Add(1)
	}
}

func (s *Session) dispatchLoop(drained chan<- struct{}) {
	defer close(drained)
	for ev := range s.queue {
		if d := s.dispatch.Load(); d != nil {
			(*d)(&ev)
		}
	}
}
