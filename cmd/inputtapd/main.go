// inputtapd captures global keyboard and mouse input and journals it.
//
// The daemon loads its configuration, installs the platform hook and
// streams captured events into the SQLite journal as one recording per
// run. An optional HTTP endpoint exposes capture metrics. Configuration
// changes on disk are picked up while running; capture settings apply
// on the next start, journaling batch settings apply immediately.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"inputtap/internal/config"
	"inputtap/internal/health"
	"inputtap/internal/hook"
	"inputtap/internal/ipc"
	"inputtap/internal/logging"
	"inputtap/internal/metrics"
	"inputtap/internal/post"
	"inputtap/internal/store"
	"inputtap/pkg/input"
)

var version = "dev"

var (
	configPath  = flag.String("config", "", "path to config file (default: platform config dir)")
	showVersion = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("inputtapd %s\n", version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "inputtapd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}

	cfg, created, err := config.LoadOrCreate(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}

	log, err := newLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Close()
	logging.SetDefault(log)

	crash := logging.DefaultCrashHandler()
	crash.SetVersion(version)
	defer crash.RecoverGoroutine()

	if created {
		log.Info("wrote default config", "path", path)
	}

	if !hook.AccessibilityTrusted(true) {
		log.Warn("process is not trusted for input monitoring; capture will see nothing until permission is granted")
	}

	if cfg.Post.TextDelayMs >= 0 {
		post.SetTextPostingDelay(time.Duration(cfg.Post.TextDelayMs) * time.Millisecond)
	}

	m := metrics.InitMetrics(metrics.NewRegistry("inputtap", ""))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var journal *store.Journal
	var rec *recorder
	if cfg.Recording.Enabled {
		journal, err = store.OpenWithBusyTimeout(
			cfg.Storage.JournalPath,
			time.Duration(cfg.Storage.BusyTimeoutMs)*time.Millisecond,
		)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer journal.Close()

		rec, err = newRecorder(journal, cfg.Recording, log, m)
		if err != nil {
			return fmt.Errorf("begin recording: %w", err)
		}
		go rec.run(ctx)
		defer rec.close()
	}

	session := hook.NewSession(hook.Options{
		Keyboard:      cfg.Hook.Keyboard,
		Mouse:         cfg.Hook.Mouse,
		QueueSize:     cfg.Hook.QueueSize,
		ClickInterval: time.Duration(cfg.Hook.ClickIntervalMs) * time.Millisecond,
		Logger:        log,
	})
	session.SetDispatcher(dispatcher(rec, m))

	checker := health.NewChecker()
	checker.RegisterFunc("capture", true, health.CaptureCheck(session.Running))
	checker.RegisterFunc("queue", false, health.DropCheck(session.Dropped))
	if journal != nil {
		checker.RegisterFunc("journal", true, health.JournalCheck(journal))
	}

	if cfg.Metrics.Enabled {
		metricsSrv := serveMetrics(cfg.Metrics.ListenAddr, m, checker, log)
		defer shutdownMetrics(metricsSrv, log)
	}

	loader := config.NewLoader(path)
	defer loader.Close()
	if _, err := loader.Load(); err == nil {
		loader.OnChange(func(next *config.Config) {
			log.Info("config reloaded; capture settings apply on restart")
			if rec != nil {
				rec.setBatching(next.Recording.BatchSize, next.Recording.FlushIntervalMs)
			}
			if next.Post.TextDelayMs >= 0 {
				post.SetTextPostingDelay(time.Duration(next.Post.TextDelayMs) * time.Millisecond)
			}
		})
		if err := loader.Watch(); err != nil {
			log.Warn("config watch unavailable", "error", err)
		}
	}

	startTime := time.Now()
	ctl, err := ipc.NewServer(ipc.Handlers{
		Status:   statusFunc(cfg, session, rec, m, startTime),
		Reload:   loader.Reload,
		Shutdown: stop,
	}, log)
	if err != nil {
		log.Warn("control endpoint unavailable", "error", err)
	} else {
		go ctl.Serve(ctx)
		defer ctl.Close()
		log.Info("control endpoint listening", "addr", ctl.Addr())
	}

	if pidPath := writePIDFile(log); pidPath != "" {
		defer os.Remove(pidPath)
	}

	go syncStats(ctx, session, m)

	log.Info("starting capture daemon", "version", version, "config", path)
	m.HookStarted()
	checker.SetReady(true)
	err = session.Run(ctx)
	checker.SetReady(false)
	m.HookStopped()

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("capture: %w", err)
	}
	return nil
}

// dispatcher fans each captured event into the journal recorder and the
// metrics counters. It runs on the session's dispatch goroutine.
func dispatcher(rec *recorder, m *metrics.HookMetrics) hook.Dispatcher {
	var last time.Time
	return func(ev *input.Event) {
		m.RecordCaptured()
		if !last.IsZero() {
			m.RecordEventInterval(ev.When.Sub(last))
		}
		last = ev.When
		if ev.Kind == input.KeyTyped {
			m.RecordTypedUnits(1)
		}
		if rec != nil {
			rec.offer(ev)
		}
	}
}

// statusFunc builds the control channel's live status snapshot.
func statusFunc(cfg *config.Config, session *hook.Session, rec *recorder, m *metrics.HookMetrics, startTime time.Time) func() ipc.StatusResponse {
	return func() ipc.StatusResponse {
		status := ipc.StatusResponse{
			Version:        version,
			PID:            os.Getpid(),
			UptimeSeconds:  int64(time.Since(startTime).Seconds()),
			CaptureRunning: session.Running(),
			EventsCaptured: m.EventsCapturedTotal.Value(),
			EventsDropped:  session.Dropped(),
		}
		if rec != nil {
			status.Recording = true
			status.RecordingID, status.RecordingEvents = rec.stats()
			status.JournalPath = cfg.Storage.JournalPath
		}
		if cfg.Metrics.Enabled {
			status.MetricsListening = cfg.Metrics.ListenAddr
		}
		return status
	}
}

// syncStats folds the session's drop counter into metrics and keeps the
// uptime gauge current.
func syncStats(ctx context.Context, session *hook.Session, m *metrics.HookMetrics) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	var reported uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dropped := session.Dropped()
			m.RecordDropped(dropped - reported)
			reported = dropped
			m.UpdateUptime()
		}
	}
}

func serveMetrics(addr string, m *metrics.HookMetrics, checker *health.Checker, log *logging.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Registry().HTTPHandler())
	mux.Handle("/healthz", checker.LivenessHandler())
	mux.Handle("/readyz", checker.ReadinessHandler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("metrics endpoint listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics endpoint failed", "error", err)
		}
	}()
	return srv
}

func shutdownMetrics(srv *http.Server, log *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("metrics endpoint shutdown", "error", err)
	}
}

func writePIDFile(log *logging.Logger) string {
	paths := config.GetDefaultPaths()
	if err := os.MkdirAll(filepath.Dir(paths.PIDFile), 0700); err != nil {
		log.Warn("pid file directory", "error", err)
		return ""
	}
	data := []byte(strconv.Itoa(os.Getpid()) + "\n")
	if err := os.WriteFile(paths.PIDFile, data, 0644); err != nil {
		log.Warn("pid file write", "error", err)
		return ""
	}
	return paths.PIDFile
}

// newLogger translates the daemon's logging section into a logger.
func newLogger(lc *config.LoggingConfig) (*logging.Logger, error) {
	cfg := logging.DefaultConfig()
	if lc.Level != "" {
		level, err := logging.ParseLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		cfg.Level = level
	}
	if lc.Format == "json" {
		cfg.Format = logging.FormatJSON
	}
	if lc.Output != "" {
		cfg.Output = lc.Output
	}
	if lc.FilePath != "" {
		cfg.FilePath = lc.FilePath
	}
	if lc.MaxSizeMB > 0 {
		cfg.MaxSize = int64(lc.MaxSizeMB)
	}
	if lc.MaxBackups > 0 {
		cfg.MaxBackups = lc.MaxBackups
	}
	if lc.MaxAgeDays > 0 {
		cfg.MaxAge = lc.MaxAgeDays
	}
	cfg.Compress = lc.Compress
	cfg.Component = "inputtapd"
	return logging.New(cfg)
}
