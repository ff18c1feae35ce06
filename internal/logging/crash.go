package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"
	"time"
)

// CrashReport captures the state of the process at a panic. A crashed
// hook daemon leaves the user without capture, so the dump has to be
// enough to diagnose the failure after the fact.
type CrashReport struct {
	Timestamp    time.Time        `json:"timestamp"`
	Version      string           `json:"version"`
	BuildInfo    *debug.BuildInfo `json:"build_info,omitempty"`
	GOOS         string           `json:"goos"`
	GOARCH       string           `json:"goarch"`
	NumCPU       int              `json:"num_cpu"`
	NumGoroutine int              `json:"num_goroutine"`
	PanicValue   string           `json:"panic_value"`
	StackTrace   string           `json:"stack_trace"`
	Component    string           `json:"component,omitempty"`
	Context      map[string]any   `json:"context,omitempty"`
}

// CrashHandler handles panic recovery and crash reporting.
type CrashHandler struct {
	mu        sync.Mutex
	crashDir  string
	version   string
	component string
	onCrash   func(CrashReport)
}

// CrashHandlerConfig configures the crash handler.
type CrashHandlerConfig struct {
	// CrashDir is the directory to write crash dumps.
	CrashDir string

	// Version is the application version.
	Version string

	// Component is the component name.
	Component string

	// OnCrash is called after a crash is logged.
	OnCrash func(CrashReport)
}

// DefaultCrashDir returns the platform-specific default crash directory.
func DefaultCrashDir() string {
	switch runtime.GOOS {
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "Library", "Logs", "DiagnosticReports", "inputtap")
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "inputtap", "crashes")
	default:
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			homeDir, _ := os.UserHomeDir()
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "inputtap", "crashes")
	}
}

var (
	globalCrashHandler *CrashHandler
	crashHandlerOnce   sync.Once
)

// DefaultCrashHandler returns the default global crash handler.
func DefaultCrashHandler() *CrashHandler {
	crashHandlerOnce.Do(func() {
		globalCrashHandler = NewCrashHandler(&CrashHandlerConfig{
			CrashDir:  DefaultCrashDir(),
			Component: "inputtap",
		})
	})
	return globalCrashHandler
}

// SetDefaultCrashHandler sets the default global crash handler.
func SetDefaultCrashHandler(h *CrashHandler) {
	globalCrashHandler = h
}

// NewCrashHandler creates a new CrashHandler.
func NewCrashHandler(cfg *CrashHandlerConfig) *CrashHandler {
	if cfg == nil {
		cfg = &CrashHandlerConfig{}
	}
	if cfg.CrashDir == "" {
		cfg.CrashDir = DefaultCrashDir()
	}

	os.MkdirAll(cfg.CrashDir, 0750)

	return &CrashHandler{
		crashDir:  cfg.CrashDir,
		version:   cfg.Version,
		component: cfg.Component,
		onCrash:   cfg.OnCrash,
	}
}

// SetVersion sets the application version.
func (h *CrashHandler) SetVersion(version string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.version = version
}

// Recover wraps a function with panic recovery.
func (h *CrashHandler) Recover(fn func()) {
	defer h.recover(nil)
	fn()
}

// RecoverGoroutine is designed to be called at the start of goroutines.
// Usage: go func() { defer crashHandler.RecoverGoroutine(); ... }()
func (h *CrashHandler) RecoverGoroutine() {
	h.recover(map[string]any{"type": "goroutine"})
}

func (h *CrashHandler) recover(contextInfo map[string]any) {
	if r := recover(); r != nil {
		h.HandlePanic(r, contextInfo)
	}
}

// HandlePanic processes a panic and creates a crash report.
func (h *CrashHandler) HandlePanic(panicValue any, contextInfo map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	report := CrashReport{
		Timestamp:    time.Now().UTC(),
		Version:      h.version,
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		PanicValue:   fmt.Sprintf("%v", panicValue),
		StackTrace:   string(debug.Stack()),
		Component:    h.component,
		Context:      contextInfo,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		report.BuildInfo = bi
	}

	h.writeCrashDump(report)

	if h.onCrash != nil {
		h.onCrash(report)
	}

	fmt.Fprintf(os.Stderr, "\n=== CRASH REPORT ===\n")
	fmt.Fprintf(os.Stderr, "Time: %s\n", report.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(os.Stderr, "Panic: %s\n", report.PanicValue)
	fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", report.StackTrace)
	fmt.Fprintf(os.Stderr, "Crash dump written to: %s\n", h.crashDir)
}

// writeCrashDump writes the crash report to a file.
func (h *CrashHandler) writeCrashDump(report CrashReport) error {
	filename := fmt.Sprintf("crash-%s-%s.json",
		report.Component,
		report.Timestamp.Format("20060102-150405"))
	path := filepath.Join(h.crashDir, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal crash report: %w", err)
	}

	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("write crash report: %w", err)
	}

	return nil
}

// CrashReports returns the crash reports found in the crash directory.
func (h *CrashHandler) CrashReports() ([]CrashReport, error) {
	files, err := filepath.Glob(filepath.Join(h.crashDir, "crash-*.json"))
	if err != nil {
		return nil, err
	}

	reports := make([]CrashReport, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}

		var report CrashReport
		if err := json.Unmarshal(data, &report); err != nil {
			continue
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// CleanupOldCrashReports removes crash reports older than maxAge.
func (h *CrashHandler) CleanupOldCrashReports(maxAge time.Duration) error {
	files, err := filepath.Glob(filepath.Join(h.crashDir, "crash-*.json"))
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			os.Remove(file)
		}
	}

	return nil
}

// RecoverPanic is a convenience function for panic recovery.
// Usage: defer logging.RecoverPanic()
func RecoverPanic() {
	if r := recover(); r != nil {
		DefaultCrashHandler().HandlePanic(r, nil)
	}
}
