package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		hasError bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"invalid", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			level, err := ParseLevel(test.input)
			if test.hasError && err == nil {
				t.Error("expected error, got nil")
			}
			if !test.hasError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !test.hasError && level != test.expected {
				t.Errorf("expected %v, got %v", test.expected, level)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := LevelString(test.level)
			if result != test.expected {
				t.Errorf("expected %q, got %q", test.expected, result)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("expected default level Info, got %v", cfg.Level)
	}
	if cfg.Format != FormatText {
		t.Errorf("expected default format Text, got %v", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected default output stderr, got %s", cfg.Output)
	}
	if cfg.MaxSize <= 0 {
		t.Errorf("expected positive MaxSize, got %d", cfg.MaxSize)
	}
	if cfg.MaxAge <= 0 {
		t.Errorf("expected positive MaxAge, got %d", cfg.MaxAge)
	}
	if cfg.MaxBackups <= 0 {
		t.Errorf("expected positive MaxBackups, got %d", cfg.MaxBackups)
	}
}

func TestLoggerNew(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "stderr"

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.Logger == nil {
		t.Error("logger.Logger is nil")
	}
}

func TestLoggerWithComponent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "stderr"

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Close()

	childLogger := logger.WithComponent("test-component")
	if childLogger == nil {
		t.Error("WithComponent returned nil")
	}
}

func TestShouldRedact(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"password", true},
		{"PASSWORD", true},
		{"user_password", true},
		{"secret", true},
		{"token", true},
		{"auth_token", true},
		{"credential", true},
		{"private_key", true},
		{"text", true},
		{"typed_text", true},
		{"keychar", true},
		{"keysym", true},
		{"keycode", true},
		{"clipboard", true},
		{"button", false},
		{"clicks", false},
		{"kind", false},
		{"queue_size", false},
		{"timestamp", false},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			result := shouldRedact(test.key)
			if result != test.expected {
				t.Errorf("shouldRedact(%q) = %v, expected %v", test.key, result, test.expected)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	cfg := &Config{
		Level:     LevelInfo,
		Format:    FormatJSON,
		Output:    "stdout",
		Component: "test",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create JSON logger: %v", err)
	}
	defer logger.Close()
}

func TestFileRotator(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	cfg := &Config{
		FilePath:   logPath,
		MaxSize:    1, // 1 MB
		MaxAge:     7,
		MaxBackups: 3,
		Compress:   false, // Disable for faster tests
	}

	rotator, err := NewFileRotator(cfg)
	if err != nil {
		t.Fatalf("failed to create rotator: %v", err)
	}
	defer rotator.Close()

	testData := []byte("test log line\n")
	n, err := rotator.Write(testData)
	if err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if n != len(testData) {
		t.Errorf("expected to write %d bytes, wrote %d", len(testData), n)
	}

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file was not created")
	}

	if err := rotator.Sync(); err != nil {
		t.Errorf("sync failed: %v", err)
	}
}

func TestFileRotatorListsFiles(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	cfg := &Config{
		FilePath:   logPath,
		MaxSize:    1, // 1 MB
		MaxAge:     7,
		MaxBackups: 3,
		Compress:   false,
	}

	rotator, err := NewFileRotator(cfg)
	if err != nil {
		t.Fatalf("failed to create rotator: %v", err)
	}
	defer rotator.Close()

	for i := 0; i < 100; i++ {
		rotator.Write([]byte("test log line " + string(rune('A'+i%26)) + "\n"))
	}

	files, err := rotator.GetLogFiles()
	if err != nil {
		t.Fatalf("failed to get log files: %v", err)
	}

	if len(files) == 0 {
		t.Error("no log files found")
	}
}

func TestCrashHandler(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &CrashHandlerConfig{
		CrashDir:  tmpDir,
		Version:   "1.0.0",
		Component: "test",
	}

	handler := NewCrashHandler(cfg)

	handler.HandlePanic("test panic value", map[string]any{
		"test_key": "test_value",
	})

	reports, err := handler.CrashReports()
	if err != nil {
		t.Fatalf("failed to get crash reports: %v", err)
	}

	if len(reports) != 1 {
		t.Fatalf("expected one crash report, got %d", len(reports))
	}

	report := reports[0]
	if report.PanicValue != "test panic value" {
		t.Errorf("expected panic value 'test panic value', got %q", report.PanicValue)
	}
	if report.Version != "1.0.0" {
		t.Errorf("expected version '1.0.0', got %q", report.Version)
	}
	if report.Component != "test" {
		t.Errorf("expected component 'test', got %q", report.Component)
	}
}

func TestCrashHandlerRecovery(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &CrashHandlerConfig{
		CrashDir:  tmpDir,
		Version:   "1.0.0",
		Component: "test",
	}

	handler := NewCrashHandler(cfg)

	ran := false
	handler.Recover(func() {
		ran = true
		panic("intentional test panic")
	})

	if !ran {
		t.Error("function did not run")
	}

	reports, _ := handler.CrashReports()
	if len(reports) == 0 {
		t.Error("crash report was not created for recovered panic")
	}
}

func TestCrashHandlerCleanupOld(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &CrashHandlerConfig{
		CrashDir:  tmpDir,
		Version:   "1.0.0",
		Component: "test",
	}

	handler := NewCrashHandler(cfg)
	handler.HandlePanic("test panic", nil)

	time.Sleep(5 * time.Millisecond)
	if err := handler.CleanupOldCrashReports(time.Millisecond); err != nil {
		t.Errorf("CleanupOldCrashReports failed: %v", err)
	}

	reports, _ := handler.CrashReports()
	if len(reports) != 0 {
		t.Errorf("expected reports removed, %d remain", len(reports))
	}
}
