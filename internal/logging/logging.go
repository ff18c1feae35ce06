// Package logging provides structured logging with slog for inputtap.
//
// Besides the usual levels, formats and rotation, the logger redacts
// attribute keys that could carry captured input. A process that can
// observe every keystroke must never let resolved text or key
// identities leak into its own logs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Level represents a logging level.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format represents the output format for logs.
type Format int

const (
	// FormatText outputs human-readable text logs.
	FormatText Format = iota
	// FormatJSON outputs JSON-structured logs.
	FormatJSON
)

// Config holds the logging configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level Level

	// Format is the output format (text or JSON).
	Format Format

	// Output specifies where logs are written.
	// Can be "stdout", "stderr", "file", or "both".
	Output string

	// FilePath is the path to the log file when Output includes "file".
	FilePath string

	// MaxSize is the maximum size of a log file in megabytes before rotation.
	MaxSize int64

	// MaxAge is the maximum age of log files in days before deletion.
	MaxAge int

	// MaxBackups is the maximum number of rotated log files to keep.
	MaxBackups int

	// Compress determines if rotated logs should be gzip compressed.
	Compress bool

	// AddSource adds source file and line to log entries.
	AddSource bool

	// Component is the name of the component using this logger.
	Component string
}

// DefaultConfig returns a default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:      LevelInfo,
		Format:     FormatText,
		Output:     "stderr",
		FilePath:   defaultLogPath(),
		MaxSize:    50, // 50 MB
		MaxAge:     14, // 14 days
		MaxBackups: 3,
		Compress:   true,
		AddSource:  false,
		Component:  "inputtap",
	}
}

// defaultLogPath returns the platform-specific default log path.
func defaultLogPath() string {
	switch runtime.GOOS {
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "Library", "Logs", "inputtap", "inputtap.log")
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "inputtap", "logs", "inputtap.log")
	default: // Linux and other Unix
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			homeDir, _ := os.UserHomeDir()
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "inputtap", "inputtap.log")
	}
}

// Logger wraps slog.Logger with rotation and component scoping.
type Logger struct {
	*slog.Logger
	config  *Config
	writers []io.Writer
	rotator *FileRotator
	mu      sync.RWMutex
}

// global default logger
var (
	defaultLogger *Logger
	loggerOnce    sync.Once
)

// Default returns the default global logger.
func Default() *Logger {
	loggerOnce.Do(func() {
		var err error
		defaultLogger, err = New(DefaultConfig())
		if err != nil {
			// Fallback to stderr
			defaultLogger = &Logger{
				Logger: slog.Default(),
				config: DefaultConfig(),
			}
		}
	})
	return defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(l *Logger) {
	defaultLogger = l
	slog.SetDefault(l.Logger)
}

// New creates a new Logger with the given configuration.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	l := &Logger{
		config:  cfg,
		writers: make([]io.Writer, 0),
	}

	if err := l.setupWriters(); err != nil {
		return nil, fmt.Errorf("setup writers: %w", err)
	}

	var w io.Writer
	if len(l.writers) == 1 {
		w = l.writers[0]
	} else {
		w = io.MultiWriter(l.writers...)
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if shouldRedact(a.Key) {
				a.Value = slog.StringValue("[REDACTED]")
			}
			return a
		},
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	if cfg.Component != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("component", cfg.Component),
		})
	}

	l.Logger = slog.New(handler)
	return l, nil
}

// setupWriters configures the output writers based on config.
func (l *Logger) setupWriters() error {
	switch strings.ToLower(l.config.Output) {
	case "stdout":
		l.writers = append(l.writers, os.Stdout)
	case "stderr":
		l.writers = append(l.writers, os.Stderr)
	case "file":
		rotator, err := NewFileRotator(l.config)
		if err != nil {
			return err
		}
		l.rotator = rotator
		l.writers = append(l.writers, rotator)
	case "both":
		l.writers = append(l.writers, os.Stderr)
		rotator, err := NewFileRotator(l.config)
		if err != nil {
			return err
		}
		l.rotator = rotator
		l.writers = append(l.writers, rotator)
	default:
		l.writers = append(l.writers, os.Stderr)
	}
	return nil
}

// shouldRedact checks if an attribute key could carry captured input or
// credentials. Resolved text and key identities never reach the log,
// only counts and kinds do.
func shouldRedact(key string) bool {
	sensitiveKeys := []string{
		"text", "char", "keychar", "keysym", "keycode", "clipboard",
		"password", "secret", "token", "credential", "private", "auth",
	}

	keyLower := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(keyLower, sensitive) {
			return true
		}
	}
	return false
}

// WithComponent returns a new logger with a different component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger:  l.Logger.With(slog.String("component", name)),
		config:  l.config,
		writers: l.writers,
		rotator: l.rotator,
	}
}

// Close closes any open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rotator != nil {
		return l.rotator.Close()
	}
	return nil
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rotator != nil {
		return l.rotator.Sync()
	}
	return nil
}

// Convenience functions for the default logger.

// Debug logs at debug level using the default logger.
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info logs at info level using the default logger.
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

// Warn logs at warn level using the default logger.
func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

// Error logs at error level using the default logger.
func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

// ParseLevel parses a string into a log level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// LevelString returns the string representation of a log level.
func LevelString(level Level) string {
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}
