package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateConfig performs comprehensive validation of the configuration.
func ValidateConfig(c *Config) error {
	var errs ValidationErrors

	if c.Version < 1 || c.Version > Version {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (current: %d)", c.Version, Version),
		})
	}

	errs = append(errs, validateHook(&c.Hook)...)
	errs = append(errs, validatePost(&c.Post)...)
	errs = append(errs, validateRecording(&c.Recording)...)
	errs = append(errs, validateStorage(&c.Storage)...)
	errs = append(errs, validateLogging(&c.Logging)...)
	errs = append(errs, validateMetrics(&c.Metrics)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateHook(h *HookConfig) ValidationErrors {
	var errs ValidationErrors

	if !h.Keyboard && !h.Mouse {
		errs = append(errs, ValidationError{
			Field:   "hook",
			Message: "at least one of keyboard or mouse capture must be enabled",
		})
	}

	if h.QueueSize < 0 {
		errs = append(errs, ValidationError{
			Field:   "hook.queue_size",
			Message: "queue size cannot be negative",
		})
	}
	if h.QueueSize > 1<<20 {
		errs = append(errs, ValidationError{
			Field:   "hook.queue_size",
			Message: "queue size cannot exceed 1048576",
		})
	}

	if h.ClickIntervalMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "hook.click_interval_ms",
			Message: "click interval cannot be negative",
		})
	}
	if h.ClickIntervalMs > 10000 {
		errs = append(errs, ValidationError{
			Field:   "hook.click_interval_ms",
			Message: "click interval cannot exceed 10000ms",
		})
	}

	return errs
}

func validatePost(p *PostConfig) ValidationErrors {
	var errs ValidationErrors

	// -1 means platform default
	if p.TextDelayMs < -1 {
		errs = append(errs, ValidationError{
			Field:   "post.text_delay_ms",
			Message: "text delay must be -1 (platform default) or non-negative",
		})
	}
	if p.TextDelayMs > 5000 {
		errs = append(errs, ValidationError{
			Field:   "post.text_delay_ms",
			Message: "text delay cannot exceed 5000ms",
		})
	}

	return errs
}

func validateRecording(r *RecordingConfig) ValidationErrors {
	var errs ValidationErrors

	if r.BatchSize < 1 {
		errs = append(errs, ValidationError{
			Field:   "recording.batch_size",
			Message: "batch size must be at least 1",
		})
	}
	if r.BatchSize > 100000 {
		errs = append(errs, ValidationError{
			Field:   "recording.batch_size",
			Message: "batch size cannot exceed 100000",
		})
	}

	if r.FlushIntervalMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "recording.flush_interval_ms",
			Message: "flush interval cannot be negative",
		})
	}

	return errs
}

func validateStorage(s *StorageConfig) ValidationErrors {
	var errs ValidationErrors

	if s.JournalPath == "" {
		errs = append(errs, ValidationError{
			Field:   "storage.journal_path",
			Message: "journal path cannot be empty",
		})
	} else if !filepath.IsAbs(expandPath(s.JournalPath)) {
		errs = append(errs, ValidationError{
			Field:   "storage.journal_path",
			Message: "journal path must be absolute",
		})
	}

	if s.BusyTimeoutMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "storage.busy_timeout_ms",
			Message: "busy timeout cannot be negative",
		})
	}

	return errs
}

func validateLogging(l *LoggingConfig) ValidationErrors {
	var errs ValidationErrors

	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q (use debug, info, warn, or error)", l.Level),
		})
	}

	switch strings.ToLower(l.Format) {
	case "text", "json", "":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q (use text or json)", l.Format),
		})
	}

	switch strings.ToLower(l.Output) {
	case "stdout", "stderr", "file", "both", "":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.output",
			Message: fmt.Sprintf("unknown output %q (use stdout, stderr, file, or both)", l.Output),
		})
	}

	needsFile := strings.ToLower(l.Output) == "file" || strings.ToLower(l.Output) == "both"
	if needsFile && l.FilePath == "" {
		errs = append(errs, ValidationError{
			Field:   "logging.file_path",
			Message: "file path required when output includes file",
		})
	}

	if l.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Message: "max size cannot be negative",
		})
	}
	if l.MaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_backups",
			Message: "max backups cannot be negative",
		})
	}
	if l.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_age_days",
			Message: "max age cannot be negative",
		})
	}

	return errs
}

func validateMetrics(m *MetricsConfig) ValidationErrors {
	var errs ValidationErrors

	if m.Enabled {
		if m.ListenAddr == "" {
			errs = append(errs, ValidationError{
				Field:   "metrics.listen_addr",
				Message: "listen address required when metrics are enabled",
			})
		} else if _, _, err := net.SplitHostPort(m.ListenAddr); err != nil {
			errs = append(errs, ValidationError{
				Field:   "metrics.listen_addr",
				Message: fmt.Sprintf("invalid listen address: %v", err),
			})
		}
	}

	return errs
}

// expandPath expands ~ to the user home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
