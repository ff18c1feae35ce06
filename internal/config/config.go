// Package config handles configuration loading, validation, and management for inputtap.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Version is the current configuration schema version.
const Version = 2

// Config holds the complete daemon configuration.
type Config struct {
	// Version is the configuration schema version for migrations.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Hook configuration for input capture.
	Hook HookConfig `toml:"hook" json:"hook" yaml:"hook"`

	// Post configuration for event synthesis.
	Post PostConfig `toml:"post" json:"post" yaml:"post"`

	// Recording configuration for journaling captured events.
	Recording RecordingConfig `toml:"recording" json:"recording" yaml:"recording"`

	// Storage configuration for persistence.
	Storage StorageConfig `toml:"storage" json:"storage" yaml:"storage"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`

	// Metrics configuration for the observability endpoint.
	Metrics MetricsConfig `toml:"metrics" json:"metrics" yaml:"metrics"`

	// mu protects concurrent access to the config.
	mu sync.RWMutex `toml:"-" json:"-" yaml:"-"`
}

// HookConfig holds input capture configuration.
type HookConfig struct {
	// Keyboard enables keyboard capture.
	Keyboard bool `toml:"keyboard" json:"keyboard" yaml:"keyboard"`

	// Mouse enables mouse capture.
	Mouse bool `toml:"mouse" json:"mouse" yaml:"mouse"`

	// QueueSize is the dispatch queue capacity. Events beyond it are
	// dropped rather than stalling the capture thread.
	QueueSize int `toml:"queue_size" json:"queue_size" yaml:"queue_size"`

	// ClickIntervalMs is the multi-click window in milliseconds.
	// Set to 0 to use the system double-click time.
	ClickIntervalMs int `toml:"click_interval_ms" json:"click_interval_ms" yaml:"click_interval_ms"`
}

// PostConfig holds event synthesis configuration.
type PostConfig struct {
	// TextDelayMs is the settle delay between text posting remap cycles
	// in milliseconds. Set to -1 to use the platform default.
	TextDelayMs int `toml:"text_delay_ms" json:"text_delay_ms" yaml:"text_delay_ms"`
}

// RecordingConfig holds event journaling configuration.
type RecordingConfig struct {
	// Enabled determines whether captured events are journaled.
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`

	// Note is attached to recordings started by the daemon.
	Note string `toml:"note" json:"note" yaml:"note"`

	// BatchSize is the number of events written per transaction.
	BatchSize int `toml:"batch_size" json:"batch_size" yaml:"batch_size"`

	// FlushIntervalMs flushes a partial batch after this many milliseconds.
	FlushIntervalMs int `toml:"flush_interval_ms" json:"flush_interval_ms" yaml:"flush_interval_ms"`
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	// JournalPath is the path to the event journal database.
	JournalPath string `toml:"journal_path" json:"journal_path" yaml:"journal_path"`

	// BusyTimeoutMs is the SQLite busy timeout in milliseconds.
	BusyTimeoutMs int `toml:"busy_timeout_ms" json:"busy_timeout_ms" yaml:"busy_timeout_ms"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is the log format: "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is the log output: "stdout", "stderr", "file", or "both".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the path to the log file (when Output includes "file").
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`

	// MaxSizeMB is the maximum log file size before rotation.
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of old log files to keep.
	MaxBackups int `toml:"max_backups" json:"max_backups" yaml:"max_backups"`

	// MaxAgeDays is the maximum age of log files in days.
	MaxAgeDays int `toml:"max_age_days" json:"max_age_days" yaml:"max_age_days"`

	// Compress determines whether to compress rotated logs.
	Compress bool `toml:"compress" json:"compress" yaml:"compress"`
}

// MetricsConfig holds metrics endpoint configuration.
type MetricsConfig struct {
	// Enabled determines whether the metrics HTTP endpoint is served.
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`

	// ListenAddr is the address the metrics endpoint binds to.
	ListenAddr string `toml:"listen_addr" json:"listen_addr" yaml:"listen_addr"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	dir := InputtapDir()

	return &Config{
		Version: Version,
		Hook: HookConfig{
			Keyboard:        true,
			Mouse:           true,
			QueueSize:       512,
			ClickIntervalMs: 0, // system double-click time
		},
		Post: PostConfig{
			TextDelayMs: -1, // platform default
		},
		Recording: RecordingConfig{
			Enabled:         false,
			Note:            "",
			BatchSize:       128,
			FlushIntervalMs: 1000,
		},
		Storage: StorageConfig{
			JournalPath:   filepath.Join(dir, "journal.db"),
			BusyTimeoutMs: 5000,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "file",
			FilePath:   filepath.Join(PlatformLogDir(), "inputtap.log"),
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			ListenAddr: "127.0.0.1:9167",
		},
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(PlatformConfigDir(), "config.toml")
}

// Load reads configuration from the specified path.
// If the file doesn't exist, returns default configuration.
// Supports TOML, JSON, and YAML formats based on file extension.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}

// EnsureDirectories creates all necessary directories for the daemon.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Storage.JournalPath),
		filepath.Dir(c.Logging.FilePath),
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// InputtapDir returns the base inputtap data directory.
// Uses platform-specific paths or INPUTTAP_DATA_DIR environment override.
func InputtapDir() string {
	if envDir := os.Getenv("INPUTTAP_DATA_DIR"); envDir != "" {
		return envDir
	}
	return PlatformDataDir()
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables are prefixed with INPUTTAP_ and use underscores.
func (c *Config) ApplyEnvOverrides() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v := os.Getenv("INPUTTAP_JOURNAL_PATH"); v != "" {
		c.Storage.JournalPath = v
	}

	if v := os.Getenv("INPUTTAP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("INPUTTAP_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}

	if v := os.Getenv("INPUTTAP_METRICS_ADDR"); v != "" {
		c.Metrics.ListenAddr = v
		c.Metrics.Enabled = true
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	clone := Config{
		Version:   c.Version,
		Hook:      c.Hook,
		Post:      c.Post,
		Recording: c.Recording,
		Storage:   c.Storage,
		Logging:   c.Logging,
		Metrics:   c.Metrics,
	}
	return &clone
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
