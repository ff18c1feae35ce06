package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading, watching, and hot-reloading.
type Loader struct {
	path     string
	config   *Config
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	onChange []func(*Config)
	ctx      context.Context
	cancel   context.CancelFunc
	errChan  chan error
}

// NewLoader creates a new configuration loader.
func NewLoader(path string) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		path:    path,
		errChan: make(chan error, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Load reads and parses the configuration file.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg, err := loadConfigFromFile(l.path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if cfg.Version < Version {
		result, err := MigrateConfig(cfg, l.path)
		if err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		if result != nil {
			_ = SaveMigrationHistory(result)
		}
	}

	l.config = cfg
	return cfg, nil
}

// Config returns the current configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// Watch starts watching the configuration file for changes.
// When changes are detected, the configuration is reloaded and
// registered callbacks are invoked.
func (l *Loader) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	l.watcher = watcher

	// Watch the directory containing the config file
	dir := filepath.Dir(l.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go l.watchLoop()

	return nil
}

// watchLoop handles file system events.
func (l *Loader) watchLoop() {
	// Debounce timer to avoid multiple reloads for rapid changes
	var debounceTimer *time.Timer
	debounceDelay := 100 * time.Millisecond

	for {
		select {
		case <-l.ctx.Done():
			return

		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(l.path) {
				continue
			}

			// Only reload on write/create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				l.reload()
			})

		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			select {
			case l.errChan <- err:
			default:
			}
		}
	}
}

// reload attempts to reload the configuration.
func (l *Loader) reload() {
	newCfg, err := loadConfigFromFile(l.path)
	if err != nil {
		select {
		case l.errChan <- fmt.Errorf("reload config: %w", err):
		default:
		}
		return
	}

	newCfg.ApplyEnvOverrides()

	// Validate before applying
	if err := newCfg.Validate(); err != nil {
		select {
		case l.errChan <- fmt.Errorf("validate new config: %w", err):
		default:
		}
		return
	}

	l.mu.Lock()
	l.config = newCfg
	l.mu.Unlock()

	for _, cb := range l.onChange {
		cb(newCfg)
	}
}

// Reload re-reads the config file immediately, outside the file watch.
// The result is reported the same way a watched change would be: the
// new config is applied and change callbacks run, or an error lands on
// the Errors channel.
func (l *Loader) Reload() {
	l.reload()
}

// OnChange registers a callback to be invoked when the configuration changes.
func (l *Loader) OnChange(cb func(*Config)) {
	l.onChange = append(l.onChange, cb)
}

// Errors returns a channel for receiving errors that occur during watching.
func (l *Loader) Errors() <-chan error {
	return l.errChan
}

// Close stops the watcher and releases resources.
func (l *Loader) Close() error {
	l.cancel()
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}

// loadConfigFromFile reads and parses a config file based on its extension.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if no config file exists
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()

	ext := filepath.Ext(path)
	switch ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := autoDetectAndParse(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	return cfg, nil
}

// autoDetectAndParse attempts to parse the config in multiple formats.
func autoDetectAndParse(data []byte, cfg *Config) error {
	// Try TOML first (most common)
	if _, err := toml.Decode(string(data), cfg); err == nil {
		return nil
	}

	if err := json.Unmarshal(data, cfg); err == nil {
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err == nil {
		return nil
	}

	return fmt.Errorf("unable to parse config file (tried TOML, JSON, YAML)")
}

// LoadFromEnv creates a configuration primarily from environment variables.
// This is useful for containerized deployments.
func LoadFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	return cfg
}

// LoadOrCreate loads the configuration from the specified path,
// creating a default configuration file if it doesn't exist.
func LoadOrCreate(path string) (*Config, bool, error) {
	if path == "" {
		path = ConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, path); err != nil {
			return nil, false, fmt.Errorf("create default config: %w", err)
		}
		return cfg, true, nil
	}

	loader := NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		return nil, false, err
	}

	return cfg, false, nil
}

// Merge merges two configurations, with src overriding dst for non-zero values.
func Merge(dst, src *Config) *Config {
	result := dst.Clone()

	if src.Version > 0 {
		result.Version = src.Version
	}

	// Hook
	if src.Hook.QueueSize > 0 {
		result.Hook.QueueSize = src.Hook.QueueSize
	}
	if src.Hook.ClickIntervalMs > 0 {
		result.Hook.ClickIntervalMs = src.Hook.ClickIntervalMs
	}
	// Note: booleans are tricky - we can't distinguish "not set" from "false"
	// For explicit false, user should use the full config

	// Post
	if src.Post.TextDelayMs >= 0 {
		result.Post.TextDelayMs = src.Post.TextDelayMs
	}

	// Recording
	if src.Recording.Note != "" {
		result.Recording.Note = src.Recording.Note
	}
	if src.Recording.BatchSize > 0 {
		result.Recording.BatchSize = src.Recording.BatchSize
	}
	if src.Recording.FlushIntervalMs > 0 {
		result.Recording.FlushIntervalMs = src.Recording.FlushIntervalMs
	}

	// Storage
	if src.Storage.JournalPath != "" {
		result.Storage.JournalPath = src.Storage.JournalPath
	}
	if src.Storage.BusyTimeoutMs > 0 {
		result.Storage.BusyTimeoutMs = src.Storage.BusyTimeoutMs
	}

	// Logging
	if src.Logging.Level != "" {
		result.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		result.Logging.Format = src.Logging.Format
	}
	if src.Logging.Output != "" {
		result.Logging.Output = src.Logging.Output
	}
	if src.Logging.FilePath != "" {
		result.Logging.FilePath = src.Logging.FilePath
	}
	if src.Logging.MaxSizeMB > 0 {
		result.Logging.MaxSizeMB = src.Logging.MaxSizeMB
	}
	if src.Logging.MaxBackups > 0 {
		result.Logging.MaxBackups = src.Logging.MaxBackups
	}
	if src.Logging.MaxAgeDays > 0 {
		result.Logging.MaxAgeDays = src.Logging.MaxAgeDays
	}

	// Metrics
	if src.Metrics.ListenAddr != "" {
		result.Metrics.ListenAddr = src.Metrics.ListenAddr
	}

	return result
}

// ConfigWatcher provides a simple interface for watching config changes.
type ConfigWatcher struct {
	loader    *Loader
	callbacks []func(*Config, *Config) // old, new
}

// NewConfigWatcher creates a new config watcher.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	loader := NewLoader(path)
	if _, err := loader.Load(); err != nil {
		return nil, err
	}

	return &ConfigWatcher{
		loader: loader,
	}, nil
}

// Start begins watching for configuration changes.
func (w *ConfigWatcher) Start() error {
	// Track old config for diff callbacks
	oldCfg := w.loader.Config()

	w.loader.OnChange(func(newCfg *Config) {
		for _, cb := range w.callbacks {
			cb(oldCfg, newCfg)
		}
		oldCfg = newCfg
	})

	return w.loader.Watch()
}

// OnChange registers a callback for config changes.
// The callback receives both old and new configurations.
func (w *ConfigWatcher) OnChange(cb func(old, new *Config)) {
	w.callbacks = append(w.callbacks, cb)
}

// Config returns the current configuration.
func (w *ConfigWatcher) Config() *Config {
	return w.loader.Config()
}

// Stop stops watching for changes.
func (w *ConfigWatcher) Stop() error {
	return w.loader.Close()
}

// Reload forces a reload of the configuration.
func (w *ConfigWatcher) Reload() error {
	_, err := w.loader.Load()
	return err
}
