package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Version != Version {
		t.Errorf("expected version %d, got %d", Version, cfg.Version)
	}
	if !cfg.Hook.Keyboard || !cfg.Hook.Mouse {
		t.Error("expected keyboard and mouse capture enabled by default")
	}
	if cfg.Hook.QueueSize != 512 {
		t.Errorf("expected queue size 512, got %d", cfg.Hook.QueueSize)
	}
	if cfg.Post.TextDelayMs != -1 {
		t.Errorf("expected platform-default text delay, got %d", cfg.Post.TextDelayMs)
	}

	if !strings.Contains(cfg.Storage.JournalPath, "inputtap") {
		t.Errorf("journal path should contain inputtap: %s", cfg.Storage.JournalPath)
	}
	if !strings.Contains(cfg.Logging.FilePath, "inputtap") {
		t.Errorf("log path should contain inputtap: %s", cfg.Logging.FilePath)
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if path == "" {
		t.Error("ConfigPath returned empty string")
	}
	if !strings.HasSuffix(path, "config.toml") {
		t.Errorf("expected path ending with config.toml, got %s", path)
	}
	if !strings.Contains(path, "inputtap") {
		t.Errorf("config path should contain inputtap: %s", path)
	}
}

func TestInputtapDirOverride(t *testing.T) {
	t.Setenv("INPUTTAP_DATA_DIR", "/custom/data")

	dir := InputtapDir()
	if dir != "/custom/data" {
		t.Errorf("expected /custom/data, got %s", dir)
	}
}

func TestLoadNonexistent(t *testing.T) {
	// Load from nonexistent path should return default config
	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}

	if cfg.Hook.QueueSize != 512 {
		t.Errorf("expected default queue size 512, got %d", cfg.Hook.QueueSize)
	}
}

func TestLoadValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
version = 2

[hook]
keyboard = true
mouse = false
queue_size = 1024
click_interval_ms = 350

[post]
text_delay_ms = 25

[storage]
journal_path = "/custom/path/journal.db"

[logging]
level = "debug"
output = "stderr"
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Hook.Mouse {
		t.Error("expected mouse capture disabled")
	}
	if cfg.Hook.QueueSize != 1024 {
		t.Errorf("expected queue size 1024, got %d", cfg.Hook.QueueSize)
	}
	if cfg.Hook.ClickIntervalMs != 350 {
		t.Errorf("expected click interval 350, got %d", cfg.Hook.ClickIntervalMs)
	}
	if cfg.Post.TextDelayMs != 25 {
		t.Errorf("expected text delay 25, got %d", cfg.Post.TextDelayMs)
	}
	if cfg.Storage.JournalPath != "/custom/path/journal.db" {
		t.Errorf("expected journal path /custom/path/journal.db, got %s", cfg.Storage.JournalPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	// Only set some values, rest should come from defaults
	content := `
[hook]
queue_size = 2048
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Hook.QueueSize != 2048 {
		t.Errorf("expected queue size 2048, got %d", cfg.Hook.QueueSize)
	}
	// Other fields should have defaults
	if !strings.Contains(cfg.Storage.JournalPath, "inputtap") {
		t.Error("journal path should have default value")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
this is not valid toml {{{
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	if err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateNoCaptureSources(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hook.Keyboard = false
	cfg.Hook.Mouse = false
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when both capture sources are disabled")
	}
}

func TestValidateNegativeQueueSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hook.QueueSize = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative queue size")
	}
}

func TestValidateTextDelayRange(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Post.TextDelayMs = -2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for text delay below -1")
	}

	cfg.Post.TextDelayMs = 6000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for text delay above 5000ms")
	}

	cfg.Post.TextDelayMs = -1
	if err := cfg.Validate(); err != nil {
		t.Errorf("platform-default text delay should be valid: %v", err)
	}
}

func TestValidateMissingJournalPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.JournalPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing journal path")
	}
}

func TestValidateUnknownLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestValidateMetricsListenAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.ListenAddr = "not an address"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid metrics listen address")
	}

	cfg.Metrics.ListenAddr = "127.0.0.1:9167"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid metrics address rejected: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Storage.JournalPath = filepath.Join(tmpDir, "subdir1", "journal.db")
	cfg.Logging.FilePath = filepath.Join(tmpDir, "subdir2", "inputtap.log")

	err := cfg.EnsureDirectories()
	if err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "subdir1")); os.IsNotExist(err) {
		t.Error("subdir1 was not created")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "subdir2")); os.IsNotExist(err) {
		t.Error("subdir2 was not created")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("INPUTTAP_JOURNAL_PATH", "/env/journal.db")
	t.Setenv("INPUTTAP_LOG_LEVEL", "debug")
	t.Setenv("INPUTTAP_METRICS_ADDR", "127.0.0.1:9999")

	cfg := LoadFromEnv()

	if cfg.Storage.JournalPath != "/env/journal.db" {
		t.Errorf("expected journal path override, got %s", cfg.Storage.JournalPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level override, got %s", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("expected metrics enabled at 127.0.0.1:9999, got %v %s",
			cfg.Metrics.Enabled, cfg.Metrics.ListenAddr)
	}
}

func TestConfigWithComments(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
# This is a comment
[hook]
queue_size = 256 # inline comment
# click_interval_ms = 999
click_interval_ms = 400
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Hook.QueueSize != 256 {
		t.Errorf("expected queue size 256, got %d", cfg.Hook.QueueSize)
	}
	if cfg.Hook.ClickIntervalMs != 400 {
		t.Errorf("expected click interval 400, got %d", cfg.Hook.ClickIntervalMs)
	}
}

func TestMigrateV1(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 1
	cfg.Storage.JournalPath = ""
	cfg.Recording.BatchSize = 0

	result, err := MigrateConfig(cfg, "")
	if err != nil {
		t.Fatalf("MigrateConfig failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected migration result")
	}

	if cfg.Version != Version {
		t.Errorf("expected version %d after migration, got %d", Version, cfg.Version)
	}
	if cfg.Storage.JournalPath == "" {
		t.Error("migration should set a default journal path")
	}
	if cfg.Recording.BatchSize == 0 {
		t.Error("migration should set a default batch size")
	}
	if len(result.Changes) == 0 {
		t.Error("expected migration changes to be recorded")
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := DefaultConfig()
	cfg.Hook.QueueSize = 777
	if err := SaveConfig(cfg, configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Hook.QueueSize != 777 {
		t.Errorf("expected queue size 777 after reload, got %d", loaded.Hook.QueueSize)
	}
}
