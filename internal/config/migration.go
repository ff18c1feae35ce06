package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MigrationResult contains the result of a configuration migration.
type MigrationResult struct {
	FromVersion int
	ToVersion   int
	Backup      string
	Changes     []string
	Warnings    []string
}

// MigrateConfig migrates a configuration from an older version to the current version.
// It automatically creates a backup before migration.
func MigrateConfig(cfg *Config, configPath string) (*MigrationResult, error) {
	if cfg.Version >= Version {
		return nil, nil // No migration needed
	}

	result := &MigrationResult{
		FromVersion: cfg.Version,
		ToVersion:   Version,
	}

	// Create backup before migration
	if configPath != "" {
		backup, err := backupConfig(configPath)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not create backup: %v", err))
		} else {
			result.Backup = backup
		}
	}

	// Apply migrations in sequence
	for cfg.Version < Version {
		changes, warnings, err := applyMigration(cfg)
		if err != nil {
			return result, fmt.Errorf("migration from v%d to v%d failed: %w", cfg.Version, cfg.Version+1, err)
		}
		result.Changes = append(result.Changes, changes...)
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result, nil
}

// applyMigration applies a single version upgrade.
func applyMigration(cfg *Config) (changes []string, warnings []string, err error) {
	switch cfg.Version {
	case 1:
		changes, warnings = migrateV1ToV2(cfg)
	default:
		return nil, nil, fmt.Errorf("unknown version %d", cfg.Version)
	}

	cfg.Version++
	return changes, warnings, nil
}

// migrateV1ToV2 migrates from version 1 to version 2.
// V1 predates event journaling and the metrics endpoint.
func migrateV1ToV2(cfg *Config) (changes []string, warnings []string) {
	dir := InputtapDir()

	if cfg.Storage.JournalPath == "" {
		cfg.Storage.JournalPath = filepath.Join(dir, "journal.db")
		changes = append(changes, "set default storage.journal_path")
	}
	if cfg.Storage.BusyTimeoutMs == 0 {
		cfg.Storage.BusyTimeoutMs = 5000
		changes = append(changes, "set default storage.busy_timeout_ms")
	}

	if cfg.Recording.BatchSize == 0 {
		cfg.Recording.BatchSize = 128
		cfg.Recording.FlushIntervalMs = 1000
		changes = append(changes, "added recording configuration")
	}

	if cfg.Metrics.ListenAddr == "" {
		cfg.Metrics.ListenAddr = "127.0.0.1:9167"
		changes = append(changes, "added metrics configuration")
	}

	return changes, warnings
}

// backupConfig copies the config file next to itself with a timestamp suffix.
func backupConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}

	backup := fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backup, data, 0600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backup, nil
}

// migrationHistoryPath returns the path of the migration history file.
func migrationHistoryPath() string {
	return filepath.Join(InputtapDir(), "migrations.json")
}

// SaveMigrationHistory appends a migration result to the history file.
func SaveMigrationHistory(result *MigrationResult) error {
	type record struct {
		Timestamp   time.Time `json:"timestamp"`
		FromVersion int       `json:"from_version"`
		ToVersion   int       `json:"to_version"`
		Backup      string    `json:"backup,omitempty"`
		Changes     []string  `json:"changes,omitempty"`
		Warnings    []string  `json:"warnings,omitempty"`
	}

	path := migrationHistoryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	var history []record
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &history)
	}

	history = append(history, record{
		Timestamp:   time.Now().UTC(),
		FromVersion: result.FromVersion,
		ToVersion:   result.ToVersion,
		Backup:      result.Backup,
		Changes:     result.Changes,
		Warnings:    result.Warnings,
	})

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal migration history: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write migration history: %w", err)
	}
	return nil
}
