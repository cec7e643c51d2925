// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

package config

import (
	"time"
)

// DefaultStorageFile is the JSON file used when neither a storage file path
// nor a SQLite DSN is configured.
const DefaultStorageFile = "autoescola.json"

// StructuredConfig is the top-level configuration container for the
// autoescola application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persisted key-value store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"), shown on the TUI welcome screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the persistence backend settings. When DB.DSN is set the
// SQLite backend is used; otherwise the JSON file backend at FilePath.
type Storage struct {
	// FilePath is the path of the JSON key-value storage file.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// DB holds the SQLite backend settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite file path used to open the database connection.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for the background backup worker.
type Workers struct {
	// BackupInterval defines how often the storage snapshot worker runs.
	// Zero disables periodic backups.
	// Env: WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`

	// BackupDir is the directory where storage snapshots are written.
	// Env: WORKERS_BACKUP_DIR
	BackupDir string `env:"BACKUP_DIR"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (an earlier source
// keeps a field it already set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.FilePath == "" && cfg.Storage.DB.DSN == "" {
		cfg.Storage.FilePath = DefaultStorageFile
	}
}
