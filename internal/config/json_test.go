package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "30s" or raw nanoseconds.
	jsonBody := `{
		"app": { "version": "1.2.3" },
		"storage": {
			"file_path": "/var/data/autoescola.json",
			"db": { "dsn": "/var/data/autoescola.db" }
		},
		"workers": {
			"backup_interval": "1h",
			"backup_dir": "/var/backups"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/data/autoescola.json", cfg.Storage.FilePath)
	assert.Equal(t, "/var/data/autoescola.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.Workers.BackupInterval)
	assert.Equal(t, "/var/backups", cfg.Workers.BackupDir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"backup_interval": 1000000000, "backup_dir": "b"}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.BackupInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/definitely/not/here.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{not json`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}
