// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

package workers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rpassos/autoescola/internal/config"
	"github.com/rpassos/autoescola/internal/logger"
)

// BackupWorker periodically copies the storage file into a backup
// directory, one timestamped snapshot per run. The copy is taken outside
// the synchronous operation path, so a slow disk never stalls the UI.
type BackupWorker struct {
	source string
	cfg    config.Workers
	logger *logger.Logger

	stop chan struct{}
	now  func() time.Time
}

// NewBackupWorker builds a worker snapshotting the storage file at source.
func NewBackupWorker(source string, cfg config.Workers, log *logger.Logger) *BackupWorker {
	return &BackupWorker{
		source: source,
		cfg:    cfg,
		logger: log,
		stop:   make(chan struct{}),
		now:    time.Now,
	}
}

// Run starts the periodic snapshot goroutine. A zero interval or empty
// backup directory disables the worker entirely.
func (w *BackupWorker) Run() {
	if w.cfg.BackupInterval <= 0 || w.cfg.BackupDir == "" {
		w.logger.Info().Msg("backup worker disabled")
		return
	}

	w.logger.Info().
		Dur("interval", w.cfg.BackupInterval).
		Str("dir", w.cfg.BackupDir).
		Msg("backup worker started")

	go func() {
		ticker := time.NewTicker(w.cfg.BackupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := w.Snapshot(); err != nil {
					w.logger.Err(err).Msg("backup snapshot failed")
				}
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop signals the snapshot goroutine to exit. Safe to call when Run was
// never started or the worker is disabled.
func (w *BackupWorker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
}

// Snapshot copies the storage file into the backup directory under a
// timestamped name. A missing storage file is not an error: nothing has
// been persisted yet, so there is nothing to back up.
func (w *BackupWorker) Snapshot() error {
	data, err := os.ReadFile(w.source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	if err = os.MkdirAll(w.cfg.BackupDir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("%s.%s.bak", filepath.Base(w.source), w.now().Format("20060102-150405"))
	target := filepath.Join(w.cfg.BackupDir, name)

	if err = os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}

	w.logger.Debug().Str("target", target).Msg("backup snapshot written")

	return nil
}
