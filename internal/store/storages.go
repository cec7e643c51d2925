package store

import (
	"context"
	"fmt"

	"github.com/rpassos/autoescola/internal/config"
	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/utils"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	// Accounts is the durable account collection.
	Accounts AccountRepository

	// Sessions is the persisted session pointer.
	Sessions SessionRepository

	// Students is the student registry.
	Students StudentRepository

	// Documents is the document metadata registry.
	Documents DocumentRepository

	kv KVStore
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. When cfg.DB.DSN is set the SQLite backend is used (the schema
// is migrated on open); otherwise the JSON file backend at cfg.FilePath is
// used. Both present the same [KVStore] surface to the repositories.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	kv, err := newKVStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	return &Storages{
		Accounts:  NewAccountRepository(kv, ids, logger),
		Sessions:  NewSessionRepository(kv, logger),
		Students:  NewStudentRepository(kv, ids, logger),
		Documents: NewDocumentRepository(kv, ids, logger),
		kv:        kv,
	}, nil
}

// Close releases the underlying key-value store.
func (s *Storages) Close() error {
	return s.kv.Close()
}

// StorageFile exposes the path of the persisted state for backup purposes.
// Returns the file path for both backends (the SQLite DSN is its file path).
func StorageFile(cfg config.Storage) string {
	if cfg.DB.DSN != "" {
		return cfg.DB.DSN
	}
	return cfg.FilePath
}

func newKVStore(cfg config.Storage, logger *logger.Logger) (KVStore, error) {
	if cfg.DB.DSN != "" {
		db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLiteKVStore(db, logger), nil
	}

	kv, err := NewFileKVStore(cfg.FilePath, logger)
	if err != nil {
		return nil, fmt.Errorf("file storage error: %w", err)
	}

	return kv, nil
}
