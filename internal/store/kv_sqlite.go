package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/rpassos/autoescola/internal/logger"
)

// sqliteKVStore is the SQLite-backed implementation of [KVStore]. Values live
// in a single kv(key, value) table so the on-disk layout stays a plain
// key-value store, interchangeable with the JSON file backend.
type sqliteKVStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKVStore constructs a [KVStore] backed by the provided database
// connection.
func NewSQLiteKVStore(db *DB, logger *logger.Logger) KVStore {
	logger.Debug().Msg("creating sqlite kv store")
	return &sqliteKVStore{
		db:     db,
		logger: logger,
	}
}

func (s *sqliteKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("key", key).Msg("error building kv select")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		log.Err(err).Str("key", key).Msg("error scanning kv row")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (s *sqliteKVStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		log.Err(err).Str("key", key).Msg("error building kv upsert")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("key", key).Msg("error executing kv upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKVStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("key", key).Msg("error building kv delete")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("key", key).Msg("error executing kv delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKVStore) Close() error {
	return s.db.Close()
}
