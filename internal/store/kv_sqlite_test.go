package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rpassos/autoescola/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteKV(t *testing.T) (KVStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewSQLiteKVStore(db, logger.Nop()), mock
}

func TestSQLiteKVStore_Get_Found(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("autoEscolaUsuarios").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"u1"}]`))

	value, ok, err := kv.Get(context.Background(), "autoEscolaUsuarios")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"u1"}]`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKVStore_Get_AbsentKeyIsNotAnError(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	value, ok, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKVStore_Get_ScanFailure(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("k").
		WillReturnError(errors.New("database is locked"))

	_, _, err := kv.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKVStore_Set_Upserts(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")).
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, kv.Set(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKVStore_Set_ExecFailure(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")).
		WithArgs("k", "v").
		WillReturnError(errors.New("disk I/O error"))

	err := kv.Set(context.Background(), "k", "v")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKVStore_Delete(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv WHERE key = ?")).
		WithArgs("autoEscolaUsuarioAtual").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Delete(context.Background(), "autoEscolaUsuarioAtual"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
