package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (SessionRepository, KVStore) {
	t.Helper()

	kv, err := NewFileKVStore(":memory:", logger.Nop())
	require.NoError(t, err)

	return NewSessionRepository(kv, logger.Nop()), kv
}

func TestSessionRepository_SaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestSessionRepo(t)
	ctx := context.Background()

	account := models.Account{
		ID:       "u1",
		FullName: "João Pereira",
		Username: "joao",
		Email:    "j@x.com",
		Role:     models.RoleUser,
		Active:   true,
	}

	require.NoError(t, repo.Save(ctx, account))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, account.ID, loaded.ID)
	assert.Equal(t, account.Username, loaded.Username)
	assert.Equal(t, account.Role, loaded.Role)
}

func TestSessionRepository_SnapshotIsFullAccountRecord(t *testing.T) {
	repo, kv := newTestSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.Account{ID: "u1", Username: "joao"}))

	raw, ok, err := kv.Get(ctx, KeySession)
	require.NoError(t, err)
	require.True(t, ok)

	// the pointer is a full account object under legacy field names,
	// not a bare id
	var snapshot map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))
	assert.Equal(t, "u1", snapshot["id"])
	assert.Equal(t, "joao", snapshot["usuario"])
	assert.Contains(t, snapshot, "senha")
	assert.Contains(t, snapshot, "tipo")
}

func TestSessionRepository_Load_NoSnapshot(t *testing.T) {
	repo, _ := newTestSessionRepo(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Load_CorruptSnapshot(t *testing.T) {
	repo, kv := newTestSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeySession, "{broken"))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Clear(t *testing.T) {
	repo, _ := newTestSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.Account{ID: "u1"}))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// clearing an already-clear session is fine
	require.NoError(t, repo.Clear(ctx))
}
