package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/models"
)

// sessionRepository is the KV-backed implementation of [SessionRepository].
// The persisted pointer is a full JSON snapshot of one account record, not
// just an id, matching the legacy session layout.
type sessionRepository struct {
	kv     KVStore
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] persisting through
// the given key-value store.
func NewSessionRepository(kv KVStore, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		kv:     kv,
		logger: logger,
	}
}

func (r *sessionRepository) Save(ctx context.Context, account models.Account) error {
	payload, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}

	if err = r.kv.Set(ctx, KeySession, string(payload)); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}

	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (models.Account, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := r.kv.Get(ctx, KeySession)
	if err != nil {
		return models.Account{}, fmt.Errorf("load session snapshot: %w", err)
	}
	if !ok {
		return models.Account{}, ErrSessionNotFound
	}

	var account models.Account
	if err = json.Unmarshal([]byte(raw), &account); err != nil {
		// a corrupt snapshot cannot restore anything useful
		log.Warn().Err(err).Msg("session snapshot is corrupt, ignoring")
		return models.Account{}, ErrSessionNotFound
	}

	return account, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("clear session snapshot: %w", err)
	}

	return nil
}
