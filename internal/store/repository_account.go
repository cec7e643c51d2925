package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/secret"
	"github.com/rpassos/autoescola/internal/utils"
	"github.com/rpassos/autoescola/models"
)

// Seed admin credentials, created exactly once when the persisted collection
// is absent. The values are part of the data format contract.
const (
	seedAdminUsername = "Admin"
	seedAdminPassword = "Admin"
	seedAdminEmail    = "admin@autoescola.com"
)

// accountRepository is the KV-backed implementation of [AccountRepository].
// Every operation is a read-modify-write cycle over the accounts key, so the
// durable collection is the single source of truth and last writer wins.
type accountRepository struct {
	kv     KVStore
	ids    *utils.UUIDGenerator
	logger *logger.Logger
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] persisting through
// the given key-value store.
func NewAccountRepository(kv KVStore, ids *utils.UUIDGenerator, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		kv:     kv,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

// LoadAll deserializes the persisted account collection.
//
// An absent key (and likewise unparseable content) is treated as an empty
// store: the collection is initialized with exactly the seed admin account
// and persisted immediately. Deserialization itself never fails; only a
// backend I/O failure surfaces as an error.
func (r *accountRepository) LoadAll(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := r.kv.Get(ctx, KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	if ok {
		var accounts []models.Account
		if err = json.Unmarshal([]byte(raw), &accounts); err == nil {
			return accounts, nil
		}
		log.Warn().Err(err).Msg("account collection is corrupt, reinitializing")
	}

	seeded := []models.Account{r.seedAdmin()}
	if err = r.SaveAll(ctx, seeded); err != nil {
		return nil, fmt.Errorf("persist seed admin: %w", err)
	}
	log.Info().Msg("initialized account collection with seed admin")

	return seeded, nil
}

// SaveAll serializes and persists the full collection, replacing prior
// content.
func (r *accountRepository) SaveAll(ctx context.Context, accounts []models.Account) error {
	payload, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	if err = r.kv.Set(ctx, KeyAccounts, string(payload)); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	return nil
}

// Create constructs a new account from draft and appends it to the
// collection.
//
// Uniqueness is checked before any mutation: the username check runs first,
// then the email check, so a draft violating both reports the username
// conflict. Role defaults to [models.RoleUser] when unspecified.
func (r *accountRepository) Create(ctx context.Context, draft models.AccountDraft) (models.Account, error) {
	log := logger.FromContext(ctx)

	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, existing := range accounts {
		if existing.Username == draft.Username {
			log.Debug().Str("username", draft.Username).Msg("username already exists")
			return models.Account{}, ErrDuplicateUsername
		}
	}
	for _, existing := range accounts {
		if existing.Email == draft.Email {
			log.Debug().Str("email", draft.Email).Msg("email already registered")
			return models.Account{}, ErrDuplicateEmail
		}
	}

	role := draft.Role
	if role == "" {
		role = models.RoleUser
	}

	account := models.Account{
		ID:           r.ids.Generate(),
		FullName:     draft.FullName,
		Username:     draft.Username,
		PasswordHash: secret.Obfuscate(draft.Password),
		Email:        draft.Email,
		Role:         role,
		Active:       true,
		CreatedAt:    r.now(),
		LastLoginAt:  nil,
	}

	if err = r.SaveAll(ctx, append(accounts, account)); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// FindByUsername returns the account with the exact, case-sensitive username.
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, account := range accounts {
		if account.Username == username {
			return account, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}

// FindByID returns the account with the given id.
func (r *accountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, account := range accounts {
		if account.ID == id {
			return account, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}

func (r *accountRepository) seedAdmin() models.Account {
	return models.Account{
		ID:           r.ids.Generate(),
		FullName:     seedAdminUsername,
		Username:     seedAdminUsername,
		PasswordHash: secret.Obfuscate(seedAdminPassword),
		Email:        seedAdminEmail,
		Role:         models.RoleAdmin,
		Active:       true,
		CreatedAt:    r.now(),
		LastLoginAt:  nil,
	}
}
