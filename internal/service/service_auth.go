// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/secret"
	"github.com/rpassos/autoescola/internal/store"
	"github.com/rpassos/autoescola/models"
)

type authService struct {
	accounts store.AccountRepository
	sessions store.SessionRepository
	logger   *logger.Logger
	now      func() time.Time
}

func NewAuthService(accounts store.AccountRepository, sessions store.SessionRepository, log *logger.Logger) AuthService {
	return &authService{
		accounts: accounts,
		sessions: sessions,
		logger:   log,
		now:      time.Now,
	}
}

func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	accounts, err := a.accounts.LoadAll(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("load accounts: %w", err)
	}

	matched := -1
	for idx, account := range accounts {
		if account.Username == username && account.Active {
			matched = idx
			break
		}
	}

	// Unknown username, inactive account and wrong password all collapse
	// to the same error.
	if matched == -1 || !secret.Verify(password, accounts[matched].PasswordHash) {
		a.logger.Warn().Str("username", username).Msg("login rejected")
		return models.Session{}, ErrInvalidCredentials
	}

	loginTime := a.now()
	accounts[matched].LastLoginAt = &loginTime

	if err := a.accounts.SaveAll(ctx, accounts); err != nil {
		return models.Session{}, fmt.Errorf("persist last login: %w", err)
	}

	if err := a.sessions.Save(ctx, accounts[matched]); err != nil {
		return models.Session{}, fmt.Errorf("persist session snapshot: %w", err)
	}

	a.logger.Info().Str("username", username).Msg("login successful")

	return models.Session{Account: accounts[matched], LoggedInAt: loginTime}, nil
}

// RestoreSession trusts the persisted snapshot as-is. The snapshot is not
// re-resolved against the live account collection, so an account that was
// deactivated or deleted after its login keeps a working session until
// logout.
func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	account, err := a.sessions.Load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.logger.Info().Str("username", account.Username).Msg("session restored")

	return models.Session{Account: account, LoggedInAt: a.now()}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session snapshot: %w", err)
	}
	return nil
}

func (a *authService) CreateAccount(ctx context.Context, draft models.AccountDraft) (models.Account, error) {
	return a.accounts.Create(ctx, draft)
}

func (a *authService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return a.accounts.LoadAll(ctx)
}

func (a *authService) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error {
	accounts, err := a.accounts.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	matched := -1
	for idx, account := range accounts {
		if account.ID == accountID {
			matched = idx
			break
		}
	}
	if matched == -1 {
		return store.ErrAccountNotFound
	}

	if !secret.Verify(currentPassword, accounts[matched].PasswordHash) {
		return ErrWrongCurrentPassword
	}

	accounts[matched].PasswordHash = secret.Obfuscate(newPassword)

	if err := a.accounts.SaveAll(ctx, accounts); err != nil {
		return fmt.Errorf("persist password change: %w", err)
	}

	a.logger.Info().Str("account_id", accountID).Msg("password changed")

	return nil
}

func (a *authService) ToggleActive(ctx context.Context, session models.Session, targetID string) (bool, error) {
	accounts, err := a.accounts.LoadAll(ctx)
	if err != nil {
		return false, fmt.Errorf("load accounts: %w", err)
	}

	matched := -1
	for idx, account := range accounts {
		if account.ID == targetID {
			matched = idx
			break
		}
	}
	if matched == -1 {
		return false, store.ErrAccountNotFound
	}

	if targetID == session.ID() {
		return accounts[matched].Active, ErrSelfModification
	}

	accounts[matched].Active = !accounts[matched].Active

	if err := a.accounts.SaveAll(ctx, accounts); err != nil {
		return false, fmt.Errorf("persist active toggle: %w", err)
	}

	a.logger.Info().
		Str("account_id", targetID).
		Bool("active", accounts[matched].Active).
		Msg("account active flag toggled")

	return accounts[matched].Active, nil
}

func (a *authService) DeleteAccount(ctx context.Context, session models.Session, targetID string) error {
	accounts, err := a.accounts.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	matched := -1
	for idx, account := range accounts {
		if account.ID == targetID {
			matched = idx
			break
		}
	}
	if matched == -1 {
		return store.ErrAccountNotFound
	}

	if targetID == session.ID() {
		return ErrSelfModification
	}

	if accounts[matched].IsAdmin() {
		return ErrProtectedRole
	}

	accounts = append(accounts[:matched], accounts[matched+1:]...)

	if err := a.accounts.SaveAll(ctx, accounts); err != nil {
		return fmt.Errorf("persist account removal: %w", err)
	}

	a.logger.Info().Str("account_id", targetID).Msg("account deleted")

	return nil
}

// HasPermission reports whether session may perform the named capability.
// A nil session (nobody logged in) holds no permissions at all.
func HasPermission(session *models.Session, capability string) bool {
	if session == nil {
		return false
	}
	return session.HasPermission(capability)
}
