package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/mock"
	"github.com/rpassos/autoescola/internal/secret"
	"github.com/rpassos/autoescola/internal/store"
	"github.com/rpassos/autoescola/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockAccountRepository, *mock.MockSessionRepository) {
	t.Helper()

	accounts := mock.NewMockAccountRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthService(accounts, sessions, logger.Nop()).(*authService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC) }

	return svc, accounts, sessions
}

func seededAdmin() models.Account {
	return models.Account{
		ID:           "admin-id",
		FullName:     "Administrador",
		Username:     "Admin",
		PasswordHash: secret.Obfuscate("Admin"),
		Email:        "admin@autoescola.com",
		Role:         models.RoleAdmin,
		Active:       true,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func regularUser(id, username, password string) models.Account {
	return models.Account{
		ID:           id,
		FullName:     "Usuário Comum",
		Username:     username,
		PasswordHash: secret.Obfuscate(password),
		Email:        username + "@example.com",
		Role:         models.RoleUser,
		Active:       true,
		CreatedAt:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_SeedAdminSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin()}, nil)
	accounts.EXPECT().SaveAll(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, all []models.Account) error {
			require.Len(t, all, 1)
			require.NotNil(t, all[0].LastLoginAt)
			assert.Equal(t, svc.now(), *all[0].LastLoginAt)
			return nil
		},
	)
	sessions.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshot models.Account) error {
			assert.Equal(t, "Admin", snapshot.Username)
			assert.NotNil(t, snapshot.LastLoginAt)
			return nil
		},
	)

	session, err := svc.Login(ctx, "Admin", "Admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Account.Role)
	assert.Equal(t, "admin-id", session.ID())
	assert.Equal(t, svc.now(), session.LoggedInAt)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// No SaveAll and no session Save may happen on failure: last-login
	// state stays untouched.
	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin()}, nil)

	_, err := svc.Login(ctx, "Admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsernameIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin()}, nil)

	_, err := svc.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccountRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	inactive := regularUser("u1", "joao", "abc123")
	inactive.Active = false

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin(), inactive}, nil)

	_, err := svc.Login(ctx, "joao", "abc123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UsernameIsCaseSensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin()}, nil)

	_, err := svc.Login(ctx, "admin", "Admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepeatedLoginUpdatesLastLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// Stateful fake collection: each SaveAll becomes the next LoadAll.
	collection := []models.Account{seededAdmin()}
	accounts.EXPECT().LoadAll(ctx).DoAndReturn(
		func(context.Context) ([]models.Account, error) {
			return append([]models.Account(nil), collection...), nil
		},
	).Times(2)
	accounts.EXPECT().SaveAll(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, all []models.Account) error {
			collection = all
			return nil
		},
	).Times(2)
	sessions.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)

	times := []time.Time{
		time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
	}
	calls := 0
	svc.now = func() time.Time {
		ts := times[calls]
		calls++
		return ts
	}

	first, err := svc.Login(ctx, "Admin", "Admin")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "Admin", "Admin")
	require.NoError(t, err)

	require.NotNil(t, first.Account.LastLoginAt)
	require.NotNil(t, second.Account.LastLoginAt)
	assert.Equal(t, times[0], *first.Account.LastLoginAt)
	assert.Equal(t, times[1], *second.Account.LastLoginAt)
}

// ── RestoreSession / Logout ──────────────────────────────────────────────────

func TestAuthService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().Load(ctx).Return(seededAdmin(), nil)

	session, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Admin", session.Account.Username)
	assert.Equal(t, svc.now(), session.LoggedInAt)
}

func TestAuthService_RestoreSession_NoSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().Load(ctx).Return(models.Account{}, store.ErrSessionNotFound)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestAuthService_RestoreSession_DoesNotRevalidateSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// The snapshot belongs to an account that was deactivated after its
	// login. Restore trusts it anyway; only logout ends the session.
	stale := regularUser("u1", "joao", "abc123")
	stale.Active = false

	sessions.EXPECT().Load(ctx).Return(stale, nil)

	session, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.False(t, session.Account.Active)
	assert.Equal(t, "u1", session.ID())
}

func TestAuthService_Logout_ClearsUnconditionally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestAuthService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := regularUser("u1", "joao", "old")

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin(), user}, nil)
	accounts.EXPECT().SaveAll(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, all []models.Account) error {
			require.Len(t, all, 2)
			assert.Equal(t, secret.Obfuscate("new123"), all[1].PasswordHash)
			return nil
		},
	)

	require.NoError(t, svc.ChangePassword(ctx, "u1", "old", "new123"))
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{regularUser("u1", "joao", "old")}, nil)

	err := svc.ChangePassword(ctx, "u1", "not-the-password", "new123")
	assert.ErrorIs(t, err, ErrWrongCurrentPassword)
}

func TestAuthService_ChangePassword_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin()}, nil)

	err := svc.ChangePassword(ctx, "ghost", "old", "new123")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestAuthService_ChangePassword_ThenLoginWithNewOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	collection := []models.Account{regularUser("u1", "joao", "old")}
	accounts.EXPECT().LoadAll(ctx).DoAndReturn(
		func(context.Context) ([]models.Account, error) {
			return append([]models.Account(nil), collection...), nil
		},
	).AnyTimes()
	accounts.EXPECT().SaveAll(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, all []models.Account) error {
			collection = all
			return nil
		},
	).AnyTimes()
	sessions.EXPECT().Save(ctx, gomock.Any()).Return(nil).AnyTimes()

	require.NoError(t, svc.ChangePassword(ctx, "u1", "old", "new123"))

	_, err := svc.Login(ctx, "joao", "new123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "joao", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── ToggleActive ─────────────────────────────────────────────────────────────

func TestAuthService_ToggleActive_FlipsAndReturnsNewValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adminSession := models.Session{Account: seededAdmin()}
	collection := []models.Account{seededAdmin(), regularUser("u1", "joao", "abc123")}

	accounts.EXPECT().LoadAll(ctx).DoAndReturn(
		func(context.Context) ([]models.Account, error) {
			return append([]models.Account(nil), collection...), nil
		},
	).Times(2)
	accounts.EXPECT().SaveAll(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, all []models.Account) error {
			collection = all
			return nil
		},
	).Times(2)

	active, err := svc.ToggleActive(ctx, adminSession, "u1")
	require.NoError(t, err)
	assert.False(t, active)

	// Applied twice, the flag returns to the original value.
	active, err = svc.ToggleActive(ctx, adminSession, "u1")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestAuthService_ToggleActive_RejectsSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin()}, nil)

	_, err := svc.ToggleActive(ctx, models.Session{Account: seededAdmin()}, "admin-id")
	assert.ErrorIs(t, err, ErrSelfModification)
}

func TestAuthService_ToggleActive_UnknownTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin()}, nil)

	_, err := svc.ToggleActive(ctx, models.Session{Account: seededAdmin()}, "ghost")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

// ── DeleteAccount ────────────────────────────────────────────────────────────

func TestAuthService_DeleteAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin(), regularUser("u1", "joao", "abc123")}, nil)
	accounts.EXPECT().SaveAll(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, all []models.Account) error {
			require.Len(t, all, 1)
			assert.Equal(t, "admin-id", all[0].ID)
			return nil
		},
	)

	require.NoError(t, svc.DeleteAccount(ctx, models.Session{Account: seededAdmin()}, "u1"))
}

func TestAuthService_DeleteAccount_RejectsSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := regularUser("u1", "joao", "abc123")
	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin(), user}, nil)

	err := svc.DeleteAccount(ctx, models.Session{Account: user}, "u1")
	assert.ErrorIs(t, err, ErrSelfModification)
}

func TestAuthService_DeleteAccount_RejectsAdminTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	secondAdmin := seededAdmin()
	secondAdmin.ID = "admin-2"
	secondAdmin.Username = "Admin2"

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin(), secondAdmin}, nil)

	err := svc.DeleteAccount(ctx, models.Session{Account: seededAdmin()}, "admin-2")
	assert.ErrorIs(t, err, ErrProtectedRole)
}

func TestAuthService_DeleteAccount_UnknownTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().LoadAll(ctx).Return([]models.Account{seededAdmin()}, nil)

	err := svc.DeleteAccount(ctx, models.Session{Account: seededAdmin()}, "ghost")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

// ── HasPermission ────────────────────────────────────────────────────────────

func TestHasPermission(t *testing.T) {
	admin := models.Session{Account: seededAdmin()}
	user := models.Session{Account: regularUser("u1", "joao", "abc123")}

	assert.False(t, HasPermission(nil, "manage-users"))
	assert.True(t, HasPermission(&admin, "manage-users"))
	assert.False(t, HasPermission(&user, "manage-users"))
}

// ── Error propagation ────────────────────────────────────────────────────────

func TestAuthService_Login_LoadFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, accounts, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	storageErr := errors.New("disk on fire")
	accounts.EXPECT().LoadAll(ctx).Return(nil, storageErr)

	_, err := svc.Login(ctx, "Admin", "Admin")
	assert.ErrorIs(t, err, storageErr)
}
