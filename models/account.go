package models

import "time"

// Role enumerates the access levels an account can hold.
// The stored literals match the legacy data format, so existing
// persisted collections keep deserializing without migration.
type Role string

const (
	// RoleAdmin grants full access, including user management.
	RoleAdmin Role = "admin"

	// RoleUser is the default role for newly created accounts.
	// The stored literal is "usuario" for backward compatibility
	// with collections written by earlier releases.
	RoleUser Role = "usuario"
)

// Account represents one login identity of the driving-school office tool.
// It contains identity attributes and credential-related data.
// Sensitive fields must never hold plaintext passwords.
type Account struct {
	// ID is the opaque unique identifier of the account.
	// Generated once at creation time and never changed afterwards.
	ID string `json:"id"`

	// FullName is the display name of the account holder.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"nome"`

	// Username is the unique login identifier.
	// Matched exactly (case-sensitive) during authentication.
	Username string `json:"usuario"`

	// PasswordHash stores the obfuscated password representation.
	// This value MUST be produced by secret.Obfuscate, never plaintext.
	PasswordHash string `json:"senha"`

	// Email is the unique contact address of the account holder.
	Email string `json:"email"`

	// Role is the access level of the account.
	Role Role `json:"tipo"`

	// Active reports whether the account may authenticate.
	// Inactive accounts are invisible to login.
	Active bool `json:"ativo"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"dataCriacao"`

	// LastLoginAt is the timestamp of the most recent successful login,
	// or nil if the account has never logged in.
	LastLoginAt *time.Time `json:"ultimoLogin"`
}

// IsAdmin reports whether the account holds the admin role.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// AccountDraft carries the caller-supplied fields for account creation.
// ID, CreatedAt, Active, and LastLoginAt are assigned by the store.
type AccountDraft struct {
	// FullName is the display name of the new account holder.
	FullName string

	// Username is the requested unique login identifier.
	Username string

	// Email is the requested unique contact address.
	Email string

	// Password is the plaintext password. It is obfuscated before
	// storage and never persisted as-is.
	Password string

	// Role is the requested access level. Empty defaults to RoleUser.
	Role Role
}
