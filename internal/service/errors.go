package service

import "errors"

var (
	// ErrInvalidCredentials covers every login failure cause: unknown
	// username, inactive account and wrong password are indistinguishable
	// so the login form leaks no username-enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongCurrentPassword is returned by ChangePassword when the
	// supplied current password does not match the stored credential.
	ErrWrongCurrentPassword = errors.New("current password does not match")

	// ErrSelfModification is returned when an operation would deactivate
	// or delete the session's own account.
	ErrSelfModification = errors.New("operation targets the caller's own account")

	// ErrProtectedRole is returned when a delete targets an account
	// holding the admin role.
	ErrProtectedRole = errors.New("admin accounts cannot be deleted")
)
