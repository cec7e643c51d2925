// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

// Package app contains shared application-layer constants used across the
// autoescola services and UI.
//
// All Msg* constants are human-readable message strings that are surfaced
// in operation results and displayed verbatim by the UI. Keeping them in
// one place ensures consistent wording throughout the application.
package app

const (
	// MsgLoginSuccessful is surfaced after a successful login.
	MsgLoginSuccessful = "login successful"

	// MsgInvalidCredentials is surfaced when the supplied username/password
	// combination does not match any active account. Unknown username and
	// wrong password are deliberately indistinguishable.
	MsgInvalidCredentials = "invalid username or password"

	// MsgUserCreated is surfaced after a new account has been persisted.
	MsgUserCreated = "user created successfully"

	// MsgUsernameAlreadyExists is surfaced when account creation is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgEmailAlreadyRegistered is surfaced when account creation is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyRegistered = "email already registered"

	// MsgUserNotFound is surfaced when an operation targets an account id
	// that no longer resolves.
	MsgUserNotFound = "user not found"

	// MsgWrongCurrentPassword is surfaced when a password change supplies
	// a current password that does not match the stored one.
	MsgWrongCurrentPassword = "current password is incorrect"

	// MsgPasswordUpdated is surfaced after a successful password change.
	MsgPasswordUpdated = "password updated successfully"

	// MsgCannotModifySelf is surfaced when an operation would deactivate
	// or delete the caller's own account.
	MsgCannotModifySelf = "you cannot deactivate or delete your own user"

	// MsgCannotDeleteAdmin is surfaced when a delete targets an account
	// holding the admin role.
	MsgCannotDeleteAdmin = "administrator users cannot be deleted"

	// MsgUserActivated and MsgUserDeactivated are surfaced after a
	// successful active-flag toggle.
	MsgUserActivated   = "user activated successfully"
	MsgUserDeactivated = "user deactivated successfully"

	// MsgUserDeleted is surfaced after a successful account removal.
	MsgUserDeleted = "user deleted successfully"

	// MsgStudentRegistered is surfaced after a new student record has
	// been persisted.
	MsgStudentRegistered = "student registered successfully"

	// MsgStudentUpdated is surfaced after a student record update.
	MsgStudentUpdated = "student updated successfully"

	// MsgStudentDeleted is surfaced after a student record removal,
	// including the cascade removal of its document metadata.
	MsgStudentDeleted = "student deleted successfully"

	// MsgStudentNotFound is surfaced when an operation targets a student
	// id that no longer resolves.
	MsgStudentNotFound = "student not found"

	// MsgCPFAlreadyRegistered is surfaced when a student registration or
	// update collides with an existing CPF.
	MsgCPFAlreadyRegistered = "cpf already registered"

	// MsgDocumentAttached is surfaced after document metadata has been
	// persisted.
	MsgDocumentAttached = "document attached successfully"

	// MsgDocumentRemoved is surfaced after document metadata removal.
	MsgDocumentRemoved = "document removed successfully"

	// MsgDocumentNotFound is surfaced when a removal targets a document
	// id that no longer resolves.
	MsgDocumentNotFound = "document not found"

	// MsgInternalError is surfaced when an unexpected storage failure
	// occurs that the user cannot resolve.
	MsgInternalError = "internal error"
)
