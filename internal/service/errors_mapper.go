// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

package service

import (
	"errors"

	"github.com/rpassos/autoescola/internal/app"
	"github.com/rpassos/autoescola/internal/store"
	"github.com/rpassos/autoescola/internal/validators"
	"github.com/rpassos/autoescola/models"
)

var validationSentinels = []error{
	validators.ErrNameRequired,
	validators.ErrNameTooShort,
	validators.ErrCPFRequired,
	validators.ErrInvalidCPF,
	validators.ErrPhoneRequired,
	validators.ErrBirthDateRequired,
}

// Outcome translates a service error into the UI-facing result shape.
// A nil error yields a success result carrying successMessage; any other
// error is mapped to its user-facing message. The UI displays Message
// verbatim and uses Success only to pick presentation styling.
func Outcome(err error, successMessage string) models.OperationResult {
	if err == nil {
		return models.OperationResult{Success: true, Message: successMessage}
	}
	return models.OperationResult{Success: false, Message: MessageForError(err)}
}

// ToggleOutcome translates an activate/deactivate outcome into the UI-facing
// result shape, carrying the new active state alongside the message.
func ToggleOutcome(active bool, err error) models.ToggleResult {
	message := app.MsgUserDeactivated
	if active {
		message = app.MsgUserActivated
	}
	return models.ToggleResult{OperationResult: Outcome(err, message), Active: active}
}

// MessageForError translates a service or store business error into the
// message string the UI displays. Unknown errors collapse to a generic
// internal-error message so storage details never leak into the UI.
func MessageForError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, ErrWrongCurrentPassword):
		return app.MsgWrongCurrentPassword
	case errors.Is(err, ErrSelfModification):
		return app.MsgCannotModifySelf
	case errors.Is(err, ErrProtectedRole):
		return app.MsgCannotDeleteAdmin
	case errors.Is(err, store.ErrDuplicateUsername):
		return app.MsgUsernameAlreadyExists
	case errors.Is(err, store.ErrDuplicateEmail):
		return app.MsgEmailAlreadyRegistered
	case errors.Is(err, store.ErrAccountNotFound):
		return app.MsgUserNotFound
	case errors.Is(err, store.ErrStudentNotFound):
		return app.MsgStudentNotFound
	case errors.Is(err, store.ErrDuplicateCPF):
		return app.MsgCPFAlreadyRegistered
	case errors.Is(err, store.ErrDocumentNotFound):
		return app.MsgDocumentNotFound
	case isValidationError(err):
		return err.Error()
	default:
		return app.MsgInternalError
	}
}

// isValidationError reports whether err is (or joins) one of the field
// validators' sentinels. Validation messages are already user-facing and
// pass through unchanged.
func isValidationError(err error) bool {
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
