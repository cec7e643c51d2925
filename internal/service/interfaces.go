package service

import (
	"context"

	"github.com/rpassos/autoescola/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService defines the contract for authentication, session handling and
// account administration. The current session is an explicit value: every
// operation that needs to know who the caller is receives a models.Session
// rather than consulting ambient state.
type AuthService interface {
	// Login authenticates the given credentials against the active account
	// collection. An unknown username, an inactive account and a wrong
	// password all fail with ErrInvalidCredentials; the caller cannot tell
	// them apart. On success the matched account's last-login timestamp is
	// updated, the collection is persisted, and a session snapshot is
	// stored so RestoreSession can re-establish it after a restart.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// RestoreSession re-establishes the session persisted by the last
	// successful Login. The snapshot is deserialized as-is, without
	// re-validation against the live account collection: a restored
	// identity may be stale relative to later edits. Returns
	// store.ErrSessionNotFound when no snapshot is persisted.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the persisted session snapshot unconditionally.
	Logout(ctx context.Context) error

	// CreateAccount persists a new account built from draft. Fails with
	// store.ErrDuplicateUsername or store.ErrDuplicateEmail before any
	// mutation is applied.
	CreateAccount(ctx context.Context, draft models.AccountDraft) (models.Account, error)

	// ListAccounts returns the full account collection.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// ChangePassword replaces the password of the account with the given
	// id. Fails with store.ErrAccountNotFound when the id no longer
	// resolves and with ErrWrongCurrentPassword when currentPassword does
	// not match the stored credential. Password strength and confirmation
	// matching are the caller's responsibility.
	ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error

	// ToggleActive flips the active flag of the target account and returns
	// the new value. Fails with store.ErrAccountNotFound, or with
	// ErrSelfModification when the target is the session's own account.
	ToggleActive(ctx context.Context, session models.Session, targetID string) (bool, error)

	// DeleteAccount removes the target account. Fails with
	// store.ErrAccountNotFound, with ErrSelfModification when the target
	// is the session's own account, and with ErrProtectedRole when the
	// target holds the admin role.
	DeleteAccount(ctx context.Context, session models.Session, targetID string) error
}

// StudentService defines the contract for the student registry.
type StudentService interface {
	// Register validates and persists a new student record. Validation
	// failures are reported all at once via joined validator errors;
	// a CPF collision fails with store.ErrDuplicateCPF.
	Register(ctx context.Context, student models.Student) (models.Student, error)

	// Update validates and replaces an existing student record.
	Update(ctx context.Context, student models.Student) (models.Student, error)

	// Delete removes the student record and every document metadata
	// record attached to it.
	Delete(ctx context.Context, id string) error

	// List returns the full registry.
	List(ctx context.Context) ([]models.Student, error)

	// Search returns the students whose name, CPF, phone or category
	// contains the query, case-insensitively. An empty query returns the
	// full registry.
	Search(ctx context.Context, query string) ([]models.Student, error)

	// Get returns the student with the given id, or store.ErrStudentNotFound.
	Get(ctx context.Context, id string) (models.Student, error)
}

// DocumentService defines the contract for the document metadata registry.
type DocumentService interface {
	// Attach persists metadata for a document belonging to an existing
	// student. Fails with store.ErrStudentNotFound when the student id
	// does not resolve.
	Attach(ctx context.Context, doc models.Document) (models.Document, error)

	// Remove deletes the metadata record, or fails with
	// store.ErrDocumentNotFound.
	Remove(ctx context.Context, id string) error

	// ListByStudent returns all documents attached to the given student.
	ListByStudent(ctx context.Context, studentID string) ([]models.Document, error)
}
