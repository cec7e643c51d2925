package store

import (
	"context"

	"github.com/rpassos/autoescola/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Storage keys of the persisted collections. The literals are part of the
// on-disk data format and must not change: collections written by earlier
// releases are read back under the same keys.
const (
	// KeyAccounts holds the JSON array of account records.
	KeyAccounts = "autoEscolaUsuarios"

	// KeySession holds the JSON snapshot of the account active at login
	// time, or is absent when nobody is logged in.
	KeySession = "autoEscolaUsuarioAtual"

	// KeyStudents holds the JSON array of student records.
	KeyStudents = "autoEscolaAlunos"

	// KeyDocuments holds the JSON array of document metadata records.
	KeyDocuments = "autoEscolaDocumentos"
)

// KVStore is the durable key-value surface every repository persists
// through. Two implementations exist: a JSON file store and a SQLite-backed
// store; both treat values as opaque strings.
type KVStore interface {
	// Get returns the value stored under key. The second return value
	// reports whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set durably stores value under key, replacing any prior content.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}

// AccountRepository owns the durable account collection.
type AccountRepository interface {
	// LoadAll deserializes the persisted collection. Absent or corrupt
	// content is treated as empty, in which case the collection is
	// initialized with exactly the seed admin account and persisted
	// immediately.
	LoadAll(ctx context.Context) ([]models.Account, error)

	// SaveAll serializes and persists the full collection, replacing
	// prior content.
	SaveAll(ctx context.Context, accounts []models.Account) error

	// Create constructs and persists a new account from draft.
	// Fails with ErrDuplicateUsername or ErrDuplicateEmail before any
	// mutation is applied.
	Create(ctx context.Context, draft models.AccountDraft) (models.Account, error)

	// FindByUsername returns the account with the exact, case-sensitive
	// username, or ErrAccountNotFound.
	FindByUsername(ctx context.Context, username string) (models.Account, error)

	// FindByID returns the account with the given id, or ErrAccountNotFound.
	FindByID(ctx context.Context, id string) (models.Account, error)
}

// SessionRepository owns the single persisted session pointer.
type SessionRepository interface {
	// Save persists a full snapshot of the given account as the current
	// session pointer.
	Save(ctx context.Context, account models.Account) error

	// Load deserializes the persisted session snapshot, or returns
	// ErrSessionNotFound when none (or a corrupt one) is stored.
	Load(ctx context.Context) (models.Account, error)

	// Clear removes the persisted session pointer.
	Clear(ctx context.Context) error
}

// StudentRepository owns the durable student registry.
type StudentRepository interface {
	LoadAll(ctx context.Context) ([]models.Student, error)
	SaveAll(ctx context.Context, students []models.Student) error

	// Create persists a new student record. Fails with ErrDuplicateCPF
	// when another student already holds the same CPF digits.
	Create(ctx context.Context, student models.Student) (models.Student, error)

	// Update replaces the record with the same id, keeping id and
	// CreatedAt. Fails with ErrStudentNotFound or ErrDuplicateCPF.
	Update(ctx context.Context, student models.Student) (models.Student, error)

	// Delete removes the record. Fails with ErrStudentNotFound.
	Delete(ctx context.Context, id string) error

	// FindByID returns the student with the given id, or ErrStudentNotFound.
	FindByID(ctx context.Context, id string) (models.Student, error)
}

// DocumentRepository owns the durable document metadata registry.
type DocumentRepository interface {
	LoadAll(ctx context.Context) ([]models.Document, error)

	// Attach persists a new document metadata record.
	Attach(ctx context.Context, doc models.Document) (models.Document, error)

	// Remove deletes the record. Fails with ErrDocumentNotFound.
	Remove(ctx context.Context, id string) error

	// ListByStudent returns all documents attached to the given student.
	ListByStudent(ctx context.Context, studentID string) ([]models.Document, error)

	// RemoveByStudent deletes every document attached to the given
	// student. Removing from a student with no documents is not an error.
	RemoveByStudent(ctx context.Context, studentID string) error
}
