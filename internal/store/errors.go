package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateUsername is returned when account creation is rejected
	// because another account already holds the requested username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateEmail is returned when account creation is rejected
	// because another account already holds the requested email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrAccountNotFound is returned when a lookup or mutation targets an
	// account id or username that does not resolve in the collection.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSessionNotFound is returned when no session snapshot is persisted
	// under the session pointer key.
	ErrSessionNotFound = errors.New("no persisted session found")

	// ErrStudentNotFound is returned when a lookup or mutation targets a
	// student id that does not resolve in the registry.
	ErrStudentNotFound = errors.New("student not found")

	// ErrDuplicateCPF is returned when student registration is rejected
	// because another student already holds the same CPF.
	ErrDuplicateCPF = errors.New("cpf already registered")

	// ErrDocumentNotFound is returned when a removal targets a document id
	// that does not resolve in the registry.
	ErrDocumentNotFound = errors.New("document not found")
)

// Low-level key-value store errors. These are returned (or wrapped) by the
// SQLite-backed KV implementation when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the kv
	// table fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) against the kv table fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning the value column from a
	// result row fails.
	ErrScanningRow = errors.New("failed to scan kv row")
)
