package models

import "time"

// StudentStatus enumerates the lifecycle states of a student record.
type StudentStatus string

const (
	// StudentActive marks a student currently enrolled.
	// The stored literal is "ativo" for backward compatibility.
	StudentActive StudentStatus = "ativo"

	// StudentInactive marks a student no longer enrolled.
	StudentInactive StudentStatus = "inativo"
)

// LicenseCategory is the Brazilian driver's license category a student
// is enrolled for (A motorcycle, B car, AB both, C truck, D bus, E trailer).
type LicenseCategory string

// Student represents one enrolled student of the driving school.
// JSON tags match the legacy record layout so previously persisted
// collections round-trip unchanged.
type Student struct {
	// ID is the opaque unique identifier, generated at registration.
	ID string `json:"id"`

	// FullName is the student's full name. At least 10 characters.
	FullName string `json:"nome"`

	// CPF is the student's tax-payer number, unique across the registry.
	// Stored in whatever formatting the caller supplied; comparisons and
	// validation strip non-digits.
	CPF string `json:"cpf"`

	// Phone is the student's contact phone number.
	Phone string `json:"telefone"`

	// BirthDate is the student's date of birth in "2006-01-02" format.
	BirthDate string `json:"dataNascimento"`

	// Category is the license category the student is enrolled for.
	Category LicenseCategory `json:"categoria"`

	// Address is the student's free-form postal address.
	Address string `json:"endereco"`

	// Notes holds free-form remarks about the student.
	Notes string `json:"observacoes"`

	// CreatedAt is the timestamp when the record was registered.
	CreatedAt time.Time `json:"dataCadastro"`

	// Status is the student's enrollment state.
	Status StudentStatus `json:"status"`
}
