package validators

import "errors"

var (
	ErrNameRequired      = errors.New("name is required")
	ErrNameTooShort      = errors.New("name must have at least 10 characters")
	ErrCPFRequired       = errors.New("cpf is required")
	ErrInvalidCPF        = errors.New("invalid cpf")
	ErrPhoneRequired     = errors.New("phone is required")
	ErrBirthDateRequired = errors.New("birth date is required")
)
