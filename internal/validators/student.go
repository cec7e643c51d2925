package validators

import (
	"errors"
	"strings"

	"github.com/rpassos/autoescola/models"
)

// ValidateStudent checks the caller-supplied fields of a student record
// before registration or update. All violations are reported at once,
// joined with [errors.Join], so the UI can highlight every offending field
// in a single pass.
func ValidateStudent(student models.Student) error {
	var errs []error

	name := strings.TrimSpace(student.FullName)
	switch {
	case name == "":
		errs = append(errs, ErrNameRequired)
	case len([]rune(name)) < 10:
		errs = append(errs, ErrNameTooShort)
	}

	cpf := strings.TrimSpace(student.CPF)
	switch {
	case cpf == "":
		errs = append(errs, ErrCPFRequired)
	case !ValidCPF(cpf):
		errs = append(errs, ErrInvalidCPF)
	}

	if strings.TrimSpace(student.Phone) == "" {
		errs = append(errs, ErrPhoneRequired)
	}

	if strings.TrimSpace(student.BirthDate) == "" {
		errs = append(errs, ErrBirthDateRequired)
	}

	return errors.Join(errs...)
}
