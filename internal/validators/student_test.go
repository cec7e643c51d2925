package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpassos/autoescola/models"
)

func validStudent() models.Student {
	return models.Student{
		FullName:  "João Silva Santos",
		CPF:       "529.982.247-25",
		Phone:     "(11) 99999-9999",
		BirthDate: "1990-05-15",
		Category:  "B",
	}
}

func TestValidateStudent_Valid(t *testing.T) {
	require.NoError(t, ValidateStudent(validStudent()))
}

func TestValidateStudent_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Student)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(s *models.Student) { s.FullName = "  " },
			wantErr: ErrNameRequired,
		},
		{
			name:    "short name",
			mutate:  func(s *models.Student) { s.FullName = "João S." },
			wantErr: ErrNameTooShort,
		},
		{
			name:    "missing cpf",
			mutate:  func(s *models.Student) { s.CPF = "" },
			wantErr: ErrCPFRequired,
		},
		{
			name:    "invalid cpf",
			mutate:  func(s *models.Student) { s.CPF = "123.456.789-00" },
			wantErr: ErrInvalidCPF,
		},
		{
			name:    "missing phone",
			mutate:  func(s *models.Student) { s.Phone = "" },
			wantErr: ErrPhoneRequired,
		},
		{
			name:    "missing birth date",
			mutate:  func(s *models.Student) { s.BirthDate = "" },
			wantErr: ErrBirthDateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := validStudent()
			tt.mutate(&student)

			err := ValidateStudent(student)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateStudent_ReportsAllViolations(t *testing.T) {
	err := ValidateStudent(models.Student{})

	assert.ErrorIs(t, err, ErrNameRequired)
	assert.ErrorIs(t, err, ErrCPFRequired)
	assert.ErrorIs(t, err, ErrPhoneRequired)
	assert.ErrorIs(t, err, ErrBirthDateRequired)
}
