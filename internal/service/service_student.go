package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/store"
	"github.com/rpassos/autoescola/internal/validators"
	"github.com/rpassos/autoescola/models"
)

type studentService struct {
	students  store.StudentRepository
	documents store.DocumentRepository
	logger    *logger.Logger
}

func NewStudentService(students store.StudentRepository, documents store.DocumentRepository, log *logger.Logger) StudentService {
	return &studentService{students: students, documents: documents, logger: log}
}

func (s *studentService) Register(ctx context.Context, student models.Student) (models.Student, error) {
	if err := validators.ValidateStudent(student); err != nil {
		return models.Student{}, err
	}

	created, err := s.students.Create(ctx, student)
	if err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student_id", created.ID).Msg("student registered")

	return created, nil
}

func (s *studentService) Update(ctx context.Context, student models.Student) (models.Student, error) {
	if err := validators.ValidateStudent(student); err != nil {
		return models.Student{}, err
	}

	updated, err := s.students.Update(ctx, student)
	if err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student_id", updated.ID).Msg("student updated")

	return updated, nil
}

// Delete removes the student and cascades into the document registry so no
// orphaned metadata survives the record.
func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.documents.RemoveByStudent(ctx, id); err != nil {
		return fmt.Errorf("cascade document removal: %w", err)
	}

	s.logger.Info().Str("student_id", id).Msg("student deleted")

	return nil
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.students.LoadAll(ctx)
}

// Search filters the registry by case-insensitive substring, the same match
// the list screen applies to a visible row: name, CPF (formatted or bare
// digits), phone and category all count.
func (s *studentService) Search(ctx context.Context, query string) ([]models.Student, error) {
	students, err := s.students.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return students, nil
	}

	matched := make([]models.Student, 0, len(students))
	for _, student := range students {
		if studentMatches(student, term) {
			matched = append(matched, student)
		}
	}

	return matched, nil
}

func studentMatches(student models.Student, term string) bool {
	fields := []string{
		strings.ToLower(student.FullName),
		strings.ToLower(student.CPF),
		validators.CPFDigits(student.CPF),
		strings.ToLower(student.Phone),
		strings.ToLower(string(student.Category)),
	}

	for _, field := range fields {
		if strings.Contains(field, term) {
			return true
		}
	}

	return false
}

func (s *studentService) Get(ctx context.Context, id string) (models.Student, error) {
	return s.students.FindByID(ctx, id)
}
