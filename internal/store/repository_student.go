package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/utils"
	"github.com/rpassos/autoescola/internal/validators"
	"github.com/rpassos/autoescola/models"
)

// studentRepository is the KV-backed implementation of [StudentRepository].
type studentRepository struct {
	kv     KVStore
	ids    *utils.UUIDGenerator
	logger *logger.Logger
	now    func() time.Time
}

// NewStudentRepository constructs a [StudentRepository] persisting through
// the given key-value store.
func NewStudentRepository(kv KVStore, ids *utils.UUIDGenerator, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		kv:     kv,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

// LoadAll deserializes the persisted student registry. Absent or corrupt
// content is treated as an empty registry.
func (r *studentRepository) LoadAll(ctx context.Context) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := r.kv.Get(ctx, KeyStudents)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var students []models.Student
	if err = json.Unmarshal([]byte(raw), &students); err != nil {
		log.Warn().Err(err).Msg("student registry is corrupt, starting empty")
		return nil, nil
	}

	return students, nil
}

func (r *studentRepository) SaveAll(ctx context.Context, students []models.Student) error {
	payload, err := json.Marshal(students)
	if err != nil {
		return fmt.Errorf("encode students: %w", err)
	}

	if err = r.kv.Set(ctx, KeyStudents, string(payload)); err != nil {
		return fmt.Errorf("save students: %w", err)
	}

	return nil
}

// Create persists a new student record with a fresh id, registration
// timestamp, and active status. CPF uniqueness is compared on digits only,
// so "123.456.789-01" and "12345678901" collide.
func (r *studentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	students, err := r.LoadAll(ctx)
	if err != nil {
		return models.Student{}, err
	}

	cpf := validators.CPFDigits(student.CPF)
	for _, existing := range students {
		if validators.CPFDigits(existing.CPF) == cpf {
			log.Debug().Str("cpf", student.CPF).Msg("cpf already registered")
			return models.Student{}, ErrDuplicateCPF
		}
	}

	student.ID = r.ids.Generate()
	student.CreatedAt = r.now()
	if student.Status == "" {
		student.Status = models.StudentActive
	}

	if err = r.SaveAll(ctx, append(students, student)); err != nil {
		return models.Student{}, err
	}

	return student, nil
}

// Update replaces the record carrying the same id. ID and CreatedAt of the
// stored record are preserved; a CPF change is re-checked for uniqueness
// against the rest of the registry.
func (r *studentRepository) Update(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	students, err := r.LoadAll(ctx)
	if err != nil {
		return models.Student{}, err
	}

	index := -1
	cpf := validators.CPFDigits(student.CPF)
	for i, existing := range students {
		if existing.ID == student.ID {
			index = i
			continue
		}
		if validators.CPFDigits(existing.CPF) == cpf {
			log.Debug().Str("cpf", student.CPF).Msg("cpf already registered")
			return models.Student{}, ErrDuplicateCPF
		}
	}
	if index == -1 {
		return models.Student{}, ErrStudentNotFound
	}

	student.CreatedAt = students[index].CreatedAt
	students[index] = student

	if err = r.SaveAll(ctx, students); err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	students, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i, existing := range students {
		if existing.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrStudentNotFound
	}

	students = append(students[:index], students[index+1:]...)
	return r.SaveAll(ctx, students)
}

func (r *studentRepository) FindByID(ctx context.Context, id string) (models.Student, error) {
	students, err := r.LoadAll(ctx)
	if err != nil {
		return models.Student{}, err
	}

	for _, student := range students {
		if student.ID == id {
			return student, nil
		}
	}

	return models.Student{}, ErrStudentNotFound
}
