package service

import (
	"context"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/store"
	"github.com/rpassos/autoescola/models"
)

type documentService struct {
	documents store.DocumentRepository
	students  store.StudentRepository
	logger    *logger.Logger
}

func NewDocumentService(documents store.DocumentRepository, students store.StudentRepository, log *logger.Logger) DocumentService {
	return &documentService{documents: documents, students: students, logger: log}
}

func (d *documentService) Attach(ctx context.Context, doc models.Document) (models.Document, error) {
	// The owning student must exist; metadata never points at a record
	// that was never registered.
	if _, err := d.students.FindByID(ctx, doc.StudentID); err != nil {
		return models.Document{}, err
	}

	attached, err := d.documents.Attach(ctx, doc)
	if err != nil {
		return models.Document{}, err
	}

	d.logger.Info().
		Str("document_id", attached.ID).
		Str("student_id", attached.StudentID).
		Msg("document attached")

	return attached, nil
}

func (d *documentService) Remove(ctx context.Context, id string) error {
	if err := d.documents.Remove(ctx, id); err != nil {
		return err
	}

	d.logger.Info().Str("document_id", id).Msg("document removed")

	return nil
}

func (d *documentService) ListByStudent(ctx context.Context, studentID string) ([]models.Document, error) {
	return d.documents.ListByStudent(ctx, studentID)
}
