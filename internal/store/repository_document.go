package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/utils"
	"github.com/rpassos/autoescola/models"
)

// documentRepository is the KV-backed implementation of [DocumentRepository].
// Only metadata is persisted; file contents never pass through this layer.
type documentRepository struct {
	kv     KVStore
	ids    *utils.UUIDGenerator
	logger *logger.Logger
	now    func() time.Time
}

// NewDocumentRepository constructs a [DocumentRepository] persisting through
// the given key-value store.
func NewDocumentRepository(kv KVStore, ids *utils.UUIDGenerator, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		kv:     kv,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

// LoadAll deserializes the persisted document registry. Absent or corrupt
// content is treated as an empty registry.
func (r *documentRepository) LoadAll(ctx context.Context) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := r.kv.Get(ctx, KeyDocuments)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var documents []models.Document
	if err = json.Unmarshal([]byte(raw), &documents); err != nil {
		log.Warn().Err(err).Msg("document registry is corrupt, starting empty")
		return nil, nil
	}

	return documents, nil
}

func (r *documentRepository) saveAll(ctx context.Context, documents []models.Document) error {
	payload, err := json.Marshal(documents)
	if err != nil {
		return fmt.Errorf("encode documents: %w", err)
	}

	if err = r.kv.Set(ctx, KeyDocuments, string(payload)); err != nil {
		return fmt.Errorf("save documents: %w", err)
	}

	return nil
}

func (r *documentRepository) Attach(ctx context.Context, doc models.Document) (models.Document, error) {
	documents, err := r.LoadAll(ctx)
	if err != nil {
		return models.Document{}, err
	}

	doc.ID = r.ids.Generate()
	doc.UploadedAt = r.now()

	if err = r.saveAll(ctx, append(documents, doc)); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

func (r *documentRepository) Remove(ctx context.Context, id string) error {
	documents, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i, existing := range documents {
		if existing.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrDocumentNotFound
	}

	documents = append(documents[:index], documents[index+1:]...)
	return r.saveAll(ctx, documents)
}

func (r *documentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Document, error) {
	documents, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var owned []models.Document
	for _, doc := range documents {
		if doc.StudentID == studentID {
			owned = append(owned, doc)
		}
	}

	return owned, nil
}

func (r *documentRepository) RemoveByStudent(ctx context.Context, studentID string) error {
	documents, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := documents[:0]
	for _, doc := range documents {
		if doc.StudentID != studentID {
			kept = append(kept, doc)
		}
	}

	return r.saveAll(ctx, kept)
}
