package store

import (
	"context"

	"parcours/internal/document/models"
	"parcours/internal/platform/memory"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryStore struct {
	rows *memory.Table[string, models.Document]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, models.Document]()}
}

func (s *InMemoryStore) Get(_ context.Context, id domain.DocumentID) (*models.Document, error) {
	d, ok, err := s.rows.Get(id.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return d, nil
}

func (s *InMemoryStore) Save(ctx context.Context, d *models.Document) error {
	return s.rows.Put(ctx, d.ID.String(), d)
}

func (s *InMemoryStore) ListByDoctorate(_ context.Context, doctorateID domain.DoctorateID) ([]models.Document, error) {
	return s.rows.Scan(func(d *models.Document) bool { return d.DoctorateID == doctorateID })
}

func (s *InMemoryStore) Delete(ctx context.Context, id domain.DocumentID) error {
	if !s.rows.Delete(ctx, id.String()) {
		return sentinel.ErrNotFound
	}
	return nil
}
