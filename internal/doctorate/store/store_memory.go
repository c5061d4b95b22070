package store

import (
	"context"

	"parcours/internal/doctorate/models"
	"parcours/internal/platform/memory"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryStore struct {
	rows *memory.Table[string, models.Doctorate]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, models.Doctorate]()}
}

func (s *InMemoryStore) Get(_ context.Context, doctorateID domain.DoctorateID) (*models.Doctorate, error) {
	d, ok, err := s.rows.Get(doctorateID.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return d, nil
}

func (s *InMemoryStore) Save(ctx context.Context, d *models.Doctorate) error {
	return s.rows.Put(ctx, d.ID.String(), d)
}
