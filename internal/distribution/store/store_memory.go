package store

import (
	"context"

	"parcours/internal/distribution/models"
	"parcours/internal/platform/memory"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryStore struct {
	rows *memory.Table[string, models.Authorization]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, models.Authorization]()}
}

func (s *InMemoryStore) Get(_ context.Context, doctorateID domain.DoctorateID) (*models.Authorization, error) {
	a, ok, err := s.rows.Get(doctorateID.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return a, nil
}

func (s *InMemoryStore) Save(ctx context.Context, a *models.Authorization) error {
	return s.rows.Put(ctx, a.DoctorateID.String(), a)
}
