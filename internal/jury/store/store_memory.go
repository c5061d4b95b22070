package store

import (
	"context"

	"parcours/internal/jury/models"
	"parcours/internal/platform/memory"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryStore struct {
	rows *memory.Table[string, models.Jury]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, models.Jury]()}
}

func (s *InMemoryStore) Get(_ context.Context, doctorateID domain.DoctorateID) (*models.Jury, error) {
	j, ok, err := s.rows.Get(doctorateID.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return j, nil
}

func (s *InMemoryStore) Save(ctx context.Context, j *models.Jury) error {
	return s.rows.Put(ctx, j.DoctorateID.String(), j)
}
