package store

import (
	"context"

	"parcours/internal/admissibility/models"
	"parcours/internal/platform/memory"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryStore struct {
	rows *memory.Table[string, models.Admissibility]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, models.Admissibility]()}
}

func (s *InMemoryStore) Get(_ context.Context, id domain.AdmissibilityID) (*models.Admissibility, error) {
	a, ok, err := s.rows.Get(id.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return a, nil
}

func (s *InMemoryStore) Save(ctx context.Context, a *models.Admissibility) error {
	return s.rows.Put(ctx, a.ID.String(), a)
}

func (s *InMemoryStore) ListByDoctorate(_ context.Context, doctorateID domain.DoctorateID) ([]models.Admissibility, error) {
	return s.rows.Scan(func(a *models.Admissibility) bool { return a.DoctorateID == doctorateID })
}
