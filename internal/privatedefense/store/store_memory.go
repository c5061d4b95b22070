package store

import (
	"context"

	"parcours/internal/platform/memory"
	"parcours/internal/privatedefense/models"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryStore struct {
	rows *memory.Table[string, models.PrivateDefense]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, models.PrivateDefense]()}
}

func (s *InMemoryStore) Get(_ context.Context, id domain.PrivateDefenseID) (*models.PrivateDefense, error) {
	p, ok, err := s.rows.Get(id.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return p, nil
}

func (s *InMemoryStore) Save(ctx context.Context, p *models.PrivateDefense) error {
	return s.rows.Put(ctx, p.ID.String(), p)
}

func (s *InMemoryStore) ListByDoctorate(_ context.Context, doctorateID domain.DoctorateID) ([]models.PrivateDefense, error) {
	return s.rows.Scan(func(p *models.PrivateDefense) bool { return p.DoctorateID == doctorateID })
}
