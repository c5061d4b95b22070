package store

import (
	"context"

	"parcours/internal/platform/memory"
	"parcours/internal/supervision/models"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryStore struct {
	rows *memory.Table[string, models.Group]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, models.Group]()}
}

func (s *InMemoryStore) Get(_ context.Context, doctorateID domain.DoctorateID) (*models.Group, error) {
	g, ok, err := s.rows.Get(doctorateID.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return g, nil
}

func (s *InMemoryStore) Save(ctx context.Context, g *models.Group) error {
	return s.rows.Put(ctx, g.DoctorateID.String(), g)
}
