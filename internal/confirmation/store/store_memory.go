package store

import (
	"context"

	"parcours/internal/confirmation/models"
	"parcours/internal/platform/memory"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryStore struct {
	rows *memory.Table[string, models.ConfirmationPaper]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, models.ConfirmationPaper]()}
}

func (s *InMemoryStore) Get(_ context.Context, id domain.ConfirmationPaperID) (*models.ConfirmationPaper, error) {
	c, ok, err := s.rows.Get(id.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return c, nil
}

func (s *InMemoryStore) Save(ctx context.Context, c *models.ConfirmationPaper) error {
	return s.rows.Put(ctx, c.ID.String(), c)
}

func (s *InMemoryStore) ListByDoctorate(_ context.Context, doctorateID domain.DoctorateID) ([]models.ConfirmationPaper, error) {
	return s.rows.Scan(func(c *models.ConfirmationPaper) bool { return c.DoctorateID == doctorateID })
}
