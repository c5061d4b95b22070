package store

import (
	"context"

	"parcours/internal/history"
	"parcours/internal/platform/memory"
	"parcours/pkg/domain"
)

type InMemoryStore struct {
	rows *memory.Table[string, history.Entry]
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: memory.NewTable[string, history.Entry]()}
}

func (s *InMemoryStore) Append(ctx context.Context, entry history.Entry) error {
	return s.rows.Put(ctx, entry.ID.String(), &entry)
}

func (s *InMemoryStore) ListByDoctorate(_ context.Context, doctorateID domain.DoctorateID) ([]history.Entry, error) {
	return s.rows.Scan(func(e *history.Entry) bool { return e.DoctorateID == doctorateID })
}
