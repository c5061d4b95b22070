package store

import (
	"context"
	"database/sql"

	"parcours/internal/history"
	"parcours/internal/platform/postgres"
	"parcours/pkg/domain"
)

// PostgresStore persists history entries in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[history.Entry]
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[history.Entry](db, postgres.TableHistoryEntries)}
}

func (s *PostgresStore) Append(ctx context.Context, entry history.Entry) error {
	return s.rows.Upsert(ctx, entry.ID.String(), entry.DoctorateID.String(), &entry)
}

func (s *PostgresStore) ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]history.Entry, error) {
	return s.rows.ListByDoctorate(ctx, doctorateID.String())
}
