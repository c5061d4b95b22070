package store

import (
	"context"
	"database/sql"

	"parcours/internal/doctorate/models"
	"parcours/internal/platform/postgres"
	"parcours/pkg/domain"
)

// PostgresStore persists doctorates in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[models.Doctorate]
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[models.Doctorate](db, postgres.TableDoctorates)}
}

func (s *PostgresStore) Get(ctx context.Context, doctorateID domain.DoctorateID) (*models.Doctorate, error) {
	return s.rows.Get(ctx, doctorateID.String())
}

func (s *PostgresStore) Save(ctx context.Context, d *models.Doctorate) error {
	return s.rows.Upsert(ctx, d.ID.String(), d.ID.String(), d)
}
