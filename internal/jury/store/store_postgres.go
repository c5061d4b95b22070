package store

import (
	"context"
	"database/sql"

	"parcours/internal/jury/models"
	"parcours/internal/platform/postgres"
	"parcours/pkg/domain"
)

// PostgresStore persists juries in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[models.Jury]
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[models.Jury](db, postgres.TableJuries)}
}

func (s *PostgresStore) Get(ctx context.Context, doctorateID domain.DoctorateID) (*models.Jury, error) {
	return s.rows.Get(ctx, doctorateID.String())
}

func (s *PostgresStore) Save(ctx context.Context, j *models.Jury) error {
	return s.rows.Upsert(ctx, j.DoctorateID.String(), j.DoctorateID.String(), j)
}
