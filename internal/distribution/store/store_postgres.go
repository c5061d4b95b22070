package store

import (
	"context"
	"database/sql"

	"parcours/internal/distribution/models"
	"parcours/internal/platform/postgres"
	"parcours/pkg/domain"
)

// PostgresStore persists thesis distribution authorisations in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[models.Authorization]
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[models.Authorization](db, postgres.TableThesisDistributions)}
}

func (s *PostgresStore) Get(ctx context.Context, doctorateID domain.DoctorateID) (*models.Authorization, error) {
	return s.rows.Get(ctx, doctorateID.String())
}

func (s *PostgresStore) Save(ctx context.Context, a *models.Authorization) error {
	return s.rows.Upsert(ctx, a.DoctorateID.String(), a.DoctorateID.String(), a)
}
