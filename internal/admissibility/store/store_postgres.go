package store

import (
	"context"
	"database/sql"

	"parcours/internal/admissibility/models"
	"parcours/internal/platform/postgres"
	"parcours/pkg/domain"
)

// PostgresStore persists admissibility records in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[models.Admissibility]
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[models.Admissibility](db, postgres.TableAdmissibilities)}
}

func (s *PostgresStore) Get(ctx context.Context, id domain.AdmissibilityID) (*models.Admissibility, error) {
	return s.rows.Get(ctx, id.String())
}

func (s *PostgresStore) Save(ctx context.Context, a *models.Admissibility) error {
	return s.rows.Upsert(ctx, a.ID.String(), a.DoctorateID.String(), a)
}

func (s *PostgresStore) ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]models.Admissibility, error) {
	return s.rows.ListByDoctorate(ctx, doctorateID.String())
}
