package store

import (
	"context"
	"database/sql"

	"parcours/internal/platform/postgres"
	"parcours/internal/privatedefense/models"
	"parcours/pkg/domain"
)

// PostgresStore persists private defences in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[models.PrivateDefense]
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[models.PrivateDefense](db, postgres.TablePrivateDefenses)}
}

func (s *PostgresStore) Get(ctx context.Context, id domain.PrivateDefenseID) (*models.PrivateDefense, error) {
	return s.rows.Get(ctx, id.String())
}

func (s *PostgresStore) Save(ctx context.Context, p *models.PrivateDefense) error {
	return s.rows.Upsert(ctx, p.ID.String(), p.DoctorateID.String(), p)
}

func (s *PostgresStore) ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]models.PrivateDefense, error) {
	return s.rows.ListByDoctorate(ctx, doctorateID.String())
}
