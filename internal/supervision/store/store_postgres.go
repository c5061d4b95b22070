package store

import (
	"context"
	"database/sql"

	"parcours/internal/platform/postgres"
	"parcours/internal/supervision/models"
	"parcours/pkg/domain"
)

// PostgresStore persists supervision groups in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[models.Group]
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[models.Group](db, postgres.TableSupervisionGroups)}
}

func (s *PostgresStore) Get(ctx context.Context, doctorateID domain.DoctorateID) (*models.Group, error) {
	return s.rows.Get(ctx, doctorateID.String())
}

func (s *PostgresStore) Save(ctx context.Context, g *models.Group) error {
	return s.rows.Upsert(ctx, g.DoctorateID.String(), g.DoctorateID.String(), g)
}
