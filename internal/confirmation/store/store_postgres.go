package store

import (
	"context"
	"database/sql"

	"parcours/internal/confirmation/models"
	"parcours/internal/platform/postgres"
	"parcours/pkg/domain"
)

// PostgresStore persists confirmation papers in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[models.ConfirmationPaper]
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[models.ConfirmationPaper](db, postgres.TableConfirmationPapers)}
}

func (s *PostgresStore) Get(ctx context.Context, id domain.ConfirmationPaperID) (*models.ConfirmationPaper, error) {
	return s.rows.Get(ctx, id.String())
}

func (s *PostgresStore) Save(ctx context.Context, c *models.ConfirmationPaper) error {
	return s.rows.Upsert(ctx, c.ID.String(), c.DoctorateID.String(), c)
}

func (s *PostgresStore) ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]models.ConfirmationPaper, error) {
	return s.rows.ListByDoctorate(ctx, doctorateID.String())
}
