package store

import (
	"context"
	"database/sql"

	"parcours/internal/document/models"
	"parcours/internal/platform/postgres"
	"parcours/pkg/domain"
)

// PostgresStore persists documents in PostgreSQL.
type PostgresStore struct {
	rows postgres.Rows[models.Document]
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{rows: postgres.NewRows[models.Document](db, postgres.TableDocuments)}
}

func (s *PostgresStore) Get(ctx context.Context, id domain.DocumentID) (*models.Document, error) {
	return s.rows.Get(ctx, id.String())
}

func (s *PostgresStore) Save(ctx context.Context, d *models.Document) error {
	return s.rows.Upsert(ctx, d.ID.String(), d.DoctorateID.String(), d)
}

func (s *PostgresStore) ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]models.Document, error) {
	return s.rows.ListByDoctorate(ctx, doctorateID.String())
}

func (s *PostgresStore) Delete(ctx context.Context, id domain.DocumentID) error {
	return s.rows.Delete(ctx, id.String())
}
