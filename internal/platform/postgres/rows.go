package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"parcours/pkg/platform/sentinel"
	"parcours/pkg/platform/tx"
)

// Table names accepted by Rows.
const (
	TableDoctorates          = "doctorates"
	TableConfirmationPapers  = "confirmation_papers"
	TablePrivateDefenses     = "private_defenses"
	TableAdmissibilities     = "admissibilities"
	TableJuries              = "juries"
	TableSupervisionGroups   = "supervision_groups"
	TableThesisDistributions = "thesis_distributions"
	TableDocuments           = "documents"
	TableHistoryEntries      = "history_entries"
)

// Rows reads and writes JSONB payloads of one table. Queries run on the
// transaction carried by the context when there is one.
type Rows[V any] struct {
	db    *sql.DB
	table string
}

func NewRows[V any](db *sql.DB, table string) Rows[V] {
	return Rows[V]{db: db, table: table}
}

// Get returns sentinel.ErrNotFound when no row has this id.
func (r Rows[V]) Get(ctx context.Context, id string) (*V, error) {
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE id = $1`, r.table)
	var raw []byte
	err := tx.Executor(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s row: %w", r.table, err)
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s row: %w", r.table, err)
	}
	return &v, nil
}

// ListByDoctorate returns every row of a doctorate in insertion order.
func (r Rows[V]) ListByDoctorate(ctx context.Context, doctorateID string) ([]V, error) {
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE doctorate_id = $1 ORDER BY seq`, r.table)
	rows, err := tx.Executor(ctx, r.db).QueryContext(ctx, query, doctorateID)
	if err != nil {
		return nil, fmt.Errorf("list %s rows: %w", r.table, err)
	}
	defer rows.Close()

	out := make([]V, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", r.table, err)
		}
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", r.table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", r.table, err)
	}
	return out, nil
}

// Upsert inserts or replaces the payload stored under id.
func (r Rows[V]) Upsert(ctx context.Context, id, doctorateID string, v *V) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s row: %w", r.table, err)
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, doctorate_id, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`, r.table)
	if _, err := tx.Executor(ctx, r.db).ExecContext(ctx, query, id, doctorateID, raw); err != nil {
		return fmt.Errorf("upsert %s row: %w", r.table, err)
	}
	return nil
}

// Delete returns sentinel.ErrNotFound when no row has this id.
func (r Rows[V]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	res, err := tx.Executor(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s row: %w", r.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s row: %w", r.table, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
