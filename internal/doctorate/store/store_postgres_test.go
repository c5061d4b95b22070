//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"parcours/internal/doctorate/models"
	"parcours/internal/doctorate/store"
	"parcours/internal/platform/postgres"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
	"parcours/pkg/testutil/containers"
)

func TestPostgresStore_RoundTrip(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	require.NoError(t, postgres.Migrate(pg.DB, nil))
	s := store.NewPostgres(pg.DB)
	ctx := context.Background()

	acceptance := civil.Date{Year: 2025, Month: 9, Day: 15}
	now := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)
	d := models.NewFromAdmission(models.Admission{
		PropositionID:     domain.PropositionID(uuid.New()),
		Reference:         "M-CDE25-000.001",
		Training:          models.Training{Acronym: "SC3DP", Title: "Doctorat en sciences", Year: 2025},
		Student:           models.Student{Matricule: "0123456", FirstName: "Ada", LastName: "Lovelace"},
		ThesisTitle:       "Analytical engines",
		CddAcceptanceDate: &acceptance,
	}, domain.NewConfirmationPaperID(), now)
	when := civil.DateTime{Date: civil.Date{Year: 2027, Month: 6, Day: 1}, Time: civil.Time{Hour: 14}}
	d.PublicDefense.DateTime = &when

	require.NoError(t, s.Save(ctx, d))
	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(d, got); diff != "" {
		t.Fatalf("doctorate mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, d.TransitionTo(models.StatusConfirmationSubmitted, now.Add(time.Hour)))
	require.NoError(t, s.Save(ctx, d))
	got, err = s.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmationSubmitted, got.Status)

	_, err = s.Get(ctx, domain.DoctorateID(uuid.New()))
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}
