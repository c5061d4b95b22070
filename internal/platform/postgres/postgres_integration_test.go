//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"parcours/internal/platform/postgres"
	"parcours/pkg/platform/sentinel"
	"parcours/pkg/testutil/containers"
)

type payload struct {
	Name string `json:"name"`
}

func TestRowsAndTx(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	require.NoError(t, postgres.Migrate(pg.DB, nil))
	require.NoError(t, postgres.Migrate(pg.DB, nil), "second run is a no-op")

	ctx := context.Background()
	doctorates := postgres.NewRows[payload](pg.DB, postgres.TableDoctorates)
	docs := postgres.NewRows[payload](pg.DB, postgres.TableDocuments)
	runner := postgres.NewTx(pg.DB)

	require.NoError(t, runner.RunInTx(ctx, "d1", func(ctx context.Context) error {
		if err := doctorates.Upsert(ctx, "d1", "d1", &payload{Name: "doctorate"}); err != nil {
			return err
		}
		return docs.Upsert(ctx, "doc1", "d1", &payload{Name: "first"})
	}))

	boom := errors.New("boom")
	err := runner.RunInTx(ctx, "d1", func(ctx context.Context) error {
		if err := docs.Upsert(ctx, "doc2", "d1", &payload{Name: "second"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	listed, err := docs.ListByDoctorate(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, []payload{{Name: "first"}}, listed)

	_, err = docs.Get(ctx, "doc2")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, docs.Delete(ctx, "doc1"))
	assert.ErrorIs(t, docs.Delete(ctx, "doc1"), sentinel.ErrNotFound)
}

func TestTxSerializesPerKey(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	runner := postgres.NewTx(pg.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	holding := make(chan struct{})
	release := make(chan struct{})
	second := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.RunInTx(gctx, "d1", func(context.Context) error {
			close(holding)
			<-release
			return nil
		})
	})
	<-holding
	g.Go(func() error {
		return runner.RunInTx(gctx, "d1", func(context.Context) error {
			close(second)
			return nil
		})
	})

	require.NoError(t, runner.RunInTx(ctx, "d2", func(context.Context) error { return nil }),
		"another doctorate is not blocked")
	select {
	case <-second:
		t.Fatal("second transaction on d1 entered while the first held the lock")
	case <-time.After(300 * time.Millisecond):
	}

	close(release)
	require.NoError(t, g.Wait())
	select {
	case <-second:
	default:
		t.Fatal("second transaction on d1 never ran")
	}
}
