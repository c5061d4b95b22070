package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcours/internal/platform/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Database:  config.DatabaseConfig{Driver: "memory"},
		Lifecycle: config.LifecycleConfig{Timezone: "Europe/Brussels"},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildInMemory(t *testing.T) {
	a, err := Build(context.Background(), memoryConfig(), discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.Contains(t, a.Commands.Names(), "InitializeDoctorate")
	assert.Contains(t, a.Commands.Names(), "DecideConfirmationRetake")
	assert.Contains(t, a.Queries.Names(), "GetDoctorate")
	assert.NotContains(t, a.Queries.Names(), "InitializeDoctorate")
	assert.NotNil(t, a.Files)
	assert.Empty(t, a.Health, "no external dependency is configured")

	families, err := a.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestBuildSeedsFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
propositions:
  - id: 6f1c2b8e-3d4a-4c5b-9e6f-7a8b9c0d1e2f
    student: "00000001"
    cdd_code: CDSC
    cdd_acceptance_date: 2020-02-02
people:
  - matricule: "00000001"
    first_name: Jean
    last_name: Dupont
`), 0o600))

	cfg := memoryConfig()
	cfg.Lifecycle.FixturesPath = path
	a, err := Build(context.Background(), cfg, discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	_, err = a.Commands.Dispatch(context.Background(), "InitializeDoctorate",
		[]byte(`{"proposition_id":"6f1c2b8e-3d4a-4c5b-9e6f-7a8b9c0d1e2f"}`))
	require.NoError(t, err)
}

func TestBuildRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown timezone", mutate: func(c *config.Config) { c.Lifecycle.Timezone = "Mars/Olympus" }},
		{name: "missing cdd config", mutate: func(c *config.Config) { c.Lifecycle.CddConfigPath = "/nonexistent/cdd.yaml" }},
		{name: "missing fixtures", mutate: func(c *config.Config) { c.Lifecycle.FixturesPath = "/nonexistent/fixtures.yaml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig()
			tt.mutate(cfg)
			_, err := Build(context.Background(), cfg, discard())
			assert.Error(t, err)
		})
	}
}

func TestCloseRunsInReverse(t *testing.T) {
	var order []string
	a := &App{logger: discard()}
	a.onClose(func() { order = append(order, "first") })
	a.onClose(func() { order = append(order, "second") })

	a.Close()
	a.Close()
	assert.Equal(t, []string{"second", "first"}, order)
}
