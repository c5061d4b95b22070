package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcours/internal/ports"
	"parcours/pkg/domain"
)

const sample = `
propositions:
  - id: 6f1c2b8e-3d4a-4c5b-9e6f-7a8b9c0d1e2f
    reference: "M-CDSC22-000.001"
    student: "00000001"
    training_acronym: SC3DP
    training_year: 2022
    cdd_code: CDSC
    thesis_title: Graph rewriting
    cdd_acceptance_date: 2022-02-02
    curriculum: [0f8fad5b-d9cb-469f-a165-70867728950e]
    promoters:
      - matricule: P1
        reference: true
    ca_members:
      - first_name: Ada
        last_name: Lovelace
        email: ada@example.org
        institute: Analytical Engines
people:
  - matricule: "00000001"
    first_name: Jean
    last_name: Dupont
    email: jean.dupont@example.org
    language: fr-be
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	reader, directory, err := Load(path)
	require.NoError(t, err)

	id, err := domain.ParsePropositionID("6f1c2b8e-3d4a-4c5b-9e6f-7a8b9c0d1e2f")
	require.NoError(t, err)
	p, err := reader.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, ports.PropositionStatusEnrolmentAuthorised, p.Status)
	assert.Equal(t, &civil.Date{Year: 2022, Month: 2, Day: 2}, p.CddAcceptanceDate)
	require.Len(t, p.Promoters, 1)
	assert.True(t, p.Promoters[0].IsReference)
	require.Len(t, p.CaMembers, 1)
	assert.Equal(t, "ada@example.org", p.CaMembers[0].Email)
	assert.Len(t, p.CurriculumFiles, 1)

	person, err := directory.Get(context.Background(), "00000001")
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", person.FullName())
}

func TestLoadWithoutPath(t *testing.T) {
	reader, directory, err := Load("")
	require.NoError(t, err)
	assert.NotNil(t, reader)
	assert.NotNil(t, directory)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bad id", raw: "propositions: [{id: nope}]", want: "proposition 0"},
		{name: "bad date", raw: "propositions: [{id: 6f1c2b8e-3d4a-4c5b-9e6f-7a8b9c0d1e2f, cdd_acceptance_date: 02/02/2022}]", want: "cdd_acceptance_date"},
		{name: "anonymous person", raw: "people: [{last_name: Dupont}]", want: "missing matricule"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
