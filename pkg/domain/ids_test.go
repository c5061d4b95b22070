package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "parcours/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseDoctorateID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, ErrInvalidID.Code))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseDoctorateID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, ErrInvalidID.Code))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParsePropositionID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, ErrInvalidID.Code))
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		_, err := ParseActorID(strings.Repeat("a", 65))
		require.Error(t, err)
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseDocumentID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, DocumentID(valid), id)
	})
}

func TestDoctorateIDFromProposition(t *testing.T) {
	p := PropositionID(uuid.New())
	assert.Equal(t, uuid.UUID(p), uuid.UUID(DoctorateIDFromProposition(p)))
}

func TestIDs_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Doctorate DoctorateID `json:"doctorate"`
		Files     []FileID    `json:"files"`
	}
	in := payload{Doctorate: DoctorateID(uuid.New()), Files: []FileID{NewFileID(), NewFileID()}}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), in.Doctorate.String())

	var out payload
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestFileIDs(t *testing.T) {
	a, b := NewFileID(), NewFileID()
	assert.Equal(t, []string{a.String(), b.String()}, FileIDs([]FileID{a, b}))
	assert.Empty(t, FileIDs(nil))
}
