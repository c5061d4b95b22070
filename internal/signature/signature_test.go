package signature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcours/pkg/domain"
)

func TestClock_MonotonicPerActor(t *testing.T) {
	c := NewClock()
	base := time.Date(2024, 1, 5, 11, 30, 0, 0, time.UTC)

	first := c.Stamp("actor-1", base)
	second := c.Stamp("actor-1", base)
	earlier := c.Stamp("actor-1", base.Add(-time.Hour))
	other := c.Stamp("actor-2", base)

	assert.Equal(t, base, first)
	assert.True(t, second.After(first))
	assert.True(t, earlier.After(second))
	assert.Equal(t, base, other)
}

func TestActor_DecisionLifecycle(t *testing.T) {
	at := time.Date(2024, 1, 5, 11, 30, 0, 0, time.UTC)
	a := Actor{ID: domain.NewActorID(), Matricule: "00000001", State: NotInvited}

	a.Invite(at)
	assert.Equal(t, Invited, a.State)
	assert.False(t, a.State.IsDecided())

	pdf := []domain.FileID{domain.NewFileID()}
	a.Approve(at.Add(time.Minute), "ok", "", pdf)
	assert.Equal(t, Approved, a.State)
	require.NotNil(t, a.StateChangedAt)
	assert.Equal(t, pdf, a.ApprovalPDF)

	a.Invite(at.Add(time.Hour))
	assert.Equal(t, Invited, a.State)
	assert.Empty(t, a.ApprovalPDF)
	assert.Empty(t, a.PublicComment)
}

func TestActor_SamePerson(t *testing.T) {
	internal := &Actor{Matricule: "1"}
	assert.True(t, internal.SamePerson(&Actor{Matricule: "1"}))
	assert.False(t, internal.SamePerson(&Actor{Matricule: "2"}))

	ext := &Actor{External: &External{Email: "Jane@Example.org"}}
	assert.True(t, ext.SamePerson(&Actor{External: &External{Email: "jane@example.org "}}))
	assert.False(t, ext.SamePerson(internal))
}
