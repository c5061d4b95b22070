package cddconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
default_min_jury_members: 5
committees:
  cdsss:
    min_jury_members: 6
    manager_email: cdd-sss@example.org
  CDE:
    manager_email: cde@example.org
`))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.MinJuryMembers("CDSSS"))
	assert.Equal(t, 5, cfg.MinJuryMembers("cde"))
	assert.Equal(t, 5, cfg.MinJuryMembers("unknown"))

	c, ok := cfg.Committee("cdsss")
	require.True(t, ok)
	assert.Equal(t, "cdd-sss@example.org", c.ManagerEmail)
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse([]byte("default_min_jury_members: 0"))
	assert.Error(t, err)

	_, err = Parse([]byte("committees:\n  X:\n    min_jury_members: -1\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("committees: ["))
	assert.Error(t, err)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMinJuryMembers, cfg.MinJuryMembers("ANY"))
}
