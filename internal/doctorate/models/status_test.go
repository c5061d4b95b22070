package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitions_OnlyKnownStatuses(t *testing.T) {
	for from, targets := range transitions {
		assert.True(t, from.IsValid(), "unknown source %s", from)
		for _, to := range targets {
			assert.True(t, to.IsValid(), "unknown target %s", to)
		}
	}
}

func TestTransitions_TerminalStatuses(t *testing.T) {
	terminal := []Status{
		StatusNotAllowedToContinue,
		StatusAdmissibilityFailed,
		StatusPrivateDefenseFailed,
		StatusProclaimed,
	}
	for _, s := range AllStatuses {
		assert.Equal(t, s.In(terminal...), s.IsTerminal(), string(s))
	}
}

func TestTransitions_EveryStatusReachable(t *testing.T) {
	seen := map[Status]bool{StatusAdmitted: true}
	queue := []Status{StatusAdmitted}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range transitions[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	for _, s := range AllStatuses {
		assert.True(t, seen[s], "%s unreachable from ADMIS", s)
	}
}

func TestTransitions_Formule1Path(t *testing.T) {
	path := []Status{
		StatusAdmitted,
		StatusConfirmationSubmitted,
		StatusConfirmationSucceeded,
		StatusJurySubmitted,
		StatusJuryApprovedCA,
		StatusJuryApprovedADRE,
		StatusPrivateDefenseSubmitted,
		StatusPrivateDefenseAuthorised,
		StatusPrivateDefenseSucceeded,
		StatusPublicDefenseSubmitted,
		StatusPublicDefenseAuthorised,
		StatusProclaimed,
	}
	for i := 1; i < len(path); i++ {
		assert.True(t, path[i-1].CanTransitionTo(path[i]), "%s -> %s", path[i-1], path[i])
	}
	assert.False(t, StatusAdmitted.CanTransitionTo(StatusProclaimed))
}

func TestDefenseMethod(t *testing.T) {
	assert.True(t, DefenseMethodUndecided.IsValid())
	assert.False(t, DefenseMethodUndecided.IsSet())
	assert.True(t, Formule2.IsSet())
	assert.False(t, DefenseMethod("FORMULE_3").IsValid())
}
