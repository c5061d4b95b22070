package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "parcours/pkg/domain-errors"
)

var (
	errTitle = dErrors.Define(dErrors.KindIncompleteData, "VALIDATION-TEST-1", "Titre manquant.", "Missing title.")
	errPlace = dErrors.Define(dErrors.KindIncompleteData, "VALIDATION-TEST-2", "Lieu manquant.", "Missing place.")
	errDate  = dErrors.Define(dErrors.KindInvalidValue, "VALIDATION-TEST-3", "Date trop tardive.", "Date too late.")
)

func TestChain_ContractFailuresShortCircuitInvariants(t *testing.T) {
	invariantRan := false
	err := Run(
		[]Validator{NotBlank("", errTitle), NotBlank(" ", errPlace)},
		func() error { invariantRan = true; return errDate },
	)

	assert.False(t, invariantRan)
	assert.Equal(t, []dErrors.Code{errTitle.Code, errPlace.Code}, dErrors.Codes(err))
}

func TestChain_InvariantsAllRun(t *testing.T) {
	err := Chain{
		Contract:   []Validator{NotBlank("These", errTitle)},
		Invariants: []Validator{Require(false, errDate), nil, Require(false, errPlace)},
	}.Validate()

	assert.Equal(t, []dErrors.Code{errDate.Code, errPlace.Code}, dErrors.Codes(err))
}

func TestChain_Passes(t *testing.T) {
	n := 3
	err := Run(
		[]Validator{NotEmpty([]string{"f"}, errTitle), Present(&n, errPlace)},
		When(false, Require(false, errDate)),
	)
	assert.NoError(t, err)
}
