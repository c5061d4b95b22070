// Package validation runs the two-phase validation used by every aggregate mutator.
//
// Contract validators check well-formedness (required fields, value types).
// Invariant validators check business rules and may assume well-formed input.
// Invariants never run when a contract validator failed. Within a phase every
// validator runs, and all raised errors are returned together as a
// domainerrors.Multiple. Validators are pure: they must not perform I/O.
package validation

import (
	"strings"

	dErrors "parcours/pkg/domain-errors"
)

// Validator produces zero or one business error.
type Validator func() error

// Chain is an ordered list of contract validators followed by invariant validators.
type Chain struct {
	Contract   []Validator
	Invariants []Validator
}

// Validate runs the contract phase, then the invariant phase.
func (c Chain) Validate() error {
	if err := runPhase(c.Contract); err != nil {
		return err
	}
	return runPhase(c.Invariants)
}

// Run is a shorthand for a chain built inline.
func Run(contract []Validator, invariants ...Validator) error {
	return Chain{Contract: contract, Invariants: invariants}.Validate()
}

func runPhase(validators []Validator) error {
	var errs []error
	for _, v := range validators {
		if v == nil {
			continue
		}
		if err := v(); err != nil {
			errs = append(errs, err)
		}
	}
	return dErrors.Join(errs...)
}

// Require fails with err when ok is false.
func Require(ok bool, err *dErrors.Error) Validator {
	return func() error {
		if ok {
			return nil
		}
		return err
	}
}

// NotBlank fails with err when s is empty after trimming.
func NotBlank(s string, err *dErrors.Error) Validator {
	return Require(strings.TrimSpace(s) != "", err)
}

// NotEmpty fails with err when values has no element.
func NotEmpty[T any](values []T, err *dErrors.Error) Validator {
	return Require(len(values) > 0, err)
}

// Present fails with err when p is nil.
func Present[T any](p *T, err *dErrors.Error) Validator {
	return Require(p != nil, err)
}

// When keeps v only when cond holds.
func When(cond bool, v Validator) Validator {
	if !cond {
		return nil
	}
	return v
}
