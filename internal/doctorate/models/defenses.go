package models

import (
	"time"

	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// Formule 2 runs the private and the public defence as a single stage. The
// doctorate side of that stage lives here; the private defence record is
// handled by its own aggregate.

// DefensesSubmittableStatuses are the statuses from which both defences may be submitted.
var DefensesSubmittableStatuses = []Status{
	StatusJuryApprovedADRE,
	StatusAdmissibilitySucceeded,
	StatusPrivateDefenseToRetake,
	StatusDefensesSubmitted,
}

// DefensesSubmissionInvariants are the doctorate rules of a combined submission.
func (d *Doctorate) DefensesSubmissionInvariants() []validation.Validator {
	return []validation.Validator{
		d.RequireStatus(ErrStatusNotDefensesSubmittable, DefensesSubmittableStatuses...),
		d.RequireFormule2(),
	}
}

func (d *Doctorate) AuthoriseDefenses(now time.Time) error {
	if err := validation.Run(nil, d.RequireStatus(ErrStatusNotDefensesSubmitted, StatusDefensesSubmitted)); err != nil {
		return err
	}
	return d.TransitionTo(StatusDefensesAuthorised, now)
}

func (d *Doctorate) SubmitDefensesMinutes(minutes []domain.FileID, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.NotEmpty(minutes, ErrDefensesMinutesMissing)},
		d.RequireStatus(ErrStatusNotDefensesAuthorised, StatusDefensesAuthorised),
	)
	if err != nil {
		return err
	}
	d.ApplyPublicDefenseMinutes(minutes, now)
	return nil
}

func (d *Doctorate) ConfirmDefensesSuccess(now time.Time) error {
	err := validation.Run(nil,
		d.RequireStatus(ErrStatusNotDefensesAuthorised, StatusDefensesAuthorised),
		validation.NotEmpty(d.PublicDefense.Minutes, ErrDefensesMinutesMissing),
		validation.Present(d.PublicDefense.DateTime, ErrPublicDefenseDateMissing),
	)
	if err != nil {
		return err
	}
	return d.TransitionTo(StatusProclaimed, now)
}

func (d *Doctorate) ConfirmDefensesFailure(now time.Time) error {
	if err := validation.Run(nil, d.RequireStatus(ErrStatusNotDefensesAuthorised, StatusDefensesAuthorised)); err != nil {
		return err
	}
	return d.TransitionTo(StatusPrivateDefenseFailed, now)
}

func (d *Doctorate) ConfirmDefensesRetake(now time.Time) error {
	if err := validation.Run(nil, d.RequireStatus(ErrStatusNotDefensesAuthorised, StatusDefensesAuthorised)); err != nil {
		return err
	}
	return d.TransitionTo(StatusPrivateDefenseToRetake, now)
}
