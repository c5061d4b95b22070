package models

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	dmodels "parcours/internal/doctorate/models"
	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// Admissibility is the formule 2 preliminary jury assessment.
type Admissibility struct {
	ID          domain.AdmissibilityID `json:"id"`
	DoctorateID domain.DoctorateID     `json:"doctorate_id"`
	IsActive    bool                   `json:"is_active"`

	DecisionDate             *civil.Date     `json:"decision_date,omitempty"`
	ManuscriptSubmissionDate *civil.Date     `json:"manuscript_submission_date,omitempty"`
	JuryOpinion              []domain.FileID `json:"jury_opinion,omitempty"`
	Minutes                  []domain.FileID `json:"minutes,omitempty"`
	MinutesCanvas            []domain.FileID `json:"minutes_canvas,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(id domain.AdmissibilityID, doctorateID domain.DoctorateID, now time.Time) *Admissibility {
	return &Admissibility{ID: id, DoctorateID: doctorateID, IsActive: true, CreatedAt: now, UpdatedAt: now}
}

// SubmittableStatuses are the doctorate statuses from which the admissibility
// may be submitted. A submitted admissibility is updated in place.
var SubmittableStatuses = []dmodels.Status{
	dmodels.StatusJuryApprovedADRE,
	dmodels.StatusAdmissibilitySubmitted,
	dmodels.StatusAdmissibilityToRetake,
}

type Submission struct {
	ThesisTitle              string
	DecisionDate             *civil.Date
	ManuscriptSubmissionDate *civil.Date
}

func (a *Admissibility) requireActive() validation.Validator {
	return validation.Require(a.IsActive, ErrAdmissibilityArchived)
}

// CanSubmit checks a submission against the doctorate. The defence method rule
// is the doctorate's and is passed in as formule2.
func CanSubmit(status dmodels.Status, formule2 validation.Validator, in Submission) error {
	return validation.Run(
		[]validation.Validator{
			validation.Require(
				strings.TrimSpace(in.ThesisTitle) != "" && in.DecisionDate != nil && in.ManuscriptSubmissionDate != nil,
				ErrAdmissibilityIncomplete),
		},
		validation.Require(status.In(SubmittableStatuses...), ErrStatusNotSubmittable),
		formule2,
	)
}

func (a *Admissibility) ApplySubmission(in Submission, now time.Time) error {
	if err := validation.Run(nil, a.requireActive()); err != nil {
		return err
	}
	a.DecisionDate = in.DecisionDate
	a.ManuscriptSubmissionDate = in.ManuscriptSubmissionDate
	a.UpdatedAt = now
	return nil
}

func (a *Admissibility) SubmitMinutes(status dmodels.Status, minutes, juryOpinion []domain.FileID, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.NotEmpty(minutes, ErrMinutesMissing)},
		a.requireActive(),
		validation.Require(status == dmodels.StatusAdmissibilitySubmitted, ErrStatusNotSubmitted),
	)
	if err != nil {
		return err
	}
	a.Minutes = minutes
	if len(juryOpinion) > 0 {
		a.JuryOpinion = juryOpinion
	}
	a.UpdatedAt = now
	return nil
}

// CanConfirmSuccess requires the decision date and the minutes.
func (a *Admissibility) CanConfirmSuccess(status dmodels.Status) error {
	return validation.Run(nil,
		a.requireActive(),
		validation.Require(status == dmodels.StatusAdmissibilitySubmitted, ErrStatusNotSubmitted),
		validation.Present(a.DecisionDate, ErrDecisionDateMissing),
		validation.NotEmpty(a.Minutes, ErrMinutesMissing),
	)
}

func (a *Admissibility) CanConfirmFailure(status dmodels.Status) error {
	return validation.Run(nil,
		a.requireActive(),
		validation.Require(status == dmodels.StatusAdmissibilitySubmitted, ErrStatusNotSubmitted),
	)
}

// Retake archives a and returns an empty active successor.
func (a *Admissibility) Retake(status dmodels.Status, successorID domain.AdmissibilityID, now time.Time) (*Admissibility, error) {
	if err := a.CanConfirmFailure(status); err != nil {
		return nil, err
	}
	a.IsActive = false
	a.UpdatedAt = now
	return New(successorID, a.DoctorateID, now), nil
}
