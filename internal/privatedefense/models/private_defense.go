package models

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	dmodels "parcours/internal/doctorate/models"
	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// PrivateDefense is one attempt at the private defence.
type PrivateDefense struct {
	ID          domain.PrivateDefenseID `json:"id"`
	DoctorateID domain.DoctorateID      `json:"doctorate_id"`
	IsActive    bool                    `json:"is_active"`

	DateTime                 *civil.DateTime `json:"date_time,omitempty"`
	Place                    string          `json:"place,omitempty"`
	ManuscriptSubmissionDate *civil.Date     `json:"manuscript_submission_date,omitempty"`
	Minutes                  []domain.FileID `json:"minutes,omitempty"`
	MinutesCanvas            []domain.FileID `json:"minutes_canvas,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(id domain.PrivateDefenseID, doctorateID domain.DoctorateID, now time.Time) *PrivateDefense {
	return &PrivateDefense{ID: id, DoctorateID: doctorateID, IsActive: true, CreatedAt: now, UpdatedAt: now}
}

// SubmittableStatuses are the doctorate statuses from which the student may
// submit (or re-submit) the private defence.
var SubmittableStatuses = []dmodels.Status{
	dmodels.StatusJuryApprovedADRE,
	dmodels.StatusAdmissibilitySucceeded,
	dmodels.StatusPrivateDefenseToRetake,
	dmodels.StatusPrivateDefenseSubmitted,
}

// Submission is the student's private defence data. The thesis title belongs
// to the doctorate; it is part of the submission contract.
type Submission struct {
	ThesisTitle              string
	DateTime                 *civil.DateTime
	Place                    string
	ManuscriptSubmissionDate *civil.Date
}

// Contract reports missing fields with ErrPrivateDefenseIncomplete.
func (in Submission) Contract() validation.Validator {
	return validation.Require(
		strings.TrimSpace(in.ThesisTitle) != "" &&
			in.DateTime != nil &&
			strings.TrimSpace(in.Place) != "" &&
			in.ManuscriptSubmissionDate != nil,
		ErrPrivateDefenseIncomplete)
}

func (p *PrivateDefense) RequireActive() validation.Validator {
	return validation.Require(p.IsActive, ErrPrivateDefenseArchived)
}

// Submit records a formule 1 submission.
func (p *PrivateDefense) Submit(status dmodels.Status, in Submission, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{in.Contract()},
		p.RequireActive(),
		validation.Require(status.In(SubmittableStatuses...), ErrStatusNotSubmittable),
	)
	if err != nil {
		return err
	}
	p.ApplySubmission(in, now)
	return nil
}

func (p *PrivateDefense) ApplySubmission(in Submission, now time.Time) {
	p.DateTime = in.DateTime
	p.Place = strings.TrimSpace(in.Place)
	p.ManuscriptSubmissionDate = in.ManuscriptSubmissionDate
	p.UpdatedAt = now
}

func (p *PrivateDefense) CanAuthorise(status dmodels.Status) error {
	return validation.Run(nil,
		p.RequireActive(),
		validation.Require(status == dmodels.StatusPrivateDefenseSubmitted, ErrStatusNotSubmitted),
	)
}

func (p *PrivateDefense) SubmitMinutes(status dmodels.Status, minutes []domain.FileID, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.NotEmpty(minutes, ErrMinutesMissing)},
		p.RequireActive(),
		validation.Require(status == dmodels.StatusPrivateDefenseAuthorised, ErrStatusNotAuthorised),
	)
	if err != nil {
		return err
	}
	p.ApplyMinutes(minutes, now)
	return nil
}

func (p *PrivateDefense) ApplyMinutes(minutes []domain.FileID, now time.Time) {
	p.Minutes = minutes
	p.UpdatedAt = now
}

// CanConfirmSuccess requires the minutes to be present.
func (p *PrivateDefense) CanConfirmSuccess(status dmodels.Status) error {
	return validation.Run(nil,
		p.RequireActive(),
		validation.Require(status == dmodels.StatusPrivateDefenseAuthorised, ErrStatusNotAuthorised),
		validation.NotEmpty(p.Minutes, ErrMinutesMissing),
	)
}

func (p *PrivateDefense) CanConfirmFailure(status dmodels.Status) error {
	return validation.Run(nil,
		p.RequireActive(),
		validation.Require(status == dmodels.StatusPrivateDefenseAuthorised, ErrStatusNotAuthorised),
	)
}

// Retake archives p and returns an empty active successor. The caller checks
// the doctorate status, which differs between formule 1 and formule 2.
func (p *PrivateDefense) Retake(successorID domain.PrivateDefenseID, now time.Time) (*PrivateDefense, error) {
	if err := validation.Run(nil, p.RequireActive()); err != nil {
		return nil, err
	}
	p.IsActive = false
	p.UpdatedAt = now
	return New(successorID, p.DoctorateID, now), nil
}
