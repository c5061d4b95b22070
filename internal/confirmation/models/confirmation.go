package models

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	dmodels "parcours/internal/doctorate/models"
	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// ValidityYears is the time allowed between CDD acceptance and the confirmation exam.
const ValidityYears = 2

// ConfirmationPaper is one attempt at the confirmation exam. A doctorate owns
// every attempt; only the active one is mutable.
type ConfirmationPaper struct {
	ID          domain.ConfirmationPaperID `json:"id"`
	DoctorateID domain.DoctorateID         `json:"doctorate_id"`
	IsActive    bool                       `json:"is_active"`

	Deadline                      civil.Date      `json:"deadline"`
	ExamDate                      *civil.Date     `json:"exam_date,omitempty"`
	ResearchReport                []domain.FileID `json:"research_report,omitempty"`
	SupervisoryPanelMinutes       []domain.FileID `json:"supervisory_panel_minutes,omitempty"`
	MinutesCanvas                 []domain.FileID `json:"minutes_canvas,omitempty"`
	ResearchMandateRenewalOpinion []domain.FileID `json:"research_mandate_renewal_opinion,omitempty"`
	SuccessCertificate            []domain.FileID `json:"success_certificate,omitempty"`
	FailureCertificate            []domain.FileID `json:"failure_certificate,omitempty"`

	Extension *Extension `json:"extension,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Extension is a request to push the deadline back.
type Extension struct {
	NewDeadline         civil.Date      `json:"new_deadline"`
	BriefJustification  string          `json:"brief_justification"`
	JustificationLetter []domain.FileID `json:"justification_letter,omitempty"`
	CddOpinion          string          `json:"cdd_opinion,omitempty"`
	ApprovedAt          *time.Time      `json:"approved_at,omitempty"`
}

// DefaultDeadline is the CDD acceptance date plus ValidityYears, or today plus
// ValidityYears when the acceptance date is unknown.
func DefaultDeadline(cddAcceptance *civil.Date, today civil.Date) civil.Date {
	if cddAcceptance != nil {
		return addYears(*cddAcceptance, ValidityYears)
	}
	return addYears(today, ValidityYears)
}

func addYears(d civil.Date, years int) civil.Date {
	return civil.DateOf(d.In(time.UTC).AddDate(years, 0, 0))
}

func New(id domain.ConfirmationPaperID, doctorateID domain.DoctorateID, deadline civil.Date, now time.Time) *ConfirmationPaper {
	return &ConfirmationPaper{
		ID:          id,
		DoctorateID: doctorateID,
		IsActive:    true,
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (c *ConfirmationPaper) requireActive() validation.Validator {
	return validation.Require(c.IsActive, ErrConfirmationPaperArchived)
}

// Submission is what the student hands in.
type Submission struct {
	ExamDate                      *civil.Date
	ResearchReport                []domain.FileID
	SupervisoryPanelMinutes       []domain.FileID
	ResearchMandateRenewalOpinion []domain.FileID
}

// Submit records the student submission. The exam date must not be in the
// future nor after the deadline; a date equal to the deadline is accepted.
func (c *ConfirmationPaper) Submit(status dmodels.Status, in Submission, today civil.Date, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{
			validation.Require(in.ExamDate != nil && len(in.ResearchReport) > 0, ErrConfirmationIncomplete),
		},
		c.requireActive(),
		validation.Require(status.In(dmodels.StatusAdmitted, dmodels.StatusConfirmationToRetake), ErrStatusNotSubmittable),
		func() error {
			if in.ExamDate.After(today) {
				return ErrExamDateInFuture.With(in.ExamDate.String())
			}
			return nil
		},
		func() error {
			if in.ExamDate.After(c.Deadline) {
				return ErrExamDateAfterDeadline.With(in.ExamDate.String() + " > " + c.Deadline.String())
			}
			return nil
		},
	)
	if err != nil {
		return err
	}
	c.ExamDate = in.ExamDate
	c.ResearchReport = in.ResearchReport
	c.SupervisoryPanelMinutes = in.SupervisoryPanelMinutes
	c.ResearchMandateRenewalOpinion = in.ResearchMandateRenewalOpinion
	c.SubmittedAt = &now
	c.UpdatedAt = now
	return nil
}

// CompleteByPromoter lets a supervisor add the panel minutes and the mandate
// renewal opinion once the paper is submitted.
func (c *ConfirmationPaper) CompleteByPromoter(status dmodels.Status, minutes, renewalOpinion []domain.FileID, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.NotEmpty(minutes, ErrPromoterDataMissing)},
		c.requireActive(),
		validation.Require(status == dmodels.StatusConfirmationSubmitted, ErrStatusNotSubmitted),
	)
	if err != nil {
		return err
	}
	c.SupervisoryPanelMinutes = minutes
	if len(renewalOpinion) > 0 {
		c.ResearchMandateRenewalOpinion = renewalOpinion
	}
	c.UpdatedAt = now
	return nil
}

// CanDecideSuccess checks the CDD may record a success.
func (c *ConfirmationPaper) CanDecideSuccess(status dmodels.Status) error {
	return validation.Run(nil,
		c.requireActive(),
		validation.Require(status == dmodels.StatusConfirmationSubmitted, ErrStatusNotSubmitted),
		validation.NotEmpty(c.SupervisoryPanelMinutes, ErrMinutesMissing),
	)
}

func (c *ConfirmationPaper) CanDecideFailure(status dmodels.Status) error {
	return validation.Run(nil,
		c.requireActive(),
		validation.Require(status == dmodels.StatusConfirmationSubmitted, ErrStatusNotSubmitted),
	)
}

// Retake archives c and returns its successor, which inherits only the new deadline.
func (c *ConfirmationPaper) Retake(status dmodels.Status, newDeadline *civil.Date, successorID domain.ConfirmationPaperID, now time.Time) (*ConfirmationPaper, error) {
	err := validation.Run(
		[]validation.Validator{validation.Present(newDeadline, ErrNewDeadlineMissing)},
		c.requireActive(),
		validation.Require(status == dmodels.StatusConfirmationSubmitted, ErrStatusNotSubmitted),
	)
	if err != nil {
		return nil, err
	}
	c.Archive(now)
	return New(successorID, c.DoctorateID, *newDeadline, now), nil
}

func (c *ConfirmationPaper) Archive(now time.Time) {
	c.IsActive = false
	c.UpdatedAt = now
}

// ExtensionStatuses are the doctorate statuses in which the deadline may be extended.
var ExtensionStatuses = []dmodels.Status{
	dmodels.StatusAdmitted,
	dmodels.StatusConfirmationSubmitted,
	dmodels.StatusConfirmationToRetake,
}

// RequestExtension attaches an extension proposal. The status is not changed.
func (c *ConfirmationPaper) RequestExtension(status dmodels.Status, newDeadline *civil.Date, justification string, letter []domain.FileID, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{
			validation.Require(newDeadline != nil && strings.TrimSpace(justification) != "", ErrExtensionIncomplete),
		},
		c.requireActive(),
		validation.Require(status.In(ExtensionStatuses...), ErrStatusNotExtensible),
		func() error {
			if !newDeadline.After(c.Deadline) {
				return ErrExtensionDeadlineNotLater.With(newDeadline.String())
			}
			return nil
		},
	)
	if err != nil {
		return err
	}
	c.Extension = &Extension{
		NewDeadline:         *newDeadline,
		BriefJustification:  justification,
		JustificationLetter: letter,
	}
	c.UpdatedAt = now
	return nil
}

// ApproveExtension replaces the deadline with the requested one.
func (c *ConfirmationPaper) ApproveExtension(cddOpinion string, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.NotBlank(cddOpinion, ErrCddOpinionMissing)},
		c.requireActive(),
		validation.Present(c.Extension, ErrExtensionNotRequested),
		func() error {
			if c.Extension != nil && !c.Extension.NewDeadline.After(c.Deadline) {
				return ErrExtensionDeadlineNotLater.With(c.Extension.NewDeadline.String())
			}
			return nil
		},
	)
	if err != nil {
		return err
	}
	c.Extension.CddOpinion = cddOpinion
	c.Extension.ApprovedAt = &now
	c.Deadline = c.Extension.NewDeadline
	c.UpdatedAt = now
	return nil
}
