package models

import (
	"time"

	"cloud.google.com/go/civil"

	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// Training identifies the programme the student is enrolled in.
type Training struct {
	Acronym  string `json:"acronym"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	CddCode  string `json:"cdd_code"`
	CddTitle string `json:"cdd_title"`
}

// Student is the immutable copy of the student identity taken at admission.
type Student struct {
	Matricule string `json:"matricule"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Language  string `json:"language"`
}

func (s Student) FullName() string { return s.FirstName + " " + s.LastName }

// Doctorate is the aggregate root of a doctoral journey.
//
// Invariants:
//   - Status only changes along the transition table (CanTransitionTo)
//   - At most one active confirmation paper, private defence and admissibility;
//     the Current*ID fields point at them
//   - Proposition data (training, student, acceptance date) is copied once at
//     initialization and never mutated afterwards
type Doctorate struct {
	ID                domain.DoctorateID   `json:"id"`
	PropositionID     domain.PropositionID `json:"proposition_id"`
	Reference         string               `json:"reference"`
	Training          Training             `json:"training"`
	Student           Student              `json:"student"`
	Status            Status               `json:"status"`
	ThesisTitle       string               `json:"thesis_title"`
	ThesisLanguage    string               `json:"thesis_language,omitempty"`
	DefenseMethod     DefenseMethod        `json:"defense_method,omitempty"`
	CddAcceptanceDate *civil.Date          `json:"cdd_acceptance_date,omitempty"`

	CurrentConfirmationPaperID domain.ConfirmationPaperID `json:"current_confirmation_paper_id"`
	CurrentPrivateDefenseID    domain.PrivateDefenseID    `json:"current_private_defense_id"`
	CurrentAdmissibilityID     domain.AdmissibilityID     `json:"current_admissibility_id"`

	PublicDefense PublicDefense `json:"public_defense"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Admission carries the proposition data copied into a new doctorate.
type Admission struct {
	PropositionID     domain.PropositionID
	Reference         string
	Training          Training
	Student           Student
	ThesisTitle       string
	ThesisLanguage    string
	CddAcceptanceDate *civil.Date
}

// NewFromAdmission creates a doctorate in ADMIS status. Its identity is the
// proposition identity, which makes initialization idempotent.
func NewFromAdmission(a Admission, paperID domain.ConfirmationPaperID, now time.Time) *Doctorate {
	return &Doctorate{
		ID:                         domain.DoctorateIDFromProposition(a.PropositionID),
		PropositionID:              a.PropositionID,
		Reference:                  a.Reference,
		Training:                   a.Training,
		Student:                    a.Student,
		Status:                     StatusAdmitted,
		ThesisTitle:                a.ThesisTitle,
		ThesisLanguage:             a.ThesisLanguage,
		CddAcceptanceDate:          a.CddAcceptanceDate,
		CurrentConfirmationPaperID: paperID,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
}

// TransitionTo moves the doctorate to next when the automaton allows it.
func (d *Doctorate) TransitionTo(next Status, now time.Time) error {
	if !d.Status.CanTransitionTo(next) {
		return ErrTransitionNotAllowed.With(string(d.Status) + " -> " + string(next))
	}
	d.Status = next
	d.UpdatedAt = now
	return nil
}

// RequireStatus fails with err unless the doctorate is in one of statuses.
func (d *Doctorate) RequireStatus(err error, statuses ...Status) validation.Validator {
	return func() error {
		if d.Status.In(statuses...) {
			return nil
		}
		return err
	}
}

// RequireFormule2 fails unless the chosen defence method is formule 2.
func (d *Doctorate) RequireFormule2() validation.Validator {
	return func() error {
		if d.DefenseMethod == Formule2 {
			return nil
		}
		return ErrFormule2Required
	}
}

func (d *Doctorate) IsJuryEditable() bool {
	return d.Status.In(JuryEditableStatuses...)
}

// ApplyJuryDetails mirrors the jury thesis details on the doctorate.
func (d *Doctorate) ApplyJuryDetails(title string, method DefenseMethod, language string, now time.Time) {
	d.ThesisTitle = title
	d.DefenseMethod = method
	d.ThesisLanguage = language
	d.UpdatedAt = now
}

func (d *Doctorate) SetThesisTitle(title string, now time.Time) {
	d.ThesisTitle = title
	d.UpdatedAt = now
}

// ReplaceConfirmationPaper points the doctorate at a new active paper.
func (d *Doctorate) ReplaceConfirmationPaper(successor domain.ConfirmationPaperID, now time.Time) {
	d.CurrentConfirmationPaperID = successor
	d.UpdatedAt = now
}

func (d *Doctorate) ReplacePrivateDefense(successor domain.PrivateDefenseID, now time.Time) {
	d.CurrentPrivateDefenseID = successor
	d.UpdatedAt = now
}

func (d *Doctorate) ReplaceAdmissibility(successor domain.AdmissibilityID, now time.Time) {
	d.CurrentAdmissibilityID = successor
	d.UpdatedAt = now
}
