package models

import (
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/signature"
	"parcours/pkg/domain"
	pstrings "parcours/pkg/platform/strings"
	"parcours/pkg/validation"
)

// Status of a thesis distribution authorisation. Persisted as is.
type Status string

const (
	StatusNotSubmitted       Status = "DIFFUSION_NON_SOUMISE"
	StatusSubmitted          Status = "DIFFUSION_SOUMISE"
	StatusPendingPromoter    Status = "DIFFUSION_EN_COURS_VALIDATION_PROMOTEUR"
	StatusApprovedByPromoter Status = "DIFFUSION_APPROUVEE_PAR_PROMOTEUR"
	StatusRefusedByPromoter  Status = "DIFFUSION_REFUSEE_PAR_PROMOTEUR"
	StatusApprovedByAdre     Status = "DIFFUSION_APPROUVEE_PAR_ADRE"
	StatusRefusedByAdre      Status = "DIFFUSION_REFUSEE_PAR_ADRE"
	StatusApprovedBySceb     Status = "DIFFUSION_APPROUVEE_PAR_SCEB"
	StatusRefusedBySceb      Status = "DIFFUSION_REFUSEE_PAR_SCEB"
)

// EditableStatuses are the statuses in which the student may encode or submit.
var EditableStatuses = []Status{
	StatusNotSubmitted,
	StatusRefusedByPromoter,
	StatusRefusedByAdre,
	StatusRefusedBySceb,
}

func (s Status) IsEditable() bool { return slices.Contains(EditableStatuses, s) }

type DiffusionType string

const (
	DiffusionFree       DiffusionType = "LIBRE"
	DiffusionRestricted DiffusionType = "RESTREINTE"
	DiffusionEmbargo    DiffusionType = "EMBARGO"
)

func (t DiffusionType) IsValid() bool {
	return t == "" || t == DiffusionFree || t == DiffusionRestricted || t == DiffusionEmbargo
}

// SignatoryRole identifies who signs the authorisation.
type SignatoryRole string

const (
	RoleReferencePromoter SignatoryRole = "PROMOTEUR_REFERENCE"
	RoleAdre              SignatoryRole = "ADRE"
	RoleSceb              SignatoryRole = "SCEB"
)

type Signatory struct {
	signature.Actor
	Role SignatoryRole `json:"role"`
}

// Authorization is the thesis distribution authorisation of a doctorate.
type Authorization struct {
	DoctorateID          domain.DoctorateID `json:"doctorate_id"`
	Status               Status             `json:"status"`
	FundingSources       string             `json:"funding_sources,omitempty"`
	SummaryEN            string             `json:"summary_en,omitempty"`
	SummaryOther         string             `json:"summary_other,omitempty"`
	SummaryOtherLanguage string             `json:"summary_other_language,omitempty"`
	Keywords             []string           `json:"keywords,omitempty"`
	DiffusionType        DiffusionType      `json:"diffusion_type,omitempty"`
	EmbargoDate          *civil.Date        `json:"embargo_date,omitempty"`
	AdditionalLimitation string             `json:"additional_limitation,omitempty"`
	AcceptedOn           *time.Time         `json:"accepted_on,omitempty"`
	AcceptanceContent    string             `json:"acceptance_content,omitempty"`
	Signatories          []Signatory        `json:"signatories,omitempty"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func New(doctorateID domain.DoctorateID, now time.Time) *Authorization {
	return &Authorization{DoctorateID: doctorateID, Status: StatusNotSubmitted, UpdatedAt: now}
}

// Content is the data the student encodes.
type Content struct {
	FundingSources       string
	SummaryEN            string
	SummaryOther         string
	SummaryOtherLanguage string
	Keywords             []string
	DiffusionType        DiffusionType
	EmbargoDate          *civil.Date
	AdditionalLimitation string
}

func requireDefended(doctorateStatus dmodels.Status) validation.Validator {
	return validation.Require(doctorateStatus.In(dmodels.DefendedStatuses...), ErrDoctorateNotDefended)
}

// Encode stores a draft. Nothing but the diffusion type is checked.
func (a *Authorization) Encode(doctorateStatus dmodels.Status, in Content, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.Require(in.DiffusionType.IsValid(), ErrInvalidDiffusionType)},
		requireDefended(doctorateStatus),
		validation.Require(a.Status.IsEditable(), ErrNotEditable),
	)
	if err != nil {
		return err
	}
	a.FundingSources = in.FundingSources
	a.SummaryEN = in.SummaryEN
	a.SummaryOther = in.SummaryOther
	a.SummaryOtherLanguage = in.SummaryOtherLanguage
	a.Keywords = pstrings.DedupeAndTrim(in.Keywords)
	a.DiffusionType = in.DiffusionType
	a.EmbargoDate = in.EmbargoDate
	a.AdditionalLimitation = in.AdditionalLimitation
	a.UpdatedAt = now
	return nil
}

// Submit validates the encoded content and records the acceptance of the conditions.
func (a *Authorization) Submit(doctorateStatus dmodels.Status, acceptanceContent string, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{
			validation.NotBlank(acceptanceContent, ErrConditionsNotAccepted),
			validation.Require(
				strings.TrimSpace(a.SummaryEN) != "" && len(a.Keywords) > 0 && a.DiffusionType != "",
				ErrIncomplete),
			validation.When(a.DiffusionType == DiffusionEmbargo, validation.Present(a.EmbargoDate, ErrEmbargoDateMissing)),
		},
		requireDefended(doctorateStatus),
		validation.Require(a.Status.IsEditable(), ErrNotEditable),
	)
	if err != nil {
		return err
	}
	a.AcceptanceContent = acceptanceContent
	a.AcceptedOn = &now
	a.Status = StatusSubmitted
	a.Signatories = nil
	a.UpdatedAt = now
	return nil
}

// SendToReferencePromoter invites the reference promoter to sign.
func (a *Authorization) SendToReferencePromoter(promoterMatricule string, now time.Time) error {
	err := validation.Run(nil,
		validation.Require(a.Status == StatusSubmitted, ErrStatusNotSubmitted),
		validation.NotBlank(promoterMatricule, ErrReferencePromoterMissing),
	)
	if err != nil {
		return err
	}
	promoter := Signatory{Actor: signature.Actor{ID: domain.NewActorID(), Matricule: promoterMatricule}, Role: RoleReferencePromoter}
	promoter.Invite(now)
	a.Signatories = []Signatory{promoter}
	a.Status = StatusPendingPromoter
	a.UpdatedAt = now
	return nil
}

func (a *Authorization) Signatory(role SignatoryRole) (*Signatory, bool) {
	i := slices.IndexFunc(a.Signatories, func(s Signatory) bool { return s.Role == role })
	if i < 0 {
		return nil, false
	}
	return &a.Signatories[i], true
}

// Decision is one signatory verdict.
type Decision struct {
	Matricule       string
	Approved        bool
	Reason          string
	Comment         string
	InternalComment string
}

func (a *Authorization) decide(role SignatoryRole, required Status, statusErr error, d Decision, approved, refused Status, extra []validation.Validator, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{
			validation.When(!d.Approved, validation.NotBlank(d.Reason, ErrRefusalReasonMissing)),
		},
		append([]validation.Validator{func() error {
			if a.Status != required {
				return statusErr
			}
			return nil
		}}, extra...)...,
	)
	if err != nil {
		return err
	}
	s, ok := a.Signatory(role)
	if !ok {
		a.Signatories = append(a.Signatories, Signatory{Actor: signature.Actor{ID: domain.NewActorID()}, Role: role})
		s = &a.Signatories[len(a.Signatories)-1]
	}
	s.Matricule = d.Matricule
	if d.Approved {
		s.Approve(now, d.Comment, d.InternalComment, nil)
		a.Status = approved
	} else {
		s.Decline(now, d.Reason, d.Comment, d.InternalComment)
		a.Status = refused
	}
	a.UpdatedAt = now
	return nil
}

// DecideByReferencePromoter requires the deciding matricule to be the invited
// reference promoter.
func (a *Authorization) DecideByReferencePromoter(d Decision, now time.Time) error {
	isPromoter := func() error {
		s, ok := a.Signatory(RoleReferencePromoter)
		if !ok || d.Matricule == "" || s.Matricule != d.Matricule {
			return ErrNotReferencePromoter
		}
		return nil
	}
	return a.decide(RoleReferencePromoter, StatusPendingPromoter, ErrStatusNotPendingPromoter, d,
		StatusApprovedByPromoter, StatusRefusedByPromoter, []validation.Validator{isPromoter}, now)
}

func (a *Authorization) DecideByAdre(d Decision, now time.Time) error {
	return a.decide(RoleAdre, StatusApprovedByPromoter, ErrStatusNotApprovedByPromoter, d,
		StatusApprovedByAdre, StatusRefusedByAdre, nil, now)
}

func (a *Authorization) DecideBySceb(d Decision, now time.Time) error {
	return a.decide(RoleSceb, StatusApprovedByAdre, ErrStatusNotApprovedByAdre, d,
		StatusApprovedBySceb, StatusRefusedBySceb, nil, now)
}
