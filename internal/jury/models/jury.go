package models

import (
	"slices"
	"strconv"
	"strings"
	"time"

	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/signature"
	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// Role of a person in the jury flow. CDD and ADRE only sign decisions.
type Role string

const (
	RolePresident Role = "PRESIDENT"
	RoleSecretary Role = "SECRETAIRE"
	RoleMember    Role = "MEMBRE"
	RoleVerifier  Role = "VERIFICATEUR"
	RoleCDD       Role = "CDD"
	RoleADRE      Role = "ADRE"
)

// IsMemberRole reports whether r may be held by a jury member.
func (r Role) IsMemberRole() bool {
	return r == RolePresident || r == RoleSecretary || r == RoleMember || r == RoleVerifier
}

// Member is a jury member.
type Member struct {
	signature.Actor
	Role                Role `json:"role"`
	IsPromoter          bool `json:"is_promoter"`
	IsReferencePromoter bool `json:"is_reference_promoter"`
}

// Jury is the thesis examination board of a doctorate.
//
// Invariants:
//   - A person appears at most once in Members
//   - PRESIDENT and SECRETAIRE are each held by at most one member
//   - The reference promoter is always a member
type Jury struct {
	DoctorateID     domain.DoctorateID    `json:"doctorate_id"`
	ThesisTitle     string                `json:"thesis_title"`
	DefenseMethod   dmodels.DefenseMethod `json:"defense_method,omitempty"`
	IndicativeDate  string                `json:"indicative_date,omitempty"`
	ThesisLanguage  string                `json:"thesis_language,omitempty"`
	DefenseLanguage string                `json:"defense_language,omitempty"`
	Comment         string                `json:"comment,omitempty"`
	Members         []Member              `json:"members"`
	CddDecision     *signature.Actor      `json:"cdd_decision,omitempty"`
	AdreDecision    *signature.Actor      `json:"adre_decision,omitempty"`
	ApprovalPDF     []domain.FileID       `json:"approval_pdf,omitempty"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func New(doctorateID domain.DoctorateID, thesisTitle string, now time.Time) *Jury {
	return &Jury{DoctorateID: doctorateID, ThesisTitle: thesisTitle, UpdatedAt: now}
}

func requireEditable(status dmodels.Status) validation.Validator {
	return validation.Require(status.In(dmodels.JuryEditableStatuses...), ErrJuryNotEditable)
}

// Details are the thesis-level jury fields.
type Details struct {
	ThesisTitle     string
	DefenseMethod   dmodels.DefenseMethod
	IndicativeDate  string
	ThesisLanguage  string
	DefenseLanguage string
	Comment         string
}

func (j *Jury) Modify(status dmodels.Status, in Details, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{
			validation.NotBlank(in.ThesisTitle, ErrJuryIncomplete),
			validation.Require(in.DefenseMethod.IsValid(), ErrInvalidDefenseMethod),
		},
		requireEditable(status),
	)
	if err != nil {
		return err
	}
	j.ThesisTitle = strings.TrimSpace(in.ThesisTitle)
	j.DefenseMethod = in.DefenseMethod
	j.IndicativeDate = in.IndicativeDate
	j.ThesisLanguage = in.ThesisLanguage
	j.DefenseLanguage = in.DefenseLanguage
	j.Comment = in.Comment
	j.UpdatedAt = now
	return nil
}

func (j *Jury) index(id domain.ActorID) int {
	return slices.IndexFunc(j.Members, func(m Member) bool { return m.ID == id })
}

// Member returns the member with the given ID.
func (j *Jury) Member(id domain.ActorID) (*Member, bool) {
	i := j.index(id)
	if i < 0 {
		return nil, false
	}
	return &j.Members[i], true
}

// MemberByMatricule returns the internal member with the given matricule.
func (j *Jury) MemberByMatricule(matricule string) (*Member, bool) {
	i := slices.IndexFunc(j.Members, func(m Member) bool { return matricule != "" && m.Matricule == matricule })
	if i < 0 {
		return nil, false
	}
	return &j.Members[i], true
}

func (j *Jury) containsOther(candidate *signature.Actor, except domain.ActorID) bool {
	for i := range j.Members {
		if j.Members[i].ID != except && j.Members[i].SamePerson(candidate) {
			return true
		}
	}
	return false
}

// MemberInput designates a jury member and their role.
type MemberInput struct {
	Person signature.PersonInput
	Role   Role
}

func (in MemberInput) role() Role {
	if in.Role == "" {
		return RoleMember
	}
	return in.Role
}

func (in MemberInput) contract() []validation.Validator {
	return append(in.Person.Contract(ErrMemberIncomplete, ErrMemberInvalidEmail),
		validation.Require(in.role().IsMemberRole(), ErrInvalidRole))
}

func (j *Jury) AddMember(status dmodels.Status, id domain.ActorID, in MemberInput, now time.Time) (Member, error) {
	member := Member{Actor: signature.NewActor(id, in.Person), Role: in.role()}
	err := validation.Run(in.contract(),
		requireEditable(status),
		func() error {
			if j.containsOther(&member.Actor, id) {
				return ErrMemberAlreadyInJury
			}
			return nil
		},
	)
	if err != nil {
		return Member{}, err
	}
	j.demoteUniqueRole(member.Role)
	j.Members = append(j.Members, member)
	j.UpdatedAt = now
	return member, nil
}

// ModifyMember replaces the identity and role of a member. Promoters keep
// their identity: they are managed through the supervision group.
func (j *Jury) ModifyMember(status dmodels.Status, id domain.ActorID, in MemberInput, now time.Time) error {
	i := j.index(id)
	candidate := signature.NewActor(id, in.Person)
	err := validation.Run(in.contract(),
		requireEditable(status),
		validation.Require(i >= 0, ErrMemberNotFound),
		func() error {
			if i >= 0 && j.Members[i].IsPromoter {
				return ErrCannotModifyPromoter
			}
			return nil
		},
		func() error {
			if j.containsOther(&candidate, id) {
				return ErrMemberAlreadyInJury
			}
			return nil
		},
	)
	if err != nil {
		return err
	}
	role := in.role()
	j.demoteUniqueRole(role)
	j.Members[i].Matricule = candidate.Matricule
	j.Members[i].External = candidate.External
	j.Members[i].Role = role
	j.UpdatedAt = now
	return nil
}

func (j *Jury) RemoveMember(status dmodels.Status, id domain.ActorID, now time.Time) (Member, error) {
	i := j.index(id)
	err := validation.Run(nil,
		requireEditable(status),
		validation.Require(i >= 0, ErrMemberNotFound),
		func() error {
			if i >= 0 && j.Members[i].IsReferencePromoter {
				return ErrCannotRemoveReferencePromoter
			}
			return nil
		},
	)
	if err != nil {
		return Member{}, err
	}
	removed := j.Members[i]
	j.Members = slices.Delete(j.Members, i, i+1)
	j.UpdatedAt = now
	return removed, nil
}

// ModifyRole assigns role to a member. A previous PRESIDENT or SECRETAIRE
// falls back to MEMBRE.
func (j *Jury) ModifyRole(status dmodels.Status, id domain.ActorID, role Role, now time.Time) error {
	i := j.index(id)
	err := validation.Run(
		[]validation.Validator{validation.Require(role.IsMemberRole(), ErrInvalidRole)},
		requireEditable(status),
		validation.Require(i >= 0, ErrMemberNotFound),
	)
	if err != nil {
		return err
	}
	j.demoteUniqueRole(role)
	j.Members[i].Role = role
	j.UpdatedAt = now
	return nil
}

func (j *Jury) demoteUniqueRole(role Role) {
	if role != RolePresident && role != RoleSecretary {
		return
	}
	for i := range j.Members {
		if j.Members[i].Role == role {
			j.Members[i].Role = RoleMember
		}
	}
}

// SyncPromoters makes the promoter members mirror the supervision group.
func (j *Jury) SyncPromoters(promoters []signature.Actor, referenceID domain.ActorID, now time.Time) {
	kept := j.Members[:0]
	for _, m := range j.Members {
		if m.IsPromoter && !slices.ContainsFunc(promoters, func(p signature.Actor) bool { return p.ID == m.ID }) {
			continue
		}
		kept = append(kept, m)
	}
	j.Members = kept
	for _, p := range promoters {
		i := j.index(p.ID)
		if i < 0 {
			actor := p
			actor.Reset()
			j.Members = append(j.Members, Member{Actor: actor, Role: RoleMember, IsPromoter: true})
			i = len(j.Members) - 1
		}
		j.Members[i].IsPromoter = true
		j.Members[i].IsReferencePromoter = p.ID == referenceID
	}
	j.UpdatedAt = now
}

func (j *Jury) HasExternalMember() bool {
	return slices.ContainsFunc(j.Members, func(m Member) bool { return m.IsExternal() })
}

// CanRequestSignatures succeeds iff the jury has at least minMembers members,
// one of them external, and a defence method.
func (j *Jury) CanRequestSignatures(status dmodels.Status, minMembers int) error {
	return validation.Run(nil,
		validation.Require(status.In(dmodels.JuryRequestableStatuses...), ErrStatusNotRequestable),
		func() error {
			if len(j.Members) < minMembers {
				return ErrTooFewMembers.With(strconv.Itoa(len(j.Members)) + " < " + strconv.Itoa(minMembers))
			}
			return nil
		},
		validation.Require(j.HasExternalMember(), ErrNoExternalMember),
		validation.Require(j.DefenseMethod.IsSet(), ErrDefenseMethodMissing),
	)
}

// RequestSignatures invites every member and clears previous decisions.
func (j *Jury) RequestSignatures(status dmodels.Status, minMembers int, now time.Time) error {
	if err := j.CanRequestSignatures(status, minMembers); err != nil {
		return err
	}
	for i := range j.Members {
		j.Members[i].Invite(now)
	}
	j.CddDecision = nil
	j.AdreDecision = nil
	j.ApprovalPDF = nil
	j.UpdatedAt = now
	return nil
}

func (j *Jury) decisionInvariants(status dmodels.Status, i int) []validation.Validator {
	return []validation.Validator{
		validation.Require(status == dmodels.StatusJurySubmitted, ErrStatusNotSubmitted),
		validation.Require(i >= 0, ErrMemberNotFound),
		func() error {
			if i < 0 {
				return nil
			}
			switch j.Members[i].State {
			case signature.Invited:
				return nil
			case signature.NotInvited:
				return ErrMemberNotInvited
			default:
				return ErrMemberAlreadyDecided
			}
		},
	}
}

// ApproveMember records a member approval and reports whether every member approved.
func (j *Jury) ApproveMember(status dmodels.Status, id domain.ActorID, comment, internalComment string, pdf []domain.FileID, at time.Time) (bool, error) {
	i := j.index(id)
	if err := validation.Run(nil, j.decisionInvariants(status, i)...); err != nil {
		return false, err
	}
	j.Members[i].Approve(at, comment, internalComment, pdf)
	j.UpdatedAt = at
	return j.AllApproved(), nil
}

func (j *Jury) DeclineMember(status dmodels.Status, id domain.ActorID, reason, comment, internalComment string, at time.Time) error {
	i := j.index(id)
	err := validation.Run(
		[]validation.Validator{validation.NotBlank(reason, ErrRefusalReasonMissing)},
		j.decisionInvariants(status, i)...,
	)
	if err != nil {
		return err
	}
	j.Members[i].Decline(at, reason, comment, internalComment)
	j.UpdatedAt = at
	return nil
}

// ApproveByPdf approves the whole jury at once from a signed document.
func (j *Jury) ApproveByPdf(status dmodels.Status, pdf []domain.FileID, at time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.NotEmpty(pdf, ErrApprovalPdfMissing)},
		validation.Require(status == dmodels.StatusJurySubmitted, ErrStatusNotSubmitted),
	)
	if err != nil {
		return err
	}
	for i := range j.Members {
		if j.Members[i].State != signature.Approved {
			j.Members[i].Approve(at, "", "", nil)
		}
	}
	j.ApprovalPDF = pdf
	j.UpdatedAt = at
	return nil
}

func (j *Jury) AllApproved() bool {
	if len(j.Members) == 0 {
		return false
	}
	for _, m := range j.Members {
		if m.State != signature.Approved {
			return false
		}
	}
	return true
}

// Decision is a CDD or ADRE verdict on the jury.
type Decision struct {
	Matricule       string
	Approved        bool
	Reason          string
	Comment         string
	InternalComment string
}

func decisionContract(d Decision) []validation.Validator {
	return []validation.Validator{
		validation.When(!d.Approved, validation.NotBlank(d.Reason, ErrRefusalReasonMissing)),
	}
}

func record(d Decision, at time.Time) *signature.Actor {
	a := &signature.Actor{ID: domain.NewActorID(), Matricule: d.Matricule}
	if d.Approved {
		a.Approve(at, d.Comment, d.InternalComment, nil)
	} else {
		a.Decline(at, d.Reason, d.Comment, d.InternalComment)
	}
	return a
}

// DecideByCdd records the CDD verdict; it requires the supervisory panel approval.
func (j *Jury) DecideByCdd(status dmodels.Status, d Decision, at time.Time) error {
	err := validation.Run(decisionContract(d),
		validation.Require(status == dmodels.StatusJuryApprovedCA, ErrStatusNotApprovedByCA),
	)
	if err != nil {
		return err
	}
	j.CddDecision = record(d, at)
	j.UpdatedAt = at
	return nil
}

// DecideByAdre records the ADRE verdict, with or without a prior CDD approval.
func (j *Jury) DecideByAdre(status dmodels.Status, d Decision, at time.Time) error {
	err := validation.Run(decisionContract(d),
		validation.Require(status.In(dmodels.StatusJuryApprovedCA, dmodels.StatusJuryApprovedCDD), ErrStatusNotReadyForAdre),
	)
	if err != nil {
		return err
	}
	j.AdreDecision = record(d, at)
	j.UpdatedAt = at
	return nil
}
